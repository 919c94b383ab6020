package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// BlockedDateModel is the GORM model for the blocked_dates table. The
// unique index on (listing_id, day) backstops the duplicate-block check
// under concurrent requests.
type BlockedDateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocked_listing_day"`
	Category  string    `gorm:"not null;size:20"`
	Day       string    `gorm:"not null;size:10;uniqueIndex:idx_blocked_listing_day"`
	Reason    string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BlockedDateModel) TableName() string {
	return "blocked_dates"
}

// GormBlockedDateRepository is the GORM-based implementation of BlockedDateRepository.
type GormBlockedDateRepository struct {
	db *gorm.DB
}

// NewGormBlockedDateRepository creates a new GormBlockedDateRepository.
func NewGormBlockedDateRepository(db *gorm.DB) *GormBlockedDateRepository {
	return &GormBlockedDateRepository{db: db}
}

// FindByListingID retrieves all blocked dates for a listing, ascending by day.
func (r *GormBlockedDateRepository) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*calendar.BlockedDate, error) {
	var models []BlockedDateModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("day ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find blocked dates: %w", err)
	}

	blocked := make([]*calendar.BlockedDate, len(models))
	for i, m := range models {
		blocked[i] = toDomainBlockedDate(&m)
	}
	return blocked, nil
}

// ExistsForDay reports whether the listing already has a block on the day.
func (r *GormBlockedDateRepository) ExistsForDay(ctx context.Context, listingID uuid.UUID, day calendar.Day) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&BlockedDateModel{}).
		Where("listing_id = ? AND day = ?", listingID, day.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check blocked date: %w", err)
	}
	return count > 0, nil
}

// Save persists a new blocked date. A unique-index violation surfaces
// as a conflict so racing duplicate blocks fail cleanly.
func (r *GormBlockedDateRepository) Save(ctx context.Context, bd *calendar.BlockedDate) error {
	model := toBlockedDateModel(bd)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return domain.NewConflictError(fmt.Sprintf("date %s is already blocked for this listing", bd.Day()))
		}
		return fmt.Errorf("failed to save blocked date: %w", err)
	}
	return nil
}

// Delete removes a blocked date by identifier.
func (r *GormBlockedDateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BlockedDateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blocked date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("BlockedDate", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toBlockedDateModel(bd *calendar.BlockedDate) *BlockedDateModel {
	return &BlockedDateModel{
		ID:        bd.ID(),
		ListingID: bd.ListingID(),
		Category:  string(bd.Category()),
		Day:       bd.Day().String(),
		Reason:    bd.Reason(),
		CreatedAt: bd.CreatedAt(),
	}
}

func toDomainBlockedDate(m *BlockedDateModel) *calendar.BlockedDate {
	return calendar.ReconstructBlockedDate(
		m.ID, m.ListingID,
		listing.Category(m.Category),
		calendar.Day(m.Day),
		m.Reason,
		m.CreatedAt,
	)
}
