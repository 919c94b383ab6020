package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/review"
)

// ReviewModel is the GORM model for the reviews table.
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"size:200"`
	Description string    `gorm:"size:5000"`
	Rating      int       `gorm:"not null"`
	Name        string    `gorm:"not null;size:100"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (ReviewModel) TableName() string {
	return "reviews"
}

// GormReviewRepository is the GORM-based implementation of ReviewRepository.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID retrieves a review by its unique identifier.
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var model ReviewModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Review", id.String())
		}
		return nil, fmt.Errorf("failed to find review by ID: %w", err)
	}
	return toDomainReview(&model), nil
}

// FindByListingID retrieves all reviews for a listing, newest first.
func (r *GormReviewRepository) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*review.Review, error) {
	var models []ReviewModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find listing reviews: %w", err)
	}

	reviews := make([]*review.Review, len(models))
	for i, m := range models {
		reviews[i] = toDomainReview(&m)
	}
	return reviews, nil
}

// List retrieves reviews with pagination, newest first.
func (r *GormReviewRepository) List(ctx context.Context, page, limit int) ([]*review.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ReviewModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var models []ReviewModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*review.Review, len(models))
	for i, m := range models {
		reviews[i] = toDomainReview(&m)
	}
	return reviews, total, nil
}

// Save persists a new review.
func (r *GormReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	if err := r.db.WithContext(ctx).Create(toReviewModel(rv)).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

// Delete removes a review by identifier.
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ReviewModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Review", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toReviewModel(rv *review.Review) *ReviewModel {
	return &ReviewModel{
		ID:          rv.ID(),
		ListingID:   rv.ListingID(),
		BookingID:   rv.BookingID(),
		Title:       rv.Title(),
		Description: rv.Description(),
		Rating:      rv.Rating(),
		Name:        rv.Name(),
		CreatedAt:   rv.CreatedAt(),
	}
}

func toDomainReview(m *ReviewModel) *review.Review {
	return review.Reconstruct(
		m.ID, m.ListingID, m.BookingID,
		m.Title, m.Description,
		m.Rating,
		m.Name,
		m.CreatedAt,
	)
}
