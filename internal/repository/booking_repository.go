package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veristay/service-admin/internal/common/domain"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ListingID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	Category        string          `gorm:"not null;size:20;index"`
	Guest           json.RawMessage `gorm:"type:jsonb;not null"`
	CheckIn         string          `gorm:"not null;size:10;index"`
	CheckOut        string          `gorm:"not null;size:10;index"`
	Guests          int             `gorm:"not null"`
	Nights          int             `gorm:"not null"`
	TaxesCents      int64           `gorm:"not null"`
	TotalPriceCents int64           `gorm:"not null"`
	Status          string          `gorm:"not null;size:20;index"`
	Version         int64           `gorm:"not null;default:1"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByListingID retrieves all bookings for a listing, ascending by check-in.
func (r *GormBookingRepository) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("check_in ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find listing bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

// List retrieves bookings with pagination, filtering, and sorting.
func (r *GormBookingRepository) List(
	ctx context.Context,
	filter bookingDomain.ListFilter,
	sort bookingDomain.ListSort,
	page, limit int,
) ([]*bookingDomain.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	today := calendar.DayOf(time.Now().UTC()).String()
	switch filter.Window {
	case "active":
		query = query.Where("check_out >= ?", today)
	case "expired":
		query = query.Where("check_out < ?", today)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	orderCol := "created_at"
	if sort.Field == "total_price" {
		orderCol = "total_price_cents"
	}
	direction := "DESC"
	if sort.Ascending {
		direction = "ASC"
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := query.
		Order(orderCol + " " + direction).
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = bk
	}

	return bookings, total, nil
}

// CountByStatus returns booking counts grouped by status.
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// CountCreatedBetween returns how many bookings were created in [from, to).
func (r *GormBookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings by creation time: %w", err)
	}
	return count, nil
}

// FindRecent retrieves the most recently created bookings.
func (r *GormBookingRepository) FindRecent(ctx context.Context, limit int, category *listing.Category) ([]*bookingDomain.Booking, error) {
	query := r.db.WithContext(ctx)
	if category != nil {
		query = query.Where("category = ?", string(*category))
	}

	var models []BookingModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find recent bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert booking to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert booking to model: %w", err)
	}

	// Only update if the version matches (current version - 1 since
	// IncrementVersion was called before persisting).
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"guest":             model.Guest,
			"check_in":          model.CheckIn,
			"check_out":         model.CheckOut,
			"guests":            model.Guests,
			"nights":            model.Nights,
			"taxes_cents":       model.TaxesCents,
			"total_price_cents": model.TotalPriceCents,
			"status":            model.Status,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// Delete removes a booking by identifier.
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) (*BookingModel, error) {
	guestJSON, err := json.Marshal(bk.Guest())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guest: %w", err)
	}

	return &BookingModel{
		ID:              bk.ID(),
		ListingID:       bk.ListingID(),
		Category:        string(bk.Category()),
		Guest:           guestJSON,
		CheckIn:         bk.CheckIn().String(),
		CheckOut:        bk.CheckOut().String(),
		Guests:          bk.Guests(),
		Nights:          bk.Nights(),
		TaxesCents:      bk.TaxesCents(),
		TotalPriceCents: bk.TotalPriceCents(),
		Status:          string(bk.Status()),
		Version:         bk.Version(),
		CreatedAt:       bk.CreatedAt(),
		UpdatedAt:       bk.UpdatedAt(),
	}, nil
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	var guest bookingDomain.Guest
	if err := json.Unmarshal(m.Guest, &guest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest: %w", err)
	}

	return bookingDomain.Reconstruct(
		m.ID, m.ListingID,
		listing.Category(m.Category),
		guest,
		calendar.Day(m.CheckIn), calendar.Day(m.CheckOut),
		m.Guests, m.Nights,
		m.TaxesCents, m.TotalPriceCents,
		bookingDomain.Status(m.Status),
		m.Version,
		m.CreatedAt, m.UpdatedAt,
	), nil
}
