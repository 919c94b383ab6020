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
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/taxi"
)

// TaxiBookingModel is the GORM model for the taxi_bookings table.
type TaxiBookingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Pickup      string          `gorm:"not null;size:300"`
	Destination string          `gorm:"not null;size:300"`
	FlightNo    string          `gorm:"size:20"`
	Airline     string          `gorm:"size:100"`
	ArrivalDay  string          `gorm:"not null;size:10;index"`
	ArrivalTime string          `gorm:"size:10"`
	BookingType string          `gorm:"not null;size:20"`
	Rider       json.RawMessage `gorm:"type:jsonb;not null"`
	Luggage     string          `gorm:"size:200"`
	Instruction string          `gorm:"size:1000"`
	CarType     string          `gorm:"not null;size:30"`
	PriceCents  int64           `gorm:"not null"`
	Status      string          `gorm:"not null;size:20;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (TaxiBookingModel) TableName() string {
	return "taxi_bookings"
}

// GormTaxiBookingRepository is the GORM-based implementation of TaxiBookingRepository.
type GormTaxiBookingRepository struct {
	db *gorm.DB
}

// NewGormTaxiBookingRepository creates a new GormTaxiBookingRepository.
func NewGormTaxiBookingRepository(db *gorm.DB) *GormTaxiBookingRepository {
	return &GormTaxiBookingRepository{db: db}
}

// FindByID retrieves a taxi booking by its unique identifier.
func (r *GormTaxiBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxi.Booking, error) {
	var model TaxiBookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("TaxiBooking", id.String())
		}
		return nil, fmt.Errorf("failed to find taxi booking by ID: %w", err)
	}
	return toDomainTaxiBooking(&model)
}

// List retrieves taxi bookings with pagination, optionally filtered by status.
func (r *GormTaxiBookingRepository) List(ctx context.Context, status *taxi.BookingStatus, page, limit int) ([]*taxi.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&TaxiBookingModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count taxi bookings: %w", err)
	}

	var models []TaxiBookingModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list taxi bookings: %w", err)
	}

	bookings := make([]*taxi.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainTaxiBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = bk
	}
	return bookings, total, nil
}

// CountByStatus returns taxi booking counts grouped by status.
func (r *GormTaxiBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&TaxiBookingModel{}).
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

// Save persists a new taxi booking.
func (r *GormTaxiBookingRepository) Save(ctx context.Context, bk *taxi.Booking) error {
	model, err := toTaxiBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert taxi booking to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save taxi booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing taxi booking.
func (r *GormTaxiBookingRepository) Update(ctx context.Context, bk *taxi.Booking) error {
	model, err := toTaxiBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert taxi booking to model: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&TaxiBookingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update taxi booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("TaxiBooking", model.ID.String())
	}
	return nil
}

// Delete removes a taxi booking by identifier.
func (r *GormTaxiBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaxiBookingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete taxi booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("TaxiBooking", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toTaxiBookingModel(bk *taxi.Booking) (*TaxiBookingModel, error) {
	riderJSON, err := json.Marshal(bk.Rider())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rider: %w", err)
	}

	return &TaxiBookingModel{
		ID:          bk.ID(),
		Pickup:      bk.Pickup(),
		Destination: bk.Destination(),
		FlightNo:    bk.FlightNo(),
		Airline:     bk.Airline(),
		ArrivalDay:  bk.ArrivalDay().String(),
		ArrivalTime: bk.ArrivalTime(),
		BookingType: string(bk.BookingType()),
		Rider:       riderJSON,
		Luggage:     bk.Luggage(),
		Instruction: bk.Instruction(),
		CarType:     string(bk.CarType()),
		PriceCents:  bk.PriceCents(),
		Status:      string(bk.Status()),
		CreatedAt:   bk.CreatedAt(),
		UpdatedAt:   bk.UpdatedAt(),
	}, nil
}

func toDomainTaxiBooking(m *TaxiBookingModel) (*taxi.Booking, error) {
	var rider taxi.Rider
	if err := json.Unmarshal(m.Rider, &rider); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rider: %w", err)
	}

	return taxi.ReconstructBooking(
		m.ID,
		m.Pickup, m.Destination, m.FlightNo, m.Airline,
		calendar.Day(m.ArrivalDay),
		m.ArrivalTime,
		taxi.BookingType(m.BookingType),
		rider,
		m.Luggage, m.Instruction,
		taxi.CarType(m.CarType),
		m.PriceCents,
		taxi.BookingStatus(m.Status),
		m.CreatedAt, m.UpdatedAt,
	), nil
}
