package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/taxi"
)

// TaxiModel is the GORM model for the taxis table.
type TaxiModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null;size:100"`
	CarType         string    `gorm:"not null;size:30;index"`
	PassengerSeats  int       `gorm:"not null"`
	LuggageQuantity int       `gorm:""`
	CarryOnLuggage  int       `gorm:""`
	PriceCents      int64     `gorm:"not null"`
	Status          string    `gorm:"not null;size:20;index"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (TaxiModel) TableName() string {
	return "taxis"
}

// GormTaxiRepository is the GORM-based implementation of TaxiRepository.
type GormTaxiRepository struct {
	db *gorm.DB
}

// NewGormTaxiRepository creates a new GormTaxiRepository.
func NewGormTaxiRepository(db *gorm.DB) *GormTaxiRepository {
	return &GormTaxiRepository{db: db}
}

// FindByID retrieves a taxi by its unique identifier.
func (r *GormTaxiRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxi.Taxi, error) {
	var model TaxiModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Taxi", id.String())
		}
		return nil, fmt.Errorf("failed to find taxi by ID: %w", err)
	}
	return toDomainTaxi(&model), nil
}

// List retrieves taxis with pagination.
func (r *GormTaxiRepository) List(ctx context.Context, page, limit int) ([]*taxi.Taxi, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&TaxiModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count taxis: %w", err)
	}

	var models []TaxiModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list taxis: %w", err)
	}

	taxis := make([]*taxi.Taxi, len(models))
	for i, m := range models {
		taxis[i] = toDomainTaxi(&m)
	}
	return taxis, total, nil
}

// Count returns the total number of taxis.
func (r *GormTaxiRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&TaxiModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count taxis: %w", err)
	}
	return total, nil
}

// Save persists a new taxi.
func (r *GormTaxiRepository) Save(ctx context.Context, t *taxi.Taxi) error {
	if err := r.db.WithContext(ctx).Create(toTaxiModel(t)).Error; err != nil {
		return fmt.Errorf("failed to save taxi: %w", err)
	}
	return nil
}

// Update persists changes to an existing taxi.
func (r *GormTaxiRepository) Update(ctx context.Context, t *taxi.Taxi) error {
	model := toTaxiModel(t)
	result := r.db.WithContext(ctx).
		Model(&TaxiModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"passenger_seats":  model.PassengerSeats,
			"luggage_quantity": model.LuggageQuantity,
			"carry_on_luggage": model.CarryOnLuggage,
			"price_cents":      model.PriceCents,
			"status":           model.Status,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update taxi: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Taxi", model.ID.String())
	}
	return nil
}

// Delete removes a taxi by identifier.
func (r *GormTaxiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaxiModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete taxi: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Taxi", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toTaxiModel(t *taxi.Taxi) *TaxiModel {
	return &TaxiModel{
		ID:              t.ID(),
		Name:            t.Name(),
		CarType:         string(t.CarType()),
		PassengerSeats:  t.PassengerSeats(),
		LuggageQuantity: t.LuggageQuantity(),
		CarryOnLuggage:  t.CarryOnLuggage(),
		PriceCents:      t.PriceCents(),
		Status:          string(t.Status()),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func toDomainTaxi(m *TaxiModel) *taxi.Taxi {
	return taxi.Reconstruct(
		m.ID,
		m.Name,
		taxi.CarType(m.CarType),
		m.PassengerSeats, m.LuggageQuantity, m.CarryOnLuggage,
		m.PriceCents,
		taxi.Status(m.Status),
		m.CreatedAt, m.UpdatedAt,
	)
}
