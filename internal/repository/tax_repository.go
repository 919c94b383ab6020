package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/tax"
)

// TaxModel is the GORM model for the taxes table.
type TaxModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null;size:100"`
	Rate          float64   `gorm:"not null"`
	RateType      string    `gorm:"not null;size:20"`
	PerHead       bool      `gorm:"not null;default:false"`
	Applicability string    `gorm:"not null;size:20;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (TaxModel) TableName() string {
	return "taxes"
}

// GormTaxRepository is the GORM-based implementation of TaxRepository.
type GormTaxRepository struct {
	db *gorm.DB
}

// NewGormTaxRepository creates a new GormTaxRepository.
func NewGormTaxRepository(db *gorm.DB) *GormTaxRepository {
	return &GormTaxRepository{db: db}
}

// FindByID retrieves a tax by its unique identifier.
func (r *GormTaxRepository) FindByID(ctx context.Context, id uuid.UUID) (*tax.Tax, error) {
	var model TaxModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Tax", id.String())
		}
		return nil, fmt.Errorf("failed to find tax by ID: %w", err)
	}
	return toDomainTax(&model), nil
}

// List retrieves tax definitions, optionally filtered by applicability.
func (r *GormTaxRepository) List(ctx context.Context, applicability *tax.Applicability) ([]*tax.Tax, error) {
	query := r.db.WithContext(ctx)
	if applicability != nil {
		query = query.Where("applicability = ?", string(*applicability))
	}

	var models []TaxModel
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}

	taxes := make([]*tax.Tax, len(models))
	for i, m := range models {
		taxes[i] = toDomainTax(&m)
	}
	return taxes, nil
}

// Save persists a new tax.
func (r *GormTaxRepository) Save(ctx context.Context, t *tax.Tax) error {
	if err := r.db.WithContext(ctx).Create(toTaxModel(t)).Error; err != nil {
		return fmt.Errorf("failed to save tax: %w", err)
	}
	return nil
}

// Update persists changes to an existing tax.
func (r *GormTaxRepository) Update(ctx context.Context, t *tax.Tax) error {
	model := toTaxModel(t)
	result := r.db.WithContext(ctx).
		Model(&TaxModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"rate":          model.Rate,
			"rate_type":     model.RateType,
			"per_head":      model.PerHead,
			"applicability": model.Applicability,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update tax: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Tax", model.ID.String())
	}
	return nil
}

// Delete removes a tax by identifier.
func (r *GormTaxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaxModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tax: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Tax", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toTaxModel(t *tax.Tax) *TaxModel {
	return &TaxModel{
		ID:            t.ID(),
		Name:          t.Name(),
		Rate:          t.Rate(),
		RateType:      string(t.RateType()),
		PerHead:       t.PerHead(),
		Applicability: string(t.Applicability()),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func toDomainTax(m *TaxModel) *tax.Tax {
	return tax.Reconstruct(
		m.ID,
		m.Name,
		m.Rate,
		tax.RateType(m.RateType),
		m.PerHead,
		tax.Applicability(m.Applicability),
		m.CreatedAt, m.UpdatedAt,
	)
}
