package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/tax"
)

// CreateTaxRequest holds the data needed to define a tax.
type CreateTaxRequest struct {
	Name          string  `json:"name" binding:"required"`
	Rate          float64 `json:"rate" binding:"required"`
	RateType      string  `json:"rate_type" binding:"required"`
	PerHead       bool    `json:"per_head"`
	Applicability string  `json:"applicability" binding:"required"`
}

// UpdateTaxRequest holds partial updates to a tax definition.
type UpdateTaxRequest struct {
	Name          string   `json:"name"`
	Rate          *float64 `json:"rate"`
	RateType      string   `json:"rate_type"`
	PerHead       *bool    `json:"per_head"`
	Applicability string   `json:"applicability"`
}

// TaxDTO is the response representation of a tax definition.
type TaxDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Rate          float64   `json:"rate"`
	RateType      string    `json:"rate_type"`
	PerHead       bool      `json:"per_head"`
	Applicability string    `json:"applicability"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TaxQuoteRequest asks how much tax a prospective booking would carry.
type TaxQuoteRequest struct {
	Category      string `json:"category" binding:"required"`
	SubtotalCents int64  `json:"subtotal_cents" binding:"required"`
	Guests        int    `json:"guests"`
}

// TaxQuoteDTO itemizes the taxes applied to a subtotal.
type TaxQuoteDTO struct {
	Items      []TaxQuoteItem `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

// TaxQuoteItem is one line of a tax quote.
type TaxQuoteItem struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// TaxService is the application service for tax configuration.
type TaxService struct {
	repo   tax.TaxRepository
	logger *zap.Logger
}

// NewTaxService creates a new TaxService.
func NewTaxService(repo tax.TaxRepository, logger *zap.Logger) *TaxService {
	return &TaxService{repo: repo, logger: logger}
}

// CreateTax defines a new tax.
func (s *TaxService) CreateTax(ctx context.Context, req CreateTaxRequest) (*TaxDTO, error) {
	t, err := tax.NewTax(req.Name, req.Rate, tax.RateType(req.RateType), req.PerHead, tax.Applicability(req.Applicability))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to save tax: %w", err)
	}

	s.logger.Info("tax created",
		zap.String("tax_id", t.ID().String()),
		zap.String("name", t.Name()),
	)

	result := toTaxDTO(t)
	return &result, nil
}

// GetTax retrieves a single tax by ID.
func (s *TaxService) GetTax(ctx context.Context, taxID uuid.UUID) (*TaxDTO, error) {
	t, err := s.repo.FindByID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	result := toTaxDTO(t)
	return &result, nil
}

// ListTaxes retrieves tax definitions, optionally filtered by applicability.
func (s *TaxService) ListTaxes(ctx context.Context, applicability *tax.Applicability) ([]TaxDTO, error) {
	taxes, err := s.repo.List(ctx, applicability)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}

	dtos := make([]TaxDTO, len(taxes))
	for i, t := range taxes {
		dtos[i] = toTaxDTO(t)
	}
	return dtos, nil
}

// UpdateTax applies partial updates to a tax definition.
func (s *TaxService) UpdateTax(ctx context.Context, taxID uuid.UUID, req UpdateTaxRequest) (*TaxDTO, error) {
	t, err := s.repo.FindByID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	rate := -1.0
	if req.Rate != nil {
		if *req.Rate < 0 {
			return nil, domain.NewValidationError("tax rate must not be negative")
		}
		rate = *req.Rate
	}

	t.Update(req.Name, rate, tax.RateType(req.RateType), req.PerHead, tax.Applicability(req.Applicability))

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("tax updated", zap.String("tax_id", t.ID().String()))

	result := toTaxDTO(t)
	return &result, nil
}

// DeleteTax removes a tax definition.
func (s *TaxService) DeleteTax(ctx context.Context, taxID uuid.UUID) error {
	if err := s.repo.Delete(ctx, taxID); err != nil {
		return err
	}
	s.logger.Info("tax deleted", zap.String("tax_id", taxID.String()))
	return nil
}

// QuoteTaxes itemizes the taxes a booking subtotal would carry.
// Percentage rates apply to the subtotal; fixed rates are a flat amount,
// multiplied by the guest count when the tax is per head.
func (s *TaxService) QuoteTaxes(ctx context.Context, req TaxQuoteRequest) (*TaxQuoteDTO, error) {
	category := tax.Applicability(req.Category)
	if !category.IsValid() || category == tax.AppliesAll {
		return nil, domain.NewValidationError("invalid tax category: " + req.Category)
	}
	if req.SubtotalCents < 0 {
		return nil, domain.NewValidationError("subtotal must not be negative")
	}
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	taxes, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}

	quote := &TaxQuoteDTO{Items: []TaxQuoteItem{}}
	for _, t := range taxes {
		if !t.AppliesTo(category) {
			continue
		}
		var amount int64
		switch t.RateType() {
		case tax.RateTypePercentage:
			amount = int64(math.Round(float64(req.SubtotalCents) * t.Rate() / 100))
		default:
			amount = int64(math.Round(t.Rate() * 100))
		}
		if t.PerHead() {
			amount *= int64(guests)
		}
		quote.Items = append(quote.Items, TaxQuoteItem{Name: t.Name(), AmountCents: amount})
		quote.TotalCents += amount
	}
	return quote, nil
}

func toTaxDTO(t *tax.Tax) TaxDTO {
	return TaxDTO{
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
