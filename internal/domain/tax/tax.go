package tax

import (
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
)

// RateType says whether a tax rate is a percentage of the total or a
// fixed amount per booking.
type RateType string

const (
	RateTypePercentage RateType = "percentage"
	RateTypeFixed      RateType = "fixed"
)

// IsValid returns true if the rate type is recognized.
func (t RateType) IsValid() bool {
	return t == RateTypePercentage || t == RateTypeFixed
}

// Applicability names which booking categories a tax applies to.
type Applicability string

const (
	AppliesApartment   Applicability = "apartment"
	AppliesAttraction  Applicability = "attraction"
	AppliesAirportTaxi Applicability = "airport_taxi"
	AppliesAll         Applicability = "all"
)

// IsValid returns true if the applicability is recognized.
func (a Applicability) IsValid() bool {
	switch a {
	case AppliesApartment, AppliesAttraction, AppliesAirportTaxi, AppliesAll:
		return true
	}
	return false
}

// Tax is a configurable levy applied to bookings at checkout.
type Tax struct {
	id            uuid.UUID
	name          string
	rate          float64
	rateType      RateType
	perHead       bool
	applicability Applicability
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTax creates a tax definition with validated fields.
func NewTax(name string, rate float64, rateType RateType, perHead bool, applicability Applicability) (*Tax, error) {
	if name == "" {
		return nil, domain.NewValidationError("tax name is required")
	}
	if rate < 0 {
		return nil, domain.NewValidationError("tax rate must not be negative")
	}
	if !rateType.IsValid() {
		return nil, domain.NewValidationError("invalid tax rate type: " + string(rateType))
	}
	if !applicability.IsValid() {
		return nil, domain.NewValidationError("invalid tax applicability: " + string(applicability))
	}

	now := time.Now().UTC()
	return &Tax{
		id:            uuid.New(),
		name:          name,
		rate:          rate,
		rateType:      rateType,
		perHead:       perHead,
		applicability: applicability,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a Tax from persistence data (no validation).
func Reconstruct(id uuid.UUID, name string, rate float64, rateType RateType, perHead bool, applicability Applicability, createdAt, updatedAt time.Time) *Tax {
	return &Tax{
		id:            id,
		name:          name,
		rate:          rate,
		rateType:      rateType,
		perHead:       perHead,
		applicability: applicability,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (t *Tax) ID() uuid.UUID                { return t.id }
func (t *Tax) Name() string                 { return t.name }
func (t *Tax) Rate() float64                { return t.rate }
func (t *Tax) RateType() RateType           { return t.rateType }
func (t *Tax) PerHead() bool                { return t.perHead }
func (t *Tax) Applicability() Applicability { return t.applicability }
func (t *Tax) CreatedAt() time.Time         { return t.createdAt }
func (t *Tax) UpdatedAt() time.Time         { return t.updatedAt }

// Update applies partial updates to the tax definition.
func (t *Tax) Update(name string, rate float64, rateType RateType, perHead *bool, applicability Applicability) {
	if name != "" {
		t.name = name
	}
	if rate >= 0 {
		t.rate = rate
	}
	if rateType.IsValid() {
		t.rateType = rateType
	}
	if perHead != nil {
		t.perHead = *perHead
	}
	if applicability.IsValid() {
		t.applicability = applicability
	}
	t.updatedAt = time.Now().UTC()
}

// AppliesTo reports whether the tax covers the given category.
func (t *Tax) AppliesTo(category Applicability) bool {
	return t.applicability == AppliesAll || t.applicability == category
}
