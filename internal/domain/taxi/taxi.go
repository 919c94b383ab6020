package taxi

import (
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
)

// CarType classifies the airport-taxi fleet.
type CarType string

const (
	CarTypeStandardSedan CarType = "standard_sedan"
	CarTypePremiumSedan  CarType = "premium_sedan"
	CarTypeSUV           CarType = "suv"
	CarTypeMiniBus       CarType = "mini_bus"
)

// IsValid returns true if the car type is recognized.
func (c CarType) IsValid() bool {
	switch c {
	case CarTypeStandardSedan, CarTypePremiumSedan, CarTypeSUV, CarTypeMiniBus:
		return true
	}
	return false
}

// BaseFareCents returns the flat fare for a car type. The table mirrors
// the storefront's published airport-transfer prices.
func (c CarType) BaseFareCents() int64 {
	switch c {
	case CarTypePremiumSedan:
		return 15000
	case CarTypeSUV:
		return 20000
	case CarTypeMiniBus:
		return 25000
	default:
		return 10000
	}
}

// Status represents whether a taxi is available for new bookings.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Taxi is the aggregate root for one fleet vehicle.
type Taxi struct {
	id              uuid.UUID
	name            string
	carType         CarType
	passengerSeats  int
	luggageQuantity int
	carryOnLuggage  int
	priceCents      int64
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTaxi creates an active taxi with validated fields. The price
// defaults to the car type's base fare when not supplied.
func NewTaxi(name string, carType CarType, passengerSeats, luggageQuantity, carryOnLuggage int, priceCents int64) (*Taxi, error) {
	if name == "" {
		return nil, domain.NewValidationError("taxi name is required")
	}
	if !carType.IsValid() {
		return nil, domain.NewValidationError("invalid car type: " + string(carType))
	}
	if passengerSeats <= 0 {
		return nil, domain.NewValidationError("passenger seats must be positive")
	}
	if priceCents <= 0 {
		priceCents = carType.BaseFareCents()
	}

	now := time.Now().UTC()
	return &Taxi{
		id:              uuid.New(),
		name:            name,
		carType:         carType,
		passengerSeats:  passengerSeats,
		luggageQuantity: luggageQuantity,
		carryOnLuggage:  carryOnLuggage,
		priceCents:      priceCents,
		status:          StatusActive,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a Taxi from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name string,
	carType CarType,
	passengerSeats, luggageQuantity, carryOnLuggage int,
	priceCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Taxi {
	return &Taxi{
		id:              id,
		name:            name,
		carType:         carType,
		passengerSeats:  passengerSeats,
		luggageQuantity: luggageQuantity,
		carryOnLuggage:  carryOnLuggage,
		priceCents:      priceCents,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// --- Getters ---

func (t *Taxi) ID() uuid.UUID        { return t.id }
func (t *Taxi) Name() string         { return t.name }
func (t *Taxi) CarType() CarType     { return t.carType }
func (t *Taxi) PassengerSeats() int  { return t.passengerSeats }
func (t *Taxi) LuggageQuantity() int { return t.luggageQuantity }
func (t *Taxi) CarryOnLuggage() int  { return t.carryOnLuggage }
func (t *Taxi) PriceCents() int64    { return t.priceCents }
func (t *Taxi) Status() Status       { return t.status }
func (t *Taxi) CreatedAt() time.Time { return t.createdAt }
func (t *Taxi) UpdatedAt() time.Time { return t.updatedAt }

// --- Behavior ---

// Update applies partial updates; zero values leave fields unchanged.
func (t *Taxi) Update(name string, passengerSeats, luggageQuantity, carryOnLuggage int, priceCents int64) {
	if name != "" {
		t.name = name
	}
	if passengerSeats > 0 {
		t.passengerSeats = passengerSeats
	}
	if luggageQuantity > 0 {
		t.luggageQuantity = luggageQuantity
	}
	if carryOnLuggage > 0 {
		t.carryOnLuggage = carryOnLuggage
	}
	if priceCents > 0 {
		t.priceCents = priceCents
	}
	t.updatedAt = time.Now().UTC()
}

// Close takes the taxi out of service.
func (t *Taxi) Close() {
	t.status = StatusClosed
	t.updatedAt = time.Now().UTC()
}

// IsActive returns true if the taxi accepts new bookings.
func (t *Taxi) IsActive() bool {
	return t.status == StatusActive
}
