package taxi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/calendar"
)

// BookingType distinguishes airport pickups from dropoffs.
type BookingType string

const (
	BookingTypePickup  BookingType = "pickup"
	BookingTypeDropoff BookingType = "dropoff"
)

// IsValid returns true if the booking type is recognized.
func (t BookingType) IsValid() bool {
	return t == BookingTypePickup || t == BookingTypeDropoff
}

// BookingStatus represents the state of a taxi booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// taxiTransitions defines the taxi booking state machine. Taxi rides
// have no confirmation step; pending goes straight to a terminal state.
var taxiTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanTransitionTo returns true if a transition to target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range taxiTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts a string to a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := taxiTransitions[status]; !ok {
		return "", fmt.Errorf("invalid taxi booking status: %s", s)
	}
	return status, nil
}

// Rider holds the passenger's contact details.
type Rider struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
	Email          string `json:"email"`
}

// Booking is the aggregate root for one airport transfer reservation.
type Booking struct {
	id          uuid.UUID
	pickup      string
	destination string
	flightNo    string
	airline     string
	arrivalDay  calendar.Day
	arrivalTime string
	bookingType BookingType
	rider       Rider
	luggage     string
	instruction string
	carType     CarType
	priceCents  int64
	status      BookingStatus
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a pending taxi booking, pricing it from the car type.
func NewBooking(
	pickup, destination, flightNo, airline string,
	arrivalDay calendar.Day,
	arrivalTime string,
	bookingType BookingType,
	rider Rider,
	luggage, instruction string,
	carType CarType,
) (*Booking, error) {
	if pickup == "" || destination == "" {
		return nil, domain.NewValidationError("pickup and destination are required")
	}
	if !bookingType.IsValid() {
		return nil, domain.NewValidationError("invalid booking type: " + string(bookingType))
	}
	if !carType.IsValid() {
		return nil, domain.NewValidationError("invalid car type: " + string(carType))
	}
	if rider.FirstName == "" || rider.Phone == "" {
		return nil, domain.NewValidationError("rider name and phone are required")
	}
	if _, err := calendar.ParseDay(string(arrivalDay)); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	now := time.Now().UTC()
	return &Booking{
		id:          uuid.New(),
		pickup:      pickup,
		destination: destination,
		flightNo:    flightNo,
		airline:     airline,
		arrivalDay:  arrivalDay,
		arrivalTime: arrivalTime,
		bookingType: bookingType,
		rider:       rider,
		luggage:     luggage,
		instruction: instruction,
		carType:     carType,
		priceCents:  carType.BaseFareCents(),
		status:      BookingStatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructBooking rebuilds a taxi Booking from persistence data.
func ReconstructBooking(
	id uuid.UUID,
	pickup, destination, flightNo, airline string,
	arrivalDay calendar.Day,
	arrivalTime string,
	bookingType BookingType,
	rider Rider,
	luggage, instruction string,
	carType CarType,
	priceCents int64,
	status BookingStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		pickup:      pickup,
		destination: destination,
		flightNo:    flightNo,
		airline:     airline,
		arrivalDay:  arrivalDay,
		arrivalTime: arrivalTime,
		bookingType: bookingType,
		rider:       rider,
		luggage:     luggage,
		instruction: instruction,
		carType:     carType,
		priceCents:  priceCents,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Pickup() string           { return b.pickup }
func (b *Booking) Destination() string      { return b.destination }
func (b *Booking) FlightNo() string         { return b.flightNo }
func (b *Booking) Airline() string          { return b.airline }
func (b *Booking) ArrivalDay() calendar.Day { return b.arrivalDay }
func (b *Booking) ArrivalTime() string      { return b.arrivalTime }
func (b *Booking) BookingType() BookingType { return b.bookingType }
func (b *Booking) Rider() Rider             { return b.rider }
func (b *Booking) Luggage() string          { return b.luggage }
func (b *Booking) Instruction() string      { return b.instruction }
func (b *Booking) CarType() CarType         { return b.carType }
func (b *Booking) PriceCents() int64        { return b.priceCents }
func (b *Booking) Status() BookingStatus    { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

// --- Behavior ---

// Complete marks the transfer as done.
func (b *Booking) Complete() error {
	if !b.status.CanTransitionTo(BookingStatusCompleted) {
		return domain.NewInvalidStateError(string(b.status), string(BookingStatusCompleted))
	}
	b.status = BookingStatusCompleted
	b.updatedAt = time.Now().UTC()
	return nil
}

// Cancel cancels a pending transfer.
func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(BookingStatusCancelled) {
		return domain.NewInvalidStateError(string(b.status), string(BookingStatusCancelled))
	}
	b.status = BookingStatusCancelled
	b.updatedAt = time.Now().UTC()
	return nil
}
