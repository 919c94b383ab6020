package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// Guest is an immutable value object holding the guest's contact details.
type Guest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Booking is the aggregate root for a guest reservation against one
// listing. A booking occupies every calendar day from check-in to
// check-out inclusive, unless it is cancelled.
type Booking struct {
	id              uuid.UUID
	listingID       uuid.UUID
	category        listing.Category
	guest           Guest
	checkIn         calendar.Day
	checkOut        calendar.Day
	guests          int
	nights          int
	taxesCents      int64
	totalPriceCents int64
	status          Status

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a pending booking with validated fields.
func NewBooking(
	listingID uuid.UUID,
	category listing.Category,
	guest Guest,
	checkIn, checkOut calendar.Day,
	guests int,
	taxesCents, totalPriceCents int64,
) (*Booking, error) {
	if listingID == uuid.Nil {
		return nil, domain.NewValidationError("listing ID is required")
	}
	if !category.IsValid() {
		return nil, domain.NewValidationError("invalid listing category: " + string(category))
	}
	if guest.FirstName == "" || guest.LastName == "" {
		return nil, domain.NewValidationError("guest name is required")
	}
	if guest.Email == "" {
		return nil, domain.NewValidationError("guest email is required")
	}
	if _, err := calendar.ParseDay(string(checkIn)); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	if _, err := calendar.ParseDay(string(checkOut)); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	if checkOut.Before(checkIn) {
		return nil, domain.NewValidationError("check-out must not precede check-in")
	}
	if guests <= 0 {
		return nil, domain.NewValidationError("guest count must be positive")
	}
	if totalPriceCents < 0 {
		return nil, domain.NewValidationError("total price must not be negative")
	}

	now := time.Now().UTC()
	return &Booking{
		id:              uuid.New(),
		listingID:       listingID,
		category:        category,
		guest:           guest,
		checkIn:         checkIn,
		checkOut:        checkOut,
		guests:          guests,
		nights:          nightsBetween(checkIn, checkOut),
		taxesCents:      taxesCents,
		totalPriceCents: totalPriceCents,
		status:          StatusPending,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, listingID uuid.UUID,
	category listing.Category,
	guest Guest,
	checkIn, checkOut calendar.Day,
	guests, nights int,
	taxesCents, totalPriceCents int64,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		listingID:       listingID,
		category:        category,
		guest:           guest,
		checkIn:         checkIn,
		checkOut:        checkOut,
		guests:          guests,
		nights:          nights,
		taxesCents:      taxesCents,
		totalPriceCents: totalPriceCents,
		status:          status,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// nightsBetween counts full nights between two inclusive stay days.
// A same-day stay is zero nights but still one occupied day.
func nightsBetween(checkIn, checkOut calendar.Day) int {
	return int(checkOut.Time().Sub(checkIn.Time()).Hours() / 24)
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ListingID() uuid.UUID       { return b.listingID }
func (b *Booking) Category() listing.Category { return b.category }
func (b *Booking) Guest() Guest               { return b.guest }
func (b *Booking) CheckIn() calendar.Day      { return b.checkIn }
func (b *Booking) CheckOut() calendar.Day     { return b.checkOut }
func (b *Booking) Guests() int                { return b.guests }
func (b *Booking) Nights() int                { return b.nights }
func (b *Booking) TaxesCents() int64          { return b.taxesCents }
func (b *Booking) TotalPriceCents() int64     { return b.totalPriceCents }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Version() int64             { return b.version }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

// Stay returns the calendar slice of this booking for occupancy derivation.
func (b *Booking) Stay() calendar.Stay {
	return calendar.Stay{
		CheckIn:  b.checkIn,
		CheckOut: b.checkOut,
		Active:   b.status.IsActive(),
	}
}

// --- Behavior ---

// Confirm transitions the booking from pending to confirmed.
func (b *Booking) Confirm() error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return domain.NewInvalidStateError(string(b.status), string(StatusConfirmed))
	}
	b.status = StatusConfirmed
	b.updatedAt = time.Now().UTC()
	return nil
}

// Complete transitions the booking from confirmed to completed.
func (b *Booking) Complete() error {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return domain.NewInvalidStateError(string(b.status), string(StatusCompleted))
	}
	b.status = StatusCompleted
	b.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the booking to cancelled, releasing its calendar days.
func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return domain.NewInvalidStateError(string(b.status), string(StatusCancelled))
	}
	b.status = StatusCancelled
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
