package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/domain/listing"
)

// ListFilter narrows booking list queries.
type ListFilter struct {
	Category *listing.Category
	// Window filters on the check-out day relative to today:
	// "active" keeps stays that have not ended, "expired" the rest.
	Window string
}

// ListSort orders booking list queries.
type ListSort struct {
	Field     string // "created_at" or "total_price"
	Ascending bool
}

// BookingRepository defines the persistence contract for bookings.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByListingID retrieves all bookings for a listing, any status,
	// ascending by check-in day. This is the availability engine's read.
	FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*Booking, error)

	// List retrieves bookings with pagination, filtering, and sorting.
	List(ctx context.Context, filter ListFilter, sort ListSort, page, limit int) ([]*Booking, int64, error)

	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// CountCreatedBetween returns how many bookings were created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)

	// FindRecent retrieves the most recently created bookings.
	FindRecent(ctx context.Context, limit int, category *listing.Category) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, b *Booking) error

	// Delete removes a booking by identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
