package calendar

import (
	"context"

	"github.com/google/uuid"
)

// BlockedDateRepository defines the persistence contract for blocked dates.
type BlockedDateRepository interface {
	// FindByListingID retrieves all blocked dates for a listing, ascending by day.
	FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*BlockedDate, error)

	// ExistsForDay reports whether the listing already has a block on the day.
	ExistsForDay(ctx context.Context, listingID uuid.UUID, day Day) (bool, error)

	// Save persists a new blocked date.
	Save(ctx context.Context, bd *BlockedDate) error

	// Delete removes a blocked date by identifier. Returns a not-found
	// error when the id does not exist, so callers can tell "already
	// gone" apart from success.
	Delete(ctx context.Context, id uuid.UUID) error
}
