package listing

import (
	"context"

	"github.com/google/uuid"
)

// ListingRepository defines the persistence contract for listings.
type ListingRepository interface {
	// FindByID retrieves a listing by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Listing, error)

	// List retrieves listings with pagination, optionally filtered by category.
	List(ctx context.Context, category *Category, page, limit int) ([]*Listing, int64, error)

	// Count returns the total number of listings.
	Count(ctx context.Context) (int64, error)

	// Save persists a new listing.
	Save(ctx context.Context, l *Listing) error

	// Update persists changes to an existing listing.
	Update(ctx context.Context, l *Listing) error

	// Delete removes a listing by identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
