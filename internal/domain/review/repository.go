package review

import (
	"context"

	"github.com/google/uuid"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*Review, error)
	List(ctx context.Context, page, limit int) ([]*Review, int64, error)
	Save(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
