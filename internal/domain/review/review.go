package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
)

// Review is a guest's rating of a completed stay, tied to the booking
// it came from.
type Review struct {
	id          uuid.UUID
	listingID   uuid.UUID
	bookingID   uuid.UUID
	title       string
	description string
	rating      int
	name        string
	createdAt   time.Time
}

// NewReview creates a review with validated fields. Ratings are whole
// stars from 1 to 5.
func NewReview(listingID, bookingID uuid.UUID, title, description string, rating int, name string) (*Review, error) {
	if listingID == uuid.Nil {
		return nil, domain.NewValidationError("listing ID is required")
	}
	if bookingID == uuid.Nil {
		return nil, domain.NewValidationError("booking ID is required")
	}
	if rating < 1 || rating > 5 {
		return nil, domain.NewValidationError("rating must be between 1 and 5")
	}
	if name == "" {
		return nil, domain.NewValidationError("reviewer name is required")
	}

	return &Review{
		id:          uuid.New(),
		listingID:   listingID,
		bookingID:   bookingID,
		title:       title,
		description: description,
		rating:      rating,
		name:        name,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Review from persistence data (no validation).
func Reconstruct(id, listingID, bookingID uuid.UUID, title, description string, rating int, name string, createdAt time.Time) *Review {
	return &Review{
		id:          id,
		listingID:   listingID,
		bookingID:   bookingID,
		title:       title,
		description: description,
		rating:      rating,
		name:        name,
		createdAt:   createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ListingID() uuid.UUID { return r.listingID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Title() string        { return r.title }
func (r *Review) Description() string  { return r.description }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Name() string         { return r.name }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
