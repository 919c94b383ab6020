package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// BlockedDate is an admin-authored override removing one calendar day
// from a listing's availability, independent of any bookings covering
// it. It is created by an explicit block action and destroyed by an
// explicit unblock; nothing else mutates it.
type BlockedDate struct {
	id        uuid.UUID
	listingID uuid.UUID
	category  listing.Category
	day       Day
	reason    string
	createdAt time.Time
}

// NewBlockedDate creates a blocked-date record for the given listing and day.
func NewBlockedDate(listingID uuid.UUID, category listing.Category, day Day, reason string) (*BlockedDate, error) {
	if listingID == uuid.Nil {
		return nil, domain.NewValidationError("listing ID is required")
	}
	if !category.IsValid() {
		return nil, domain.NewValidationError("invalid listing category: " + string(category))
	}
	if _, err := ParseDay(string(day)); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	return &BlockedDate{
		id:        uuid.New(),
		listingID: listingID,
		category:  category,
		day:       day,
		reason:    reason,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructBlockedDate rebuilds a BlockedDate from persistence data.
func ReconstructBlockedDate(
	id, listingID uuid.UUID,
	category listing.Category,
	day Day,
	reason string,
	createdAt time.Time,
) *BlockedDate {
	return &BlockedDate{
		id:        id,
		listingID: listingID,
		category:  category,
		day:       day,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (b *BlockedDate) ID() uuid.UUID              { return b.id }
func (b *BlockedDate) ListingID() uuid.UUID       { return b.listingID }
func (b *BlockedDate) Category() listing.Category { return b.category }
func (b *BlockedDate) Day() Day                   { return b.day }
func (b *BlockedDate) Reason() string             { return b.reason }
func (b *BlockedDate) CreatedAt() time.Time       { return b.createdAt }
