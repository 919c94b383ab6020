package taxi

import (
	"context"

	"github.com/google/uuid"
)

// TaxiRepository defines the persistence contract for fleet vehicles.
type TaxiRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Taxi, error)
	List(ctx context.Context, page, limit int) ([]*Taxi, int64, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, t *Taxi) error
	Update(ctx context.Context, t *Taxi) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaxiBookingRepository defines the persistence contract for airport transfers.
type TaxiBookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, status *BookingStatus, page, limit int) ([]*Booking, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Save(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}
