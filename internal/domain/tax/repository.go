package tax

import (
	"context"

	"github.com/google/uuid"
)

// TaxRepository defines the persistence contract for tax definitions.
type TaxRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tax, error)
	List(ctx context.Context, applicability *Applicability) ([]*Tax, error)
	Save(ctx context.Context, t *Tax) error
	Update(ctx context.Context, t *Tax) error
	Delete(ctx context.Context, id uuid.UUID) error
}
