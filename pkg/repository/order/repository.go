package order

import (
	"context"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for order data access operations.
// Reads include the owner identity.
type Repository interface {
	Create(ctx context.Context, create *dto.OrderCreate) error
	// Update applies the non-nil fields of update. It fails with
	// domain.ErrNotFound when no order has the given ID.
	Update(ctx context.Context, id uuid.UUID, update *dto.OrderUpdate) error
	// Get returns nil, nil when the order does not exist.
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.OrderRead, error)
	ListAll(ctx context.Context) ([]*dto.OrderRead, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
