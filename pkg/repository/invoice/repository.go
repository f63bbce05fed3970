package invoice

import (
	"context"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for invoice data access operations.
// Invoices are never updated.
type Repository interface {
	Create(ctx context.Context, create *dto.InvoiceCreate) error
	// Get returns nil, nil when the invoice does not exist.
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceRead, error)
	ListAll(ctx context.Context) ([]*dto.InvoiceRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.InvoiceRead, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*dto.InvoiceRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
