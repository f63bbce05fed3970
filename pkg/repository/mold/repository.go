package mold

import (
	"context"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for mold data access operations.
type Repository interface {
	Create(ctx context.Context, create *dto.MoldCreate) error
	// Get returns nil, nil when the mold does not exist.
	Get(ctx context.Context, id uuid.UUID) (*dto.MoldRead, error)
	// ListByUser returns the molds of one owner ordered by name.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.MoldRead, error)
	// ListAll returns every mold with its owner ordered by company name.
	ListAll(ctx context.Context) ([]*dto.MoldRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
