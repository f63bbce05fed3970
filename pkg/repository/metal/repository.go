package metal

import (
	"context"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for metal account data access.
type AccountRepository interface {
	Create(ctx context.Context, create *dto.MetalAccountCreate) error
	// Get returns nil, nil when the account does not exist.
	Get(ctx context.Context, id uuid.UUID) (*dto.MetalAccountRead, error)
	// GetByUserAndType returns nil, nil when the user holds no such account.
	GetByUserAndType(ctx context.Context, userID uuid.UUID, t metal.Type) (*dto.MetalAccountRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.MetalAccountRead, error)
	// ListAll returns every account with its owner, lowest balance first.
	ListAll(ctx context.Context) ([]*dto.MetalAccountRead, error)
	// GetForUpdate is Get with the row locked until the unit of work ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.MetalAccountRead, error)
	// SetBalance stores a balance computed by the caller under GetForUpdate.
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, at time.Time) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// TransactionRepository defines the interface for the append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, create *dto.MetalTransactionCreate) error
	// ListRecent returns the newest limit entries of an account, date desc.
	ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]*dto.MetalTransactionRead, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.MetalTransactionRead, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
