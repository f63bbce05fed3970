package dto

import (
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetalAccountCreate represents the data needed to open a metal account.
type MetalAccountCreate struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MetalType metal.Type
	Balance   decimal.Decimal
}

// MetalAccountRead represents a read-optimized view of a metal account.
type MetalAccountRead struct {
	ID           uuid.UUID               `json:"id"`
	UserID       uuid.UUID               `json:"userId"`
	MetalType    metal.Type              `json:"metalType"`
	Balance      decimal.Decimal         `json:"balance"`
	LastUpdate   time.Time               `json:"lastUpdate"`
	User         *Owner                  `json:"user,omitempty"`
	Transactions []*MetalTransactionRead `json:"transactions,omitempty"`
}

// MetalTransactionCreate represents a ledger entry to persist.
type MetalTransactionCreate struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Type      metal.TransactionType
	Amount    decimal.Decimal
	Label     string
	Date      time.Time
}

// MetalTransactionRead represents a persisted ledger entry.
type MetalTransactionRead struct {
	ID        uuid.UUID             `json:"id"`
	AccountID uuid.UUID             `json:"accountId"`
	Type      metal.TransactionType `json:"type"`
	Amount    decimal.Decimal       `json:"amount"`
	Label     string                `json:"label"`
	Date      time.Time             `json:"date"`
}

// MetalTransactionInput is the admin input for a manual posting.
type MetalTransactionInput struct {
	Type   metal.TransactionType
	Amount decimal.Decimal
	Label  string
	Date   *time.Time
}
