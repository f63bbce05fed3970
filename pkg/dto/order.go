package dto

import (
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCreate represents the data needed to create an order.
type OrderCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	StlFileURL     *string
	EstimatedPrice *decimal.Decimal
	Status         order.Status
}

// OrderUpdate represents the mutable fields of an order.
type OrderUpdate struct {
	Status         *order.Status
	EstimatedPrice *decimal.Decimal
}

// OrderRead represents a read-optimized view of an order.
type OrderRead struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"userId"`
	StlFileURL     *string          `json:"stlFileUrl"`
	EstimatedPrice *decimal.Decimal `json:"estimatedPrice"`
	Status         order.Status     `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	User           *Owner           `json:"user,omitempty"`
}

// OrderClose is the input of the order closing workflow.
type OrderClose struct {
	InvoiceNumber      string
	InvoiceFileURL     string
	FinalAmount        *decimal.Decimal
	FinalWeight        *decimal.Decimal
	DebitWeightAccount bool
	MetalType          *metal.Type
}

// WantsDebit reports whether closing must post a ledger debit.
func (c *OrderClose) WantsDebit() bool {
	return c.DebitWeightAccount && c.FinalWeight != nil && c.MetalType != nil
}

// OrderCloseResult is everything the closing workflow produced.
type OrderCloseResult struct {
	Order       *OrderRead            `json:"order"`
	Invoice     *InvoiceRead          `json:"invoice"`
	Transaction *MetalTransactionRead `json:"transaction,omitempty"`
}
