package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceCreate represents the data needed to issue an invoice.
type InvoiceCreate struct {
	ID            uuid.UUID
	InvoiceNumber string
	OrderID       uuid.UUID
	UserID        uuid.UUID
	FileURL       string
	Amount        *decimal.Decimal
	IssueDate     time.Time
	Notes         *string
}

// InvoiceRead represents a read-optimized view of an invoice.
type InvoiceRead struct {
	ID            uuid.UUID        `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	OrderID       uuid.UUID        `json:"orderId"`
	UserID        uuid.UUID        `json:"userId"`
	FileURL       string           `json:"fileUrl"`
	Amount        *decimal.Decimal `json:"amount"`
	IssueDate     time.Time        `json:"issueDate"`
	Notes         *string          `json:"notes"`
	CreatedAt     time.Time        `json:"createdAt"`
	User          *Owner           `json:"user,omitempty"`
}

// InvoiceIssue is the admin input for a standalone invoice.
type InvoiceIssue struct {
	InvoiceNumber string
	OrderID       uuid.UUID
	UserID        uuid.UUID
	FileURL       string
	Amount        *decimal.Decimal
	IssueDate     *time.Time
	Notes         *string
}
