package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput is the body of a standalone invoice.
type CreateInput struct {
	InvoiceNumber string           `json:"invoiceNumber" validate:"required,max=64"`
	OrderID       uuid.UUID        `json:"orderId" validate:"required"`
	UserID        uuid.UUID        `json:"userId" validate:"required"`
	FileURL       string           `json:"fileUrl" validate:"required,fileref"`
	Amount        *decimal.Decimal `json:"amount"`
	IssueDate     *time.Time       `json:"issueDate"`
	Notes         *string          `json:"notes" validate:"omitempty,max=2000"`
}
