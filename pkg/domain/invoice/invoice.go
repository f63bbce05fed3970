package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceNotFound is returned when an invoice cannot be found.
	ErrInvoiceNotFound = fmt.Errorf("invoice %w", domain.ErrNotFound)
	// ErrInvalidAmount is returned for a non-positive invoice amount.
	ErrInvalidAmount = fmt.Errorf("invoice amount must be positive: %w", domain.ErrValidation)
	// ErrAmountTooPrecise is returned for amounts with fractions of a cent.
	ErrAmountTooPrecise = fmt.Errorf("invoice amount allows at most %d decimal places: %w", domain.MoneyScale, domain.ErrValidation)
)

// Invoice is an issued invoice. It is never edited, only deleted.
type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string
	OrderID       uuid.UUID
	UserID        uuid.UUID
	FileURL       string
	Amount        *decimal.Decimal
	IssueDate     time.Time
	Notes         *string
	CreatedAt     time.Time
}

// New validates and builds an invoice. A zero issueDate means now.
func New(
	number string,
	orderID, userID uuid.UUID,
	fileURL string,
	amount *decimal.Decimal,
	issueDate time.Time,
	notes *string,
) (*Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("invoice number is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(fileURL) == "" {
		return nil, fmt.Errorf("invoice file is required: %w", domain.ErrValidation)
	}
	if orderID == uuid.Nil || userID == uuid.Nil {
		return nil, fmt.Errorf("invoice needs an order and a user: %w", domain.ErrValidation)
	}
	if amount != nil {
		if !amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		if !domain.FitsScale(*amount, domain.MoneyScale) {
			return nil, ErrAmountTooPrecise
		}
	}
	now := time.Now().UTC()
	if issueDate.IsZero() {
		issueDate = now
	}
	return &Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		OrderID:       orderID,
		UserID:        userID,
		FileURL:       fileURL,
		Amount:        amount,
		IssueDate:     issueDate.UTC(),
		Notes:         notes,
		CreatedAt:     now,
	}, nil
}
