package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound is returned when an order cannot be found.
	ErrOrderNotFound = fmt.Errorf("order %w", domain.ErrNotFound)
	// ErrInvalidStatus is returned for a status outside the lifecycle.
	ErrInvalidStatus = fmt.Errorf("invalid order status: %w", domain.ErrValidation)
	// ErrInvalidPrice is returned for a non-positive estimated price.
	ErrInvalidPrice = fmt.Errorf("estimated price must be positive: %w", domain.ErrValidation)
	// ErrPriceTooPrecise is returned for prices with fractions of a cent.
	ErrPriceTooPrecise = fmt.Errorf("estimated price allows at most %d decimal places: %w", domain.MoneyScale, domain.ErrValidation)
)

// Status is an order lifecycle stage.
type Status string

// Lifecycle stages, in order.
const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCasting    Status = "CASTING"
	StatusFinishing  Status = "FINISHING"
	StatusShipped    Status = "SHIPPED"
)

// StatusClosed is the terminal stage set when an order is closed.
const StatusClosed = StatusShipped

var lifecycle = []Status{
	StatusPending,
	StatusProcessing,
	StatusCasting,
	StatusFinishing,
	StatusShipped,
}

// Statuses returns the lifecycle stages in order.
func Statuses() []Status {
	out := make([]Status, len(lifecycle))
	copy(out, lifecycle)
	return out
}

// ParseStatus converts raw input into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if st.rank() < 0 {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) rank() int {
	for i, st := range lifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

// Order is a client casting order.
type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	StlFileURL     *string
	EstimatedPrice *decimal.Decimal
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New creates a PENDING order for userID.
func New(userID uuid.UUID, stlFileURL *string, estimatedPrice *decimal.Decimal) (*Order, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("userID is required: %w", domain.ErrValidation)
	}
	if estimatedPrice != nil {
		if !estimatedPrice.IsPositive() {
			return nil, ErrInvalidPrice
		}
		if !domain.FitsScale(*estimatedPrice, domain.MoneyScale) {
			return nil, ErrPriceTooPrecise
		}
	}
	now := time.Now().UTC()
	return &Order{
		ID:             uuid.New(),
		UserID:         userID,
		StlFileURL:     stlFileURL,
		EstimatedPrice: estimatedPrice,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
