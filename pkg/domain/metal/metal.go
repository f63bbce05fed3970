// Package metal models per-client metal weight accounts and their
// append-only transaction log.
package metal

import (
	"fmt"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when a metal account cannot be found.
	ErrAccountNotFound = fmt.Errorf("metal account %w", domain.ErrNotFound)
	// ErrAmountMustBePositive is returned when a transaction amount is not positive.
	ErrAmountMustBePositive = fmt.Errorf("transaction amount must be positive: %w", domain.ErrValidation)
	// ErrAmountTooPrecise is returned for weights finer than a milligram.
	ErrAmountTooPrecise = fmt.Errorf("transaction amount allows at most %d decimal places: %w", WeightScale, domain.ErrValidation)
	// ErrInvalidMetalType is returned for a metal outside the supported set.
	ErrInvalidMetalType = fmt.Errorf("invalid metal type: %w", domain.ErrValidation)
	// ErrInvalidTransactionType is returned for a type other than CREDIT or DEBIT.
	ErrInvalidTransactionType = fmt.Errorf("invalid transaction type: %w", domain.ErrValidation)
	// ErrLabelRequired is returned when a transaction has no label.
	ErrLabelRequired = fmt.Errorf("transaction label is required: %w", domain.ErrValidation)
)

// WeightScale is the number of decimal places stored for weights (grams).
const WeightScale = 3

// ValidateAmount checks that amount is a positive weight the ledger can
// store without rounding.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !domain.FitsScale(amount, WeightScale) {
		return ErrAmountTooPrecise
	}
	return nil
}

// Type is a supported metal.
type Type string

const (
	Gold      Type = "GOLD"
	Silver    Type = "SILVER"
	Platinum  Type = "PLATINUM"
	Palladium Type = "PALLADIUM"
)

var types = []Type{Gold, Silver, Platinum, Palladium}

// Types returns every supported metal. Each ACTIVE user holds one account per
// entry.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// ParseType converts raw input into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range types {
		if t == known {
			return t, nil
		}
	}
	return "", ErrInvalidMetalType
}

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Credit, Debit:
		return t, nil
	}
	return "", ErrInvalidTransactionType
}

// Signed returns the balance effect of amount for this direction.
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == Debit {
		return amount.Neg()
	}
	return amount
}

// Account is a running balance for one user and one metal.
// A negative balance means the client owes metal.
type Account struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	MetalType  Type
	Balance    decimal.Decimal
	LastUpdate time.Time
}

// NewAccount opens an empty account.
func NewAccount(userID uuid.UUID, t Type) *Account {
	return &Account{
		ID:         uuid.New(),
		UserID:     userID,
		MetalType:  t,
		Balance:    decimal.Zero,
		LastUpdate: time.Now().UTC(),
	}
}

// Entry is a validated ledger posting not yet bound to an account.
type Entry struct {
	Type   TransactionType
	Amount decimal.Decimal
	Label  string
	Date   time.Time
}

// NewEntry validates a posting. A zero date means now.
func NewEntry(t TransactionType, amount decimal.Decimal, label string, date time.Time) (Entry, error) {
	if t != Credit && t != Debit {
		return Entry{}, ErrInvalidTransactionType
	}
	if err := ValidateAmount(amount); err != nil {
		return Entry{}, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return Entry{}, ErrLabelRequired
	}
	if date.IsZero() {
		date = time.Now()
	}
	return Entry{Type: t, Amount: amount, Label: label, Date: date.UTC()}, nil
}

// Delta is the signed balance change of the entry.
func (e Entry) Delta() decimal.Decimal {
	return e.Type.Signed(e.Amount)
}

// Transaction is a persisted ledger entry.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Entry
}

// Apply posts e to the in-memory account and returns the transaction to
// persist alongside the new balance.
func (a *Account) Apply(e Entry) *Transaction {
	a.Balance = a.Balance.Add(e.Delta())
	a.LastUpdate = time.Now().UTC()
	return &Transaction{ID: uuid.New(), AccountID: a.ID, Entry: e}
}

// Balance folds a transaction log into the balance it implies.
func Balance(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Delta())
	}
	return sum
}

// DebitLabel is the ledger label used when closing an order debits an account.
func DebitLabel(orderID uuid.UUID, invoiceNumber string) string {
	return fmt.Sprintf("Commande %s - Facture %s", orderID.String()[:8], invoiceNumber)
}
