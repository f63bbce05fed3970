package weight

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionInput is a manual ledger posting.
type TransactionInput struct {
	Type   string           `json:"type" validate:"required,oneof=CREDIT DEBIT"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
	Label  string           `json:"label" validate:"required,max=255"`
	Date   *time.Time       `json:"date"`
}
