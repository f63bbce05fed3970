package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places stored for amounts in euros.
const MoneyScale = 2

// FitsScale reports whether d has no significant digits beyond places
// decimal places.
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
