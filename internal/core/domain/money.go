package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal amount with a currency label.
// Amounts keep full precision through every calculation; we only round
// when the value is shown on a display or a receipt.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a new Money instance
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// Display renders the amount for the cashier, e.g. "LSL 41.37".
// This is the ONLY place an amount gets rounded.
func (m Money) Display() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}

// DisplayAmount returns just the rounded figure, e.g. "41.37".
func (m Money) DisplayAmount() string {
	return m.Amount.StringFixed(2)
}
