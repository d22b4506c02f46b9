package valueobjects

import (
	"fmt"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with a specific currency.
type Money struct {
	amount   decimal.Decimal
	currency types.Currency
}

// NewMoney creates a new Money instance with validation.
func NewMoney(amount decimal.Decimal, currency types.Currency) (*Money, error) {
	if !currency.IsValid() {
		return nil, errors.ValidationFailed(
			"invalid currency",
			fmt.Sprintf("currency %s is not supported", currency),
		)
	}

	if amount.LessThan(decimal.Zero) {
		return nil, errors.ValidationFailed(
			"invalid amount",
			"amount cannot be negative",
		)
	}

	return &Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyFromFloat creates a Money instance from a float amount.
func NewMoneyFromFloat(amount float64, currency types.Currency) (*Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Zero returns a zero-valued Money in the given currency.
func Zero(currency types.Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() types.Currency {
	return m.currency
}

// Float64 returns the amount as a float64, rounded to 2 decimal places.
func (m Money) Float64() float64 {
	f, _ := m.amount.Round(2).Float64()
	return f
}

// Add adds two monetary values of the same currency.
func (m Money) Add(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.ValidationFailed(
			"currency mismatch",
			fmt.Sprintf("cannot add %s to %s", other.currency, m.currency),
		)
	}

	return &Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
	}, nil
}

// Mul multiplies the amount by an integer factor (e.g. item quantity).
func (m Money) Mul(n int) Money {
	return Money{
		amount:   m.amount.Mul(decimal.NewFromInt(int64(n))),
		currency: m.currency,
	}
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals checks if two monetary values are equal.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns a string representation of the money value.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}
