package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative amount in the seller's
// settlement currency. Amounts are backed by arbitrary-precision decimals so
// that ledger arithmetic never drifts the way float math does.
//
// The zero value is a valid zero amount. Negative amounts cannot be
// constructed; subtraction below zero fails instead of going negative.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "1000" or "199.90".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the canonical decimal string of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s - %s is negative", m.amount.String(), other.amount.String()),
		)
	}
	return Money{amount: result}, nil
}

// MulRate multiplies the amount by a fractional rate, e.g. a commission rate
// of 0.10.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// MulInt multiplies the amount by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
