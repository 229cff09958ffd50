package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// It wraps github.com/shopspring/decimal so totals are computed with exact
// decimal arithmetic instead of floating point.
//
// Unlike other kernel value objects the zero value of Money is meaningful:
// it represents an amount of zero, which is a legal order total.
//
// Money is immutable and thread-safe.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns a ValueIsInvalidError for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "10.00" into a Money.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
// "10.0" and "10.00" compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the amount is non-negative.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
