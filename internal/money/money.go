// Package money converts between decimal currency amounts and integer minor units.
//
// All monetary arithmetic in splitledger happens on Cents. Decimals only appear at the
// boundary: parsing request fields and rendering amounts back to clients.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount is not a clean 2-decimal value,
// does not fit in the cents range, or is not positive where it must be.
var ErrInvalidAmount = errors.New("invalid amount")

// Scale is the number of fractional digits carried by an amount.
const Scale = 2

// Cents represents money in the smallest unit (no floats).
type Cents int64

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// ToCents returns the exact number of minor units in amount.
// It fails with ErrInvalidAmount if amount has more than 2 significant
// fractional digits or overflows int64 cents.
func ToCents(amount decimal.Decimal) (Cents, error) {
	shifted := amount.Shift(Scale)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount.String(), Scale)
	}
	if shifted.GreaterThan(maxCents) || shifted.LessThan(minCents) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, amount.String())
	}
	return Cents(shifted.IntPart()), nil
}

// Parse parses a decimal string such as "12.50" into cents.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	return ToCents(d)
}

// FromCents returns c as a decimal with exactly two fractional digits.
func FromCents(c Cents) decimal.Decimal {
	return decimal.New(int64(c), -Scale)
}

// Decimal is shorthand for FromCents(c).
func (c Cents) Decimal() decimal.Decimal {
	return FromCents(c)
}

// String renders c with exactly two fractional digits, e.g. "-12.05" or "50.00".
// This is the wire form of every amount.
func (c Cents) String() string {
	return FromCents(c).StringFixed(Scale)
}

// RequirePositive fails with ErrInvalidAmount unless c > 0.
func RequirePositive(c Cents) error {
	if c <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, c)
	}
	return nil
}
