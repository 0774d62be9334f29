// Package amount converts between display amounts (XMR) and atomic units
// (piconero).
package amount

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// AtomicDecimals is the number of decimal places between one display unit and
// one atomic unit.
const AtomicDecimals = 12

var (
	ErrNegative  = errors.New("amount must not be negative")
	ErrPrecision = fmt.Errorf("amount has more than %d decimal places", AtomicDecimals)
	ErrOverflow  = errors.New("amount exceeds atomic unit range")
)

// ToAtomic converts a display amount to atomic units. Amounts finer than one
// atomic unit are rejected rather than rounded.
func ToAtomic(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, ErrNegative
	}
	shifted := d.Shift(AtomicDecimals)
	if !shifted.IsInteger() {
		return 0, ErrPrecision
	}
	bi := shifted.BigInt()
	if !bi.IsUint64() {
		return 0, ErrOverflow
	}
	return bi.Uint64(), nil
}

// FromAtomic converts atomic units to a display amount.
func FromAtomic(atomic uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(atomic), -AtomicDecimals)
}

// Parse reads a display amount and checks that it is representable in atomic
// units.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if _, err := ToAtomic(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// Format renders a display amount without trailing zeros.
func Format(d decimal.Decimal) string {
	return d.String()
}
