package wire

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// FixedPointScale is the number of fractional decimal digits in a FixedPoint
// value. The scale is agreed out-of-band: it is never transmitted, and both
// sides of a boundary must compile against the same constant.
const FixedPointScale = 18

// FixedPoint is a non-negative fixed-point decimal: an unsigned 128-bit
// magnitude read as magnitude / 10^18. It wraps its own wire form, so a
// FixedPoint is already boundary-safe; no further encoding step exists.
type FixedPoint struct {
	Raw Wire128
}

// NewFixedPoint builds a FixedPoint from a raw scaled magnitude.
func NewFixedPoint(magnitude *big.Int) (FixedPoint, error) {
	raw, err := NewWire128(magnitude)
	if err != nil {
		return FixedPoint{}, err
	}
	return FixedPoint{Raw: raw}, nil
}

// FixedPointFromDecimal converts an arbitrary-precision decimal into wire
// form. The decimal must be non-negative, carry no fraction below 10^-18 and
// fit in 128 bits once scaled; anything else is a computational error, not a
// silent rounding.
func FixedPointFromDecimal(d decimal.Decimal) (FixedPoint, error) {
	scaled := d.Shift(FixedPointScale)
	if !scaled.IsInteger() {
		return FixedPoint{}, fmt.Errorf("%s has more than %d fractional digits", d, FixedPointScale)
	}
	fp, err := NewFixedPoint(scaled.BigInt())
	if err != nil {
		return FixedPoint{}, fmt.Errorf("%s is out of fixed-point range: %w", d, err)
	}
	return fp, nil
}

// MustFixedPointFromDecimal is FixedPointFromDecimal for values known to be
// in range, such as literals in tests and fixtures.
func MustFixedPointFromDecimal(d decimal.Decimal) FixedPoint {
	fp, err := FixedPointFromDecimal(d)
	if err != nil {
		panic(err)
	}
	return fp
}

// Decimal reconstructs the exact decimal value.
func (f FixedPoint) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(f.Raw.Uint128(), -FixedPointScale)
}

// String renders the decimal value, mainly for logs and diagnostics.
func (f FixedPoint) String() string {
	return f.Decimal().String()
}
