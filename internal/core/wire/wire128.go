package wire

import (
	"fmt"
	"math/big"
)

// Wire128 is the two-limb carrier for an unsigned 128-bit magnitude.
// Word order is little-endian: the represented value is Lo | Hi<<64.
// The layout is flat and fixed so both sides of a boundary can agree
// on it without any serialization framework.
type Wire128 struct {
	Lo uint64
	Hi uint64
}

var (
	// MaxUint128 is 2^128 - 1, the largest magnitude a Wire128 can carry.
	MaxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	maxUint64 = new(big.Int).SetUint64(^uint64(0))
)

// NewWire128 splits a non-negative magnitude into its two limbs.
// It rejects negative values and anything wider than 128 bits; this is
// the only place out-of-domain values can enter, so decoding stays total.
func NewWire128(magnitude *big.Int) (Wire128, error) {
	if magnitude.Sign() < 0 {
		return Wire128{}, fmt.Errorf("negative magnitude %s is not representable", magnitude)
	}
	if magnitude.Cmp(MaxUint128) > 0 {
		return Wire128{}, fmt.Errorf("%s is too large to fit in 128 bits", magnitude)
	}
	var lo, hi big.Int
	lo.And(magnitude, maxUint64)
	hi.Rsh(magnitude, 64)
	return Wire128{
		Lo: lo.Uint64(),
		Hi: hi.Uint64(),
	}, nil
}

// Uint128 reconstructs the magnitude as Lo | Hi<<64.
// Total over all limb pairs; NewWire128(w.Uint128()) round-trips exactly.
func (w Wire128) Uint128() *big.Int {
	v := new(big.Int).SetUint64(w.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(w.Lo))
}

// IsZero reports whether both limbs are zero.
func (w Wire128) IsZero() bool {
	return w.Lo == 0 && w.Hi == 0
}
