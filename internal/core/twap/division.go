// Package twap computes compressed, windowed time-weighted averages over
// fixed-size time buckets called divisions. Arithmetic is exact decimal
// arithmetic; nothing here rounds except the final quotient, which
// truncates at 18 fractional digits.
package twap

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Division is one bucket of a time series in its computational form:
// nanosecond timestamps plus exact decimal quantities.
type Division struct {
	// StartedAt is when the bucket opened.
	StartedAt uint64

	// UpdatedAt is when the last observation was folded in.
	UpdatedAt uint64

	// LatestValue is the most recently observed quantity.
	LatestValue decimal.Decimal

	// Integral accumulates value * elapsed across the bucket's life.
	Integral decimal.Decimal
}

// NewDivision opens a bucket at startedAt whose first observation arrives at
// updatedAt. prevValue is the quantity that was in effect before that
// observation, so the opening integral is prevValue * (updatedAt - startedAt).
func NewDivision(startedAt, updatedAt uint64, latestValue, prevValue decimal.Decimal) (Division, error) {
	if updatedAt < startedAt {
		return Division{}, fmt.Errorf("division updated at %d before it started at %d", updatedAt, startedAt)
	}
	elapsed := decimal.NewFromUint64(updatedAt - startedAt)
	return Division{
		StartedAt:   startedAt,
		UpdatedAt:   updatedAt,
		LatestValue: latestValue,
		Integral:    prevValue.Mul(elapsed),
	}, nil
}

// Update folds a new observation into the bucket: the previous latest value
// is integrated over the elapsed time, then replaced.
func (d Division) Update(updatedAt uint64, value decimal.Decimal) (Division, error) {
	if updatedAt < d.UpdatedAt {
		return Division{}, fmt.Errorf("observation at %d is older than division update at %d", updatedAt, d.UpdatedAt)
	}
	elapsed := decimal.NewFromUint64(updatedAt - d.UpdatedAt)
	return Division{
		StartedAt:   d.StartedAt,
		UpdatedAt:   updatedAt,
		LatestValue: value,
		Integral:    d.Integral.Add(d.LatestValue.Mul(elapsed)),
	}, nil
}

// span is the observed part of the bucket, [StartedAt, UpdatedAt].
func (d Division) span() uint64 {
	return d.UpdatedAt - d.StartedAt
}
