package twap

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Named computational failures. These come back through the boundary's
// error channel; they never panic.
var (
	// ErrMissingDataPoints is returned when there is nothing to average:
	// no current divisions and no carried-forward removed division.
	ErrMissingDataPoints = errors.New("missing data points to calculate moving average")

	// ErrZeroCoverage is returned when the window and the supplied
	// divisions overlap for a zero duration, making the average undefined.
	ErrZeroCoverage = errors.New("moving average window has zero covered duration")
)

// CompressedMovingAverage computes the time-weighted average of the observed
// quantity over the trailing window [blockTime - windowSize, blockTime].
//
// divisions must be chronologically ordered, non-overlapping buckets no wider
// than divisionSize. latestRemoved, when non-nil, is the most recently
// evicted division: history older than it has been compressed away, and its
// latest value is taken to persist across the gap up to the first current
// division. That compression is what keeps the computation proportional to
// the number of in-window buckets rather than to all history.
//
// All timestamps and sizes share one nanosecond unit. The quotient is
// truncated toward zero at 18 fractional digits.
func CompressedMovingAverage(
	latestRemoved *Division,
	divisions []Division,
	divisionSize uint64,
	windowSize uint64,
	blockTime uint64,
) (decimal.Decimal, error) {
	if len(divisions) == 0 && latestRemoved == nil {
		return decimal.Decimal{}, ErrMissingDataPoints
	}
	if blockTime < windowSize {
		return decimal.Decimal{}, fmt.Errorf("block time %d is earlier than the window size %d", blockTime, windowSize)
	}
	windowStart := blockTime - windowSize

	sources := make([]Division, 0, len(divisions)+1)
	if latestRemoved != nil {
		sources = append(sources, *latestRemoved)
	}
	sources = append(sources, divisions...)

	if err := validateSources(sources, divisionSize, blockTime); err != nil {
		return decimal.Decimal{}, err
	}

	numerator := decimal.Zero
	for i, d := range sources {
		nextStart := blockTime
		if i+1 < len(sources) {
			nextStart = sources[i+1].StartedAt
		}
		numerator = numerator.Add(d.windowContribution(windowStart, nextStart))
	}

	coverageStart := max(windowStart, sources[0].StartedAt)
	if blockTime == coverageStart {
		return decimal.Decimal{}, ErrZeroCoverage
	}
	denominator := decimal.NewFromUint64(blockTime - coverageStart)

	quotient, _ := numerator.QuoRem(denominator, decimalPlaces)
	return quotient, nil
}

// decimalPlaces is the truncation precision of the final quotient, matching
// the fixed-point scale the result is encoded at.
const decimalPlaces = 18

// windowContribution is the division's share of the window numerator: its
// integral over [StartedAt, UpdatedAt] prorated to the part inside the
// window, plus its latest value persisting from UpdatedAt until the next
// division starts, again clipped to the window.
func (d Division) windowContribution(windowStart, nextStart uint64) decimal.Decimal {
	c := decimal.Zero

	if d.UpdatedAt > windowStart {
		if d.StartedAt >= windowStart {
			c = d.Integral
		} else {
			// The window start cuts through the observed span; keep the
			// proportional share. Exact for constant-value buckets.
			inside := decimal.NewFromUint64(d.UpdatedAt - windowStart)
			span := decimal.NewFromUint64(d.span())
			c, _ = d.Integral.Mul(inside).QuoRem(span, decimalPlaces)
		}
	}

	persistFrom := max(d.UpdatedAt, windowStart)
	if nextStart > persistFrom {
		c = c.Add(d.LatestValue.Mul(decimal.NewFromUint64(nextStart - persistFrom)))
	}
	return c
}

// validateSources checks the chronology invariants the averaging relies on.
// Violations mean the caller handed over an inconsistent bucket set, which
// is a computational error, not a panic.
func validateSources(sources []Division, divisionSize, blockTime uint64) error {
	if divisionSize == 0 {
		return errors.New("division size must be positive")
	}
	for i, d := range sources {
		if d.UpdatedAt < d.StartedAt {
			return fmt.Errorf("division %d updated at %d before it started at %d", i, d.UpdatedAt, d.StartedAt)
		}
		if d.span() > divisionSize {
			return fmt.Errorf("division %d spans %d, wider than the division size %d", i, d.span(), divisionSize)
		}
		if d.UpdatedAt > blockTime {
			return fmt.Errorf("division %d updated at %d, after the block time %d", i, d.UpdatedAt, blockTime)
		}
		if i > 0 && d.StartedAt < sources[i-1].StartedAt+divisionSize {
			return fmt.Errorf("division %d starts at %d, overlapping the previous division at %d",
				i, d.StartedAt, sources[i-1].StartedAt)
		}
	}
	return nil
}
