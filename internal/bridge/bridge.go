// Package bridge is the call surface of the module: flat wire-level inputs
// go in through boundary envelopes, one fixed-point result comes back out.
// Every call is synchronous and stateless; all inputs are copied before any
// computation, and nothing is retained once a call returns.
package bridge

import (
	"log/slog"

	"github.com/meridian-lab/twapbridge/internal/core/boundary"
	"github.com/meridian-lab/twapbridge/internal/core/twap"
	"github.com/meridian-lab/twapbridge/internal/core/wire"
)

// Service exposes the boundary entry points. Diagnostics go through the
// injected structured logger rather than to any global output.
type Service struct {
	log *slog.Logger
}

// New creates the bridge service. A nil logger falls back to the default.
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

// PrintDivision decodes and logs a division. It always succeeds with 0;
// the Result envelope is kept so every entry point reports uniformly.
func (s *Service) PrintDivision(div wire.Division) boundary.Result[uint8] {
	decoded := decodeDivision(div)
	s.log.Info("division",
		"started_at", decoded.StartedAt,
		"updated_at", decoded.UpdatedAt,
		"latest_value", decoded.LatestValue.String(),
		"integral", decoded.Integral.String(),
	)
	return boundary.Ok[uint8](0)
}

// CompressedMovingAverage computes the windowed time-weighted average over
// the given divisions plus the optionally carried-forward removed division.
// divisionSize, windowSize and blockTime share the timestamps' nanosecond
// unit. Computational failures, including a result too large for the
// fixed-point range, come back through the error channel.
func (s *Service) CompressedMovingAverage(
	latestRemoved boundary.Optional[wire.Division],
	divisions boundary.Sequence[wire.Division],
	divisionSize uint64,
	windowSize uint64,
	blockTime uint64,
) boundary.Result[wire.FixedPoint] {
	// Private copies of everything borrowed, before any computation.
	var removed *twap.Division
	if raw, ok := latestRemoved.Get(); ok {
		d := decodeDivision(raw)
		removed = &d
	}

	raw := divisions.Materialize()
	decoded := make([]twap.Division, len(raw))
	for i, d := range raw {
		decoded[i] = decodeDivision(d)
	}

	average, err := twap.CompressedMovingAverage(removed, decoded, divisionSize, windowSize, blockTime)
	if err != nil {
		s.log.Debug("moving average failed",
			"divisions", len(decoded),
			"has_removed", removed != nil,
			"block_time", blockTime,
			"error", err,
		)
		return boundary.Err[wire.FixedPoint](err)
	}

	return boundary.Lift(wire.FixedPointFromDecimal(average))
}

// decodeDivision moves a division from its wire form into the engine's
// computational form. Lossless: the fixed-point values decode exactly.
func decodeDivision(d wire.Division) twap.Division {
	return twap.Division{
		StartedAt:   d.StartedAt,
		UpdatedAt:   d.UpdatedAt,
		LatestValue: d.LatestValue.Decimal(),
		Integral:    d.Integral.Decimal(),
	}
}
