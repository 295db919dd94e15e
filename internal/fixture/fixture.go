// Package fixture loads division sets from YAML files for the CLI harness.
// Values are written as decimal strings and converted to wire form exactly;
// a value that does not fit the fixed-point range fails the load.
package fixture

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/meridian-lab/twapbridge/internal/core/wire"
)

// DivisionSet is one averaging input: the current divisions plus the
// optional carried-forward removed division.
type DivisionSet struct {
	LatestRemoved *wire.Division
	Divisions     []wire.Division
}

type divisionDoc struct {
	StartedAt   uint64 `yaml:"started_at"`
	UpdatedAt   uint64 `yaml:"updated_at"`
	LatestValue string `yaml:"latest_value"`
	Integral    string `yaml:"integral"`
}

type document struct {
	LatestRemovedDivision *divisionDoc  `yaml:"latest_removed_division"`
	Divisions             []divisionDoc `yaml:"divisions"`
}

// Load reads and decodes the division set at path.
func Load(path string) (*DivisionSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read division set: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse division set: %w", err)
	}

	set := &DivisionSet{
		Divisions: make([]wire.Division, 0, len(doc.Divisions)),
	}

	if doc.LatestRemovedDivision != nil {
		d, err := doc.LatestRemovedDivision.toWire()
		if err != nil {
			return nil, fmt.Errorf("invalid latest_removed_division: %w", err)
		}
		set.LatestRemoved = &d
	}

	for i, dd := range doc.Divisions {
		d, err := dd.toWire()
		if err != nil {
			return nil, fmt.Errorf("invalid division %d: %w", i, err)
		}
		set.Divisions = append(set.Divisions, d)
	}

	return set, nil
}

func (dd divisionDoc) toWire() (wire.Division, error) {
	if dd.UpdatedAt < dd.StartedAt {
		return wire.Division{}, fmt.Errorf("updated_at %d is before started_at %d", dd.UpdatedAt, dd.StartedAt)
	}

	latest, err := parseFixedPoint(dd.LatestValue)
	if err != nil {
		return wire.Division{}, fmt.Errorf("latest_value: %w", err)
	}
	integral, err := parseFixedPoint(dd.Integral)
	if err != nil {
		return wire.Division{}, fmt.Errorf("integral: %w", err)
	}

	return wire.Division{
		StartedAt:   dd.StartedAt,
		UpdatedAt:   dd.UpdatedAt,
		LatestValue: latest,
		Integral:    integral,
	}, nil
}

func parseFixedPoint(s string) (wire.FixedPoint, error) {
	if s == "" {
		return wire.FixedPoint{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return wire.FixedPoint{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return wire.FixedPointFromDecimal(d)
}
