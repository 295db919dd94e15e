package twap

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIsDivisionOutdated(t *testing.T) {
	div := Division{
		StartedAt:   1000000000,
		UpdatedAt:   1000000022,
		LatestValue: decimal.RequireFromString("0.10"),
		Integral:    decimal.RequireFromString("0.22"),
	}

	windowSize := uint64(1000)
	divisionSize := uint64(100)

	tests := []struct {
		name      string
		blockTime uint64
		want      bool
		wantErr   bool
	}{
		{name: "within window - start", blockTime: 1000000000, want: false},
		{name: "within window - near end", blockTime: 1000000999, want: false},
		{name: "within window - at end", blockTime: 1000001000, want: false},
		{name: "within window - last valid", blockTime: 1000001099, want: false},
		{name: "out of window - first invalid", blockTime: 1000001100, want: true},
		{name: "out of window - just after", blockTime: 1000001101, want: true},
		{name: "out of window - far after", blockTime: 1000001200, want: true},
		{name: "block time before window size", blockTime: 1, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsDivisionOutdated(div, tc.blockTime, windowSize, divisionSize)
			if tc.wantErr {
				require.ErrorContains(t, err, "earlier than the window size")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCleanUpOutdatedDivisions(t *testing.T) {
	divisions := makeDivisions(t, []bucketInput{
		{1000, 1050, "0.10", "0.10"},
		{1100, 1150, "0.20", "0.10"},
		{1200, 1250, "0.30", "0.20"},
	})

	// Window [710, 1310]: nothing is outdated.
	remaining, removed, err := CleanUpOutdatedDivisions(divisions, 1310, 600, 100)
	require.NoError(t, err)
	require.Nil(t, removed)
	require.Equal(t, divisions, remaining)

	// Window [1210, 1810]: the first two divisions end at or before the
	// window start; the second becomes the carried-forward removed one.
	remaining, removed, err = CleanUpOutdatedDivisions(divisions, 1810, 600, 100)
	require.NoError(t, err)
	require.NotNil(t, removed)
	require.Equal(t, divisions[1], *removed)
	require.Equal(t, divisions[2:], remaining)

	// Far future: everything is outdated.
	remaining, removed, err = CleanUpOutdatedDivisions(divisions, 5000, 600, 100)
	require.NoError(t, err)
	require.NotNil(t, removed)
	require.Equal(t, divisions[2], *removed)
	require.Empty(t, remaining)

	// The cleanup must not hand back a view into the input.
	remaining, _, err = CleanUpOutdatedDivisions(divisions, 1310, 600, 100)
	require.NoError(t, err)
	divisions[0].StartedAt = 9999
	require.Equal(t, uint64(1000), remaining[0].StartedAt)
}

func TestCleanUpOutdatedDivisions_Underflow(t *testing.T) {
	divisions := makeDivisions(t, []bucketInput{
		{1000, 1050, "0.10", "0.10"},
	})
	_, _, err := CleanUpOutdatedDivisions(divisions, 10, 600, 100)
	require.ErrorContains(t, err, "earlier than the window size")
}
