package twap

import "fmt"

// IsDivisionOutdated reports whether the division lies entirely before the
// trailing window [blockTime - windowSize, blockTime]: outdated means even
// its full width, StartedAt + divisionSize, ends at or before the window
// start. Outdated divisions are candidates for eviction.
func IsDivisionOutdated(d Division, blockTime, windowSize, divisionSize uint64) (bool, error) {
	if blockTime < windowSize {
		return false, fmt.Errorf("block time %d is earlier than the window size %d", blockTime, windowSize)
	}
	windowStart := blockTime - windowSize
	return d.StartedAt+divisionSize <= windowStart, nil
}

// CleanUpOutdatedDivisions drops the outdated prefix of a chronologically
// ordered division list. It returns the remaining divisions (a fresh slice)
// together with the latest removed division, which the caller threads into
// the next CompressedMovingAverage call to keep the compressed history.
func CleanUpOutdatedDivisions(divisions []Division, blockTime, windowSize, divisionSize uint64) ([]Division, *Division, error) {
	var latestRemoved *Division
	removedUpTo := 0
	for _, d := range divisions {
		outdated, err := IsDivisionOutdated(d, blockTime, windowSize, divisionSize)
		if err != nil {
			return nil, nil, err
		}
		if !outdated {
			break
		}
		removed := d
		latestRemoved = &removed
		removedUpTo++
	}

	remaining := make([]Division, len(divisions)-removedUpTo)
	copy(remaining, divisions[removedUpTo:])
	return remaining, latestRemoved, nil
}
