package wire

import (
	"encoding/binary"
	"fmt"
)

// DivisionEncodedLen is the fixed byte length of an encoded Division:
// two uint64 timestamps plus two two-limb fixed-point values.
const DivisionEncodedLen = 8 + 8 + 16 + 16

// Division is the wire record for one time bucket: the span over which a
// quantity was observed, its latest observed value and the accumulated
// time-weighted integral. Divisions are caller-owned value records; a
// boundary call copies what it needs and never retains a reference.
type Division struct {
	// StartedAt is the nanosecond timestamp at which the bucket opened.
	StartedAt uint64

	// UpdatedAt is the timestamp of the last observation folded in;
	// always >= StartedAt.
	UpdatedAt uint64

	// LatestValue is the most recently observed quantity in the bucket.
	LatestValue FixedPoint

	// Integral is the running sum of value * elapsed for every observation
	// folded into the bucket since it opened. Non-decreasing, since
	// observed values are non-negative.
	Integral FixedPoint
}

// AppendBinary appends the fixed 48-byte little-endian layout of d to b.
func (d Division) AppendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint64(b, d.StartedAt)
	b = binary.LittleEndian.AppendUint64(b, d.UpdatedAt)
	b = binary.LittleEndian.AppendUint64(b, d.LatestValue.Raw.Lo)
	b = binary.LittleEndian.AppendUint64(b, d.LatestValue.Raw.Hi)
	b = binary.LittleEndian.AppendUint64(b, d.Integral.Raw.Lo)
	b = binary.LittleEndian.AppendUint64(b, d.Integral.Raw.Hi)
	return b
}

// MarshalBinary encodes d into its fixed flat layout.
func (d Division) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, DivisionEncodedLen)), nil
}

// UnmarshalBinary decodes the fixed flat layout produced by MarshalBinary.
func (d *Division) UnmarshalBinary(b []byte) error {
	if len(b) != DivisionEncodedLen {
		return fmt.Errorf("encoded division must be %d bytes, got %d", DivisionEncodedLen, len(b))
	}
	d.StartedAt = binary.LittleEndian.Uint64(b[0:8])
	d.UpdatedAt = binary.LittleEndian.Uint64(b[8:16])
	d.LatestValue.Raw.Lo = binary.LittleEndian.Uint64(b[16:24])
	d.LatestValue.Raw.Hi = binary.LittleEndian.Uint64(b[24:32])
	d.Integral.Raw.Lo = binary.LittleEndian.Uint64(b[32:40])
	d.Integral.Raw.Hi = binary.LittleEndian.Uint64(b[40:48])
	return nil
}
