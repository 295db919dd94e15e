package boundary

// Sequence is a read-only view over a contiguous run of T. The backing
// memory stays owned by the caller and is only borrowed for the duration of
// a call; a callee copies out what it needs via Materialize and never keeps
// the view itself.
type Sequence[T any] struct {
	base []T
}

// NewSequence builds a view over base. The caller guarantees base holds
// valid, initialized elements for as long as the call it is passed to runs.
func NewSequence[T any](base []T) Sequence[T] {
	return Sequence[T]{base: base}
}

// Len returns the number of elements in the view.
func (s Sequence[T]) Len() int {
	return len(s.base)
}

// Materialize copies every element into a freshly owned slice. Zero-length
// views yield an empty (non-nil) slice, not an error.
func (s Sequence[T]) Materialize() []T {
	out := make([]T, len(s.base))
	copy(out, s.base)
	return out
}
