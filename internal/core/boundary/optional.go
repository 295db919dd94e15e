// Package boundary holds the envelope conventions for a synchronous
// in-process call boundary: optional values, borrowed sequences and tagged
// success/failure results. Everything the callee needs is copied before the
// call returns; no memory is shared or retained past it.
package boundary

// Optional is a "maybe absent" value carried across a boundary as an
// explicit validity flag plus a value, rather than a nullable reference.
// An absent Optional can never be dereferenced.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None is the canonical absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr lifts a possibly-nil pointer into an Optional, copying the
// pointee so the result does not alias the caller's memory. The caller must
// pass either a valid pointer or nil; there is no way to detect a dangling
// non-nil pointer here.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value and whether it is present. The value is a
// copy; mutating it does not affect the Optional.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value. Calling it on an absent Optional is a
// contract violation and panics.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("boundary: MustGet on absent optional")
	}
	return o.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}
