package boundary

import "strings"

// Result is the tagged success/failure envelope replacing exceptions at the
// boundary. Exactly one of the success handle and the error handle is held,
// never both and never neither; ownership of whichever is held transfers to
// the caller, who releases it exactly once via Release.
type Result[T any] struct {
	ok       *T
	err      *string
	released bool
}

// Ok allocates value and returns a success envelope.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: &value}
}

// Err renders e into a failure envelope. An error message with an interior
// NUL byte cannot be carried as boundary text; that is a broken caller, not
// a runtime condition, so it aborts instead of returning a nested error.
func Err[T any](e error) Result[T] {
	msg := e.Error()
	if strings.IndexByte(msg, 0) >= 0 {
		panic("boundary: error message contains an interior NUL byte")
	}
	return Result[T]{err: &msg}
}

// Lift maps an ordinary (value, error) pair onto the envelope: a nil error
// becomes Ok(value), anything else becomes Err(err).
func Lift[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the success handle is held.
func (r *Result[T]) IsOk() bool {
	r.mustBeHeld()
	return r.ok != nil
}

// Value returns the success payload and whether it is held.
func (r *Result[T]) Value() (T, bool) {
	r.mustBeHeld()
	if r.ok == nil {
		var zero T
		return zero, false
	}
	return *r.ok, true
}

// ErrMessage returns the failure text and whether it is held.
func (r *Result[T]) ErrMessage() (string, bool) {
	r.mustBeHeld()
	if r.err == nil {
		return "", false
	}
	return *r.err, true
}

// Release drops whichever handle is held, leaving the envelope empty.
// Every Result must be released exactly once by its owner; releasing twice
// is a no-op, but inspecting a released envelope panics.
func (r *Result[T]) Release() {
	r.ok = nil
	r.err = nil
	r.released = true
}

func (r *Result[T]) mustBeHeld() {
	if r.released {
		panic("boundary: use of released result")
	}
	if r.ok != nil && r.err != nil {
		panic("boundary: result holds both success and error")
	}
	if r.ok == nil && r.err == nil {
		panic("boundary: result holds neither success nor error")
	}
}
