package boundary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_Exclusivity(t *testing.T) {
	ok := Ok(5)
	require.True(t, ok.IsOk())
	v, held := ok.Value()
	require.True(t, held)
	require.Equal(t, 5, v)
	_, held = ok.ErrMessage()
	require.False(t, held)

	errRes := Err[int](errors.New("boom"))
	require.False(t, errRes.IsOk())
	msg, held := errRes.ErrMessage()
	require.True(t, held)
	require.Equal(t, "boom", msg)
	_, held = errRes.Value()
	require.False(t, held)
}

func TestResult_Lift(t *testing.T) {
	ok := Lift(3, nil)
	require.True(t, ok.IsOk())

	failed := Lift(0, errors.New("no average"))
	require.False(t, failed.IsOk())
	msg, _ := failed.ErrMessage()
	require.Equal(t, "no average", msg)
}

func TestErr_InteriorNULAborts(t *testing.T) {
	require.Panics(t, func() {
		Err[int](errors.New("bad\x00message"))
	})
}

func TestResult_Release(t *testing.T) {
	res := Ok(1)
	res.Release()
	res.Release() // releasing twice is a no-op

	require.Panics(t, func() { res.IsOk() })
	require.Panics(t, func() { res.Value() })
}

func TestResult_ZeroValuePanics(t *testing.T) {
	// A result that was never constructed holds neither handle, which
	// violates the envelope invariant as soon as it is inspected.
	var res Result[int]
	require.Panics(t, func() { res.IsOk() })
}
