package boundary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional_SomeAndNone(t *testing.T) {
	some := Some(7)
	require.True(t, some.IsPresent())
	v, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, 7, some.MustGet())

	none := None[int]()
	require.False(t, none.IsPresent())
	_, ok = none.Get()
	require.False(t, ok)
	require.Nil(t, none.Ptr())
}

func TestOptional_MustGetAbsentPanics(t *testing.T) {
	require.Panics(t, func() {
		None[int]().MustGet()
	})
}

func TestFromPtr(t *testing.T) {
	require.False(t, FromPtr[int](nil).IsPresent())

	src := 42
	opt := FromPtr(&src)
	require.True(t, opt.IsPresent())

	// The optional holds a copy, not the caller's memory.
	src = 0
	require.Equal(t, 42, opt.MustGet())

	p := opt.Ptr()
	require.NotNil(t, p)
	*p = 99
	require.Equal(t, 42, opt.MustGet())
}
