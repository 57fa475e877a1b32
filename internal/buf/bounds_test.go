package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AddOverflowSafe_Basic(t *testing.T) {
	got, ok := AddOverflowSafe(3, 4)
	require.True(t, ok)
	require.Equal(t, 7, got)

	got, ok = AddOverflowSafe(-3, -4)
	require.True(t, ok)
	require.Equal(t, -7, got)
}

func Test_AddOverflowSafe_Overflow(t *testing.T) {
	_, ok := AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok)

	got, ok := AddOverflowSafe(math.MaxInt, 0)
	require.True(t, ok)
	require.Equal(t, math.MaxInt, got)
}

func Test_MulOverflowSafe_Basic(t *testing.T) {
	got, ok := MulOverflowSafe(6, 7)
	require.True(t, ok)
	require.Equal(t, 42, got)

	got, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	require.Zero(t, got)
}

func Test_MulOverflowSafe_Overflow(t *testing.T) {
	_, ok := MulOverflowSafe(math.MaxInt, 2)
	require.False(t, ok)

	_, ok = MulOverflowSafe(math.MaxInt/2+1, 2)
	require.False(t, ok)
}

func Test_Slice_InBounds(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}

	s, ok := Slice(b, 1, 3)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3, 4}, s)

	s, ok = Slice(b, 0, 5)
	require.True(t, ok)
	require.Len(t, s, 5)

	s, ok = Slice(b, 5, 0)
	require.True(t, ok)
	require.Empty(t, s)
}

func Test_Slice_OutOfBounds(t *testing.T) {
	b := []byte{1, 2, 3}

	_, ok := Slice(b, -1, 2)
	require.False(t, ok)

	_, ok = Slice(b, 2, 2)
	require.False(t, ok)

	_, ok = Slice(b, 0, -1)
	require.False(t, ok)

	_, ok = Slice(b, math.MaxInt, 1)
	require.False(t, ok)
}

func Test_Has(t *testing.T) {
	b := make([]byte, 8)
	require.True(t, Has(b, 0, 8))
	require.True(t, Has(b, 4, 4))
	require.False(t, Has(b, 4, 5))
	require.False(t, Has(b, -1, 1))
}
