//go:build unix

package memregion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Anonymous_MapAndUnmap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}

	data, cleanup, err := Anonymous(4096)
	require.NoError(t, err)
	require.Len(t, data, 4096)

	// Anonymous mappings are zero-filled and writable.
	require.Zero(t, data[0])
	require.Zero(t, data[4095])
	data[0] = 0xde
	data[4095] = 0xef
	require.Equal(t, byte(0xde), data[0])
	require.Equal(t, byte(0xef), data[4095])

	require.NoError(t, cleanup())
	// Double-unmap is a no-op.
	require.NoError(t, cleanup())
}

func Test_Anonymous_BadSize(t *testing.T) {
	_, _, err := Anonymous(0)
	require.Error(t, err)

	_, _, err = Anonymous(-1)
	require.Error(t, err)
}
