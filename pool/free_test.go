package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Free_RoundTripRestoresPool(t *testing.T) {
	p, err := New(make([]byte, 512), 16, 32)
	require.NoError(t, err)
	defer p.Close()

	off, _, err := p.Alloc(100)
	require.NoError(t, err)
	require.Equal(t, 32-7, p.FreeBlocks())

	p.Free(off)
	require.Equal(t, 32, p.FreeBlocks())
	for i, e := range p.Table() {
		require.Zero(t, e, "block %d should be free", i)
	}
}

func Test_Free_DoubleFreeIsNoOp(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	off, _, err := p.Alloc(24)
	require.NoError(t, err)

	p.Free(off)
	require.Equal(t, 8, p.FreeBlocks())

	// Second free of the same address must leave freeBlocks unchanged.
	p.Free(off)
	require.Equal(t, 8, p.FreeBlocks())

	require.ErrorIs(t, p.Release(off), ErrNotHead)
}

func Test_Free_MisalignedOffsetIsNoOp(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	_, _, err = p.Alloc(64)
	require.NoError(t, err)

	p.Free(3) // not a multiple of blockSize
	require.Zero(t, p.FreeBlocks())
	require.ErrorIs(t, p.Release(3), ErrBadOffset)
}

func Test_Free_OutOfRangeIsNoOp(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	_, _, err = p.Alloc(16)
	require.NoError(t, err)

	p.Free(64) // first byte past the pool
	p.Free(-8)
	require.Equal(t, 6, p.FreeBlocks())

	require.ErrorIs(t, p.Release(64), ErrBadOffset)
	require.ErrorIs(t, p.Release(-8), ErrBadOffset)
}

func Test_Free_ContinuationPointerIsNoOp(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	off, _, err := p.Alloc(32) // 4 blocks, head at block 0
	require.NoError(t, err)
	require.Zero(t, off)

	// Block 1 is a continuation; freeing it must not release anything.
	p.Free(8)
	require.Equal(t, 4, p.FreeBlocks())
	require.ErrorIs(t, p.Release(8), ErrNotHead)

	// The run is still intact and freeable through its head.
	p.Free(off)
	require.Equal(t, 8, p.FreeBlocks())
}

func Test_Free_CorruptRunLengthIsNoOp(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	off, _, err := p.Alloc(16) // 2 blocks
	require.NoError(t, err)

	// Corrupt the head so the recorded run extends past the table.
	p.table[0] = 100
	before := p.FreeBlocks()

	p.Free(off)
	require.Equal(t, before, p.FreeBlocks(), "corrupt run must be rejected")
	require.ErrorIs(t, p.Release(off), ErrCorrupt)
}

func Test_Free_AddressNeverAllocated(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	// Aligned, in range, but free: rejected as a non-head target.
	p.Free(16)
	require.Equal(t, 8, p.FreeBlocks())
	require.ErrorIs(t, p.Release(16), ErrNotHead)
}

func Test_Release_Success(t *testing.T) {
	p, err := New(make([]byte, 64), 8, 8)
	require.NoError(t, err)
	defer p.Close()

	off, _, err := p.Alloc(40)
	require.NoError(t, err)
	require.NoError(t, p.Release(off))
	require.Equal(t, 8, p.FreeBlocks())
}
