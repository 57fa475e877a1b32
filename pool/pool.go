package pool

import (
	"github.com/dontscrewme/memory-pool/internal/buf"
)

// Table entry markers. A positive entry is the head of a run and carries
// the run length in blocks.
const (
	entryFree int32 = 0
	entryCont int32 = -1
)

// Pool is a fixed-block allocator over a borrowed byte region.
// The zero value is not usable; construct with New.
type Pool struct {
	mem       []byte // borrowed region, never written or released
	blockSize int
	numBlocks int

	// freeBlocks always equals the number of entryFree entries in table.
	freeBlocks int

	// table holds one entry per block; owned by the pool, released by Close.
	table []int32

	stats  Stats
	closed bool
}

// New creates a pool over mem with numBlocks blocks of blockSize bytes.
//
// mem is borrowed: the caller keeps ownership of the region and is
// responsible for its lifetime. The region must hold at least
// blockSize*numBlocks bytes; New rejects regions that don't, including
// products that overflow int.
func New(mem []byte, blockSize, numBlocks int) (*Pool, error) {
	if len(mem) == 0 {
		return nil, ErrNoRegion
	}
	if blockSize <= 0 {
		return nil, ErrBadBlockSize
	}
	if numBlocks <= 0 {
		return nil, ErrBadBlockCount
	}

	need, ok := buf.MulOverflowSafe(blockSize, numBlocks)
	if !ok || need > len(mem) {
		return nil, ErrRegionTooSmall
	}

	return &Pool{
		mem:        mem,
		blockSize:  blockSize,
		numBlocks:  numBlocks,
		freeBlocks: numBlocks,
		table:      make([]int32, numBlocks),
	}, nil
}

// BlockSize returns the fixed block size in bytes.
func (p *Pool) BlockSize() int {
	if p == nil {
		return 0
	}
	return p.blockSize
}

// NumBlocks returns the total number of blocks in the pool.
func (p *Pool) NumBlocks() int {
	if p == nil {
		return 0
	}
	return p.numBlocks
}

// FreeBlocks returns the number of currently free blocks.
func (p *Pool) FreeBlocks() int {
	if p == nil {
		return 0
	}
	return p.freeBlocks
}

// FreeBytes returns the aggregate free capacity in bytes. This is an
// upper bound on what Alloc can serve; fragmentation may make a smaller
// request fail.
func (p *Pool) FreeBytes() int {
	if p == nil {
		return 0
	}
	return p.freeBlocks * p.blockSize
}

// Cap returns the total capacity of the pool in bytes.
func (p *Pool) Cap() int {
	if p == nil {
		return 0
	}
	return p.numBlocks * p.blockSize
}

// Bytes returns the borrowed backing region. The pool never writes to
// it; the slice is the caller's own memory.
func (p *Pool) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.mem
}

// Close releases the allocation table and marks the pool unusable.
// The backing region is NOT released - it remains the caller's
// responsibility. Close is idempotent and a no-op on a nil pool.
func (p *Pool) Close() error {
	if p == nil || p.closed {
		return nil
	}
	p.closed = true
	p.table = nil
	p.mem = nil
	p.freeBlocks = 0
	return nil
}
