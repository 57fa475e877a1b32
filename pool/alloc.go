package pool

import (
	"fmt"
	"os"

	"github.com/dontscrewme/memory-pool/internal/buf"
)

// Runtime debug flag for allocation tracing - controlled by MEMPOOL_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMPOOL_LOG_ALLOC") != ""

// Alloc reserves a contiguous run of ceil(size/blockSize) blocks using a
// first-fit, left-to-right scan.
//
// On success it returns the byte offset of the run from the start of the
// region and a subslice of the region spanning the full granted run
// (blocksNeeded*blockSize bytes, which may exceed size). The pool does
// not touch the run's contents.
//
// Alloc fails with ErrBadSize for non-positive sizes, and with
// ErrNoSpace when the request exceeds free capacity or when no
// contiguous run fits despite sufficient aggregate free space
// (fragmentation). A failed Alloc never partially reserves blocks.
func (p *Pool) Alloc(size int) (int, []byte, error) {
	if p == nil || p.closed {
		return 0, nil, ErrClosed
	}
	p.stats.AllocCalls++

	if size <= 0 {
		p.stats.AllocFailed++
		return 0, nil, ErrBadSize
	}

	// Fast capacity rejection. Necessary but not sufficient: free space
	// may be fragmented.
	if size > p.blockSize*p.freeBlocks {
		p.stats.AllocFailed++
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[POOL] Alloc(%d): exceeds free capacity %d\n",
				size, p.blockSize*p.freeBlocks)
		}
		return 0, nil, ErrNoSpace
	}

	need := (size + p.blockSize - 1) / p.blockSize

	// First-fit scan. Live runs are skipped via their head length; the
	// offsets found are identical to advancing one block at a time,
	// because no fitting run can start inside or immediately after a
	// failed prefix of free blocks.
	for i := 0; i+need <= p.numBlocks; {
		switch n := p.table[i]; {
		case n > 0:
			i += int(n)
			continue
		case n == entryCont:
			i++
			continue
		}

		// Block i is free; verify the rest of the candidate run.
		j := i + 1
		for j < i+need && p.table[j] == entryFree {
			j++
		}
		if j < i+need {
			// Blocked at j. No run of `need` free blocks can start at
			// any index in (i, j], so resume past the blocker.
			if h := p.table[j]; h > 0 {
				i = j + int(h)
			} else {
				i = j + 1
			}
			continue
		}

		// Found: mark head and continuations.
		p.table[i] = int32(need)
		for k := i + 1; k < i+need; k++ {
			p.table[k] = entryCont
		}
		p.freeBlocks -= need
		p.stats.BlocksAllocated += int64(need)

		off := i * p.blockSize
		run, _ := buf.Slice(p.mem, off, need*p.blockSize)
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[POOL] Alloc(%d): %d block(s) at offset %d, %d free\n",
				size, need, off, p.freeBlocks)
		}
		return off, run, nil
	}

	p.stats.AllocFailed++
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] Alloc(%d): fragmented, need %d blocks, %d free\n",
			size, need, p.freeBlocks)
	}
	return 0, nil, ErrNoSpace
}

// Release returns the run headed at the given byte offset to the pool
// and reports why a target was rejected:
//
//   - ErrBadOffset: off is negative, not a multiple of blockSize, or
//     outside the region
//   - ErrNotHead: the block is already free, or is a continuation block
//     (freeing the middle of a run is not a valid target)
//   - ErrCorrupt: the recorded run length extends past the table
//   - ErrClosed: the pool is closed or nil
//
// A rejected Release mutates nothing.
func (p *Pool) Release(off int) error {
	if p == nil || p.closed {
		return ErrClosed
	}
	p.stats.FreeCalls++

	if off < 0 || off%p.blockSize != 0 {
		p.stats.FreeRejected++
		return ErrBadOffset
	}
	idx := off / p.blockSize
	if idx >= p.numBlocks {
		p.stats.FreeRejected++
		return ErrBadOffset
	}

	n := p.table[idx]
	if n <= 0 {
		p.stats.FreeRejected++
		return ErrNotHead
	}
	if idx+int(n) > p.numBlocks {
		// Defensive: a head this long can only come from table corruption.
		p.stats.FreeRejected++
		return ErrCorrupt
	}

	for i := idx; i < idx+int(n); i++ {
		p.table[i] = entryFree
	}
	p.freeBlocks += int(n)
	p.stats.BlocksFreed += int64(n)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] Release(%d): %d block(s), %d free\n",
			off, n, p.freeBlocks)
	}
	return nil
}

// Free returns the run headed at off to the pool, silently ignoring
// invalid targets (wrong alignment, out of range, already free, or a
// continuation block). Callers that need to detect rejection should use
// Release instead.
func (p *Pool) Free(off int) {
	_ = p.Release(off)
}
