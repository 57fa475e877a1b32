// Package pool implements a fixed-block-size memory pool over a
// caller-supplied byte region.
//
// # Overview
//
// A Pool partitions an externally owned region into numBlocks blocks of
// blockSize bytes each and serves variable-size requests by reserving a
// contiguous run of blocks. Allocation state lives entirely in a side
// table owned by the pool; the region's contents are never read or
// written by the pool itself.
//
// The side table holds one signed entry per block:
//
//	 0  block is free
//	+N  block is the head of a live run spanning N blocks
//	-1  block is a continuation of the run headed by an earlier block
//
// # Allocation policy
//
// Alloc uses a first-fit, left-to-right scan and reserves exactly
// ceil(size/blockSize) blocks. There is no splitting below block
// granularity, no coalescing structure, and no best-fit heuristic -
// allocation order is deterministic for a given call sequence. A request
// can fail due to fragmentation even when aggregate free space would
// suffice; LargestRun reports the largest contiguous free run for
// diagnosing that case.
//
// # Ownership
//
// The region passed to New is borrowed: the pool never allocates,
// resizes, or releases it, and Close leaves it untouched. The pool owns
// only its side table, which Close releases. Callers typically obtain
// regions from the memregion helpers or any []byte of sufficient length.
//
// # Usage Example
//
//	mem := make([]byte, 320)
//	p, err := pool.New(mem, 1, 320)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	off, run, err := p.Alloc(64)
//	if err != nil {
//	    return err
//	}
//	copy(run, payload) // run aliases mem[off : off+64]
//
//	p.Free(off)
//
// # Freeing
//
// Free accepts the byte offset returned by Alloc and silently ignores
// anything else: misaligned offsets, offsets outside the region,
// already-free blocks, and offsets that point into the middle of a run.
// Release performs the same operation but reports the rejection reason
// as a typed error for callers that need to detect misuse.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must serialize access
// externally; every operation completes in bounded time (worst case one
// scan of the table) and never blocks or retries.
package pool
