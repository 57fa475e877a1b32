package pool

// Stats holds cumulative counters for instrumentation and testing.
type Stats struct {
	AllocCalls   int // Total Alloc() calls
	AllocFailed  int // Alloc() calls rejected (bad size, capacity, fragmentation)
	FreeCalls    int // Total Free()/Release() calls
	FreeRejected int // Free()/Release() calls that were ignored

	BlocksAllocated int64 // Total blocks reserved across all allocations
	BlocksFreed     int64 // Total blocks returned across all frees
}

// Stats returns a snapshot of the pool's cumulative counters.
func (p *Pool) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	return p.stats
}

// LargestRun returns the length in blocks of the largest contiguous free
// run. A request needing more than this many blocks fails with
// ErrNoSpace regardless of aggregate free capacity. O(numBlocks) scan;
// used for fragmentation reporting, never by Alloc.
func (p *Pool) LargestRun() int {
	if p == nil || p.closed {
		return 0
	}
	largest, run := 0, 0
	for i := 0; i < p.numBlocks; {
		switch n := p.table[i]; {
		case n > 0:
			run = 0
			i += int(n)
		case n == entryCont:
			run = 0
			i++
		default:
			run++
			if run > largest {
				largest = run
			}
			i++
		}
	}
	return largest
}

// Table returns a copy of the allocation table: one entry per block,
// 0 for free, +N for the head of an N-block run, -1 for a continuation.
// Intended for instrumentation and tests.
func (p *Pool) Table() []int32 {
	if p == nil || p.table == nil {
		return nil
	}
	out := make([]int32, len(p.table))
	copy(out, p.table)
	return out
}
