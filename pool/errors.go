package pool

import "errors"

var (
	// ErrNoRegion indicates a nil or empty backing region was passed to New.
	ErrNoRegion = errors.New("pool: nil or empty memory region")

	// ErrBadBlockSize indicates a non-positive block size.
	ErrBadBlockSize = errors.New("pool: block size must be positive")

	// ErrBadBlockCount indicates a non-positive block count.
	ErrBadBlockCount = errors.New("pool: block count must be positive")

	// ErrRegionTooSmall indicates the region cannot hold blockSize*numBlocks bytes.
	ErrRegionTooSmall = errors.New("pool: region smaller than blockSize*numBlocks")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("pool: allocation size must be positive")

	// ErrNoSpace indicates no contiguous run of free blocks was large enough.
	ErrNoSpace = errors.New("pool: no contiguous run of free blocks large enough")

	// ErrClosed indicates an operation on a closed (or nil) pool.
	ErrClosed = errors.New("pool: closed")

	// ErrBadOffset indicates a free target that is not a block boundary
	// inside the region.
	ErrBadOffset = errors.New("pool: offset is not a block boundary inside the region")

	// ErrNotHead indicates a free target that is not the head of a live
	// run (the block is free, or a continuation of an earlier head).
	ErrNotHead = errors.New("pool: offset is not the head of a live allocation")

	// ErrCorrupt indicates a head entry whose recorded run length extends
	// past the end of the table.
	ErrCorrupt = errors.New("pool: recorded run extends past the end of the pool")
)
