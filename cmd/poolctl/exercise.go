package main

import (
	"fmt"
	"math/rand"

	"github.com/dontscrewme/memory-pool/internal/memregion"
	"github.com/dontscrewme/memory-pool/pool"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type exerciseOptions struct {
	blockSize int
	numBlocks int
	ops       int
	seed      int64
	maxAlloc  int
}

type exerciseReport struct {
	BlockSize    string `json:"block_size"`
	Capacity     string `json:"capacity"`
	Ops          int    `json:"ops"`
	Live         int    `json:"live_allocations"`
	FreeBlocks   int    `json:"free_blocks"`
	LargestRun   int    `json:"largest_run_blocks"`
	AllocCalls   int    `json:"alloc_calls"`
	AllocFailed  int    `json:"alloc_failed"`
	FreeCalls    int    `json:"free_calls"`
	FreeRejected int    `json:"free_rejected"`
}

func init() {
	rootCmd.AddCommand(newExerciseCmd())
}

func newExerciseCmd() *cobra.Command {
	opts := exerciseOptions{}
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Apply a randomized alloc/free workload and report statistics",
		Long: `The exercise command creates a pool of the given shape over an
anonymous mapping, applies a seeded random sequence of allocations and
frees, and reports allocator statistics and fragmentation afterwards.

Example:
  poolctl exercise --block-size 64 --blocks 1024 --ops 10000
  poolctl exercise --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercise(opts)
		},
	}
	cmd.Flags().IntVar(&opts.blockSize, "block-size", 64, "Block size in bytes")
	cmd.Flags().IntVar(&opts.numBlocks, "blocks", 1024, "Number of blocks in the pool")
	cmd.Flags().IntVar(&opts.ops, "ops", 10000, "Number of random operations")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().
		IntVar(&opts.maxAlloc, "max-alloc", 0, "Largest request size in bytes (default 8 blocks)")
	return cmd
}

func runExercise(opts exerciseOptions) error {
	if opts.blockSize <= 0 || opts.numBlocks <= 0 || opts.ops < 0 {
		return fmt.Errorf("invalid workload shape: block-size=%d blocks=%d ops=%d",
			opts.blockSize, opts.numBlocks, opts.ops)
	}
	if opts.maxAlloc <= 0 {
		opts.maxAlloc = opts.blockSize * 8
	}

	mem, cleanup, err := memregion.Anonymous(opts.blockSize * opts.numBlocks)
	if err != nil {
		return fmt.Errorf("failed to map region: %w", err)
	}
	defer cleanup() //nolint:errcheck // workload teardown

	p, err := pool.New(mem, opts.blockSize, opts.numBlocks)
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}
	defer p.Close()

	printVerbose("Pool: %s capacity, %d x %s blocks, seed %d\n",
		humanize.IBytes(uint64(p.Cap())), p.NumBlocks(),
		humanize.IBytes(uint64(p.BlockSize())), opts.seed)

	rng := rand.New(rand.NewSource(opts.seed))
	live := make([]int, 0, opts.numBlocks)

	for range opts.ops {
		// Two-thirds allocations keeps the pool under pressure so both
		// capacity failures and fragmentation failures show up.
		if rng.Intn(3) < 2 || len(live) == 0 {
			size := 1 + rng.Intn(opts.maxAlloc)
			off, _, allocErr := p.Alloc(size)
			if allocErr == nil {
				live = append(live, off)
			}
			continue
		}
		i := rng.Intn(len(live))
		p.Free(live[i])
		live[i] = live[len(live)-1]
		live = live[:len(live)-1]
	}

	s := p.Stats()
	report := exerciseReport{
		BlockSize:    humanize.IBytes(uint64(p.BlockSize())),
		Capacity:     humanize.IBytes(uint64(p.Cap())),
		Ops:          opts.ops,
		Live:         len(live),
		FreeBlocks:   p.FreeBlocks(),
		LargestRun:   p.LargestRun(),
		AllocCalls:   s.AllocCalls,
		AllocFailed:  s.AllocFailed,
		FreeCalls:    s.FreeCalls,
		FreeRejected: s.FreeRejected,
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nWorkload complete (%d ops, seed %d):\n", opts.ops, opts.seed)
	printInfo("  Capacity:      %s (%d x %s blocks)\n",
		report.Capacity, p.NumBlocks(), report.BlockSize)
	printInfo("  Live:          %d allocations\n", report.Live)
	printInfo("  Free:          %d blocks (%s), largest run %d blocks\n",
		report.FreeBlocks, humanize.IBytes(uint64(p.FreeBytes())), report.LargestRun)
	printInfo("  Allocations:   %d calls, %d failed\n", report.AllocCalls, report.AllocFailed)
	printInfo("  Frees:         %d calls, %d rejected\n", report.FreeCalls, report.FreeRejected)
	return nil
}
