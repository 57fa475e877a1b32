package main

import (
	"fmt"

	"github.com/dontscrewme/memory-pool/internal/memregion"
	"github.com/dontscrewme/memory-pool/pool"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical two-pool demonstration",
		Long: `The demo command runs the canonical usage scenario: two pools of 320
one-byte blocks, one over a Go-allocated region and one over an anonymous
memory mapping. Each pool serves a single allocation (64 and 96 bytes),
reports its offset, frees it, and shuts down.

Example:
  poolctl demo
  poolctl demo --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	// Pool 1: Go-allocated region.
	mem := memregion.Heap(320)
	p, err := pool.New(mem, 1, 320)
	if err != nil {
		return fmt.Errorf("failed to create memory pool: %w", err)
	}

	off, _, err := p.Alloc(64)
	if err != nil {
		return fmt.Errorf("failed to allocate 64 bytes: %w", err)
	}
	printInfo("Allocated block1: offset %d (heap region)\n", off)
	printVerbose("  free blocks: %d of %d\n", p.FreeBlocks(), p.NumBlocks())

	p.Free(off)
	if err := p.Close(); err != nil {
		return err
	}

	// Pool 2: anonymous mapping, released by the caller after the pool
	// is gone - the pool never owns its region.
	mem2, cleanup, err := memregion.Anonymous(320)
	if err != nil {
		return fmt.Errorf("failed to map region: %w", err)
	}
	defer cleanup() //nolint:errcheck // demo teardown

	p2, err := pool.New(mem2, 1, 320)
	if err != nil {
		return fmt.Errorf("failed to create second memory pool: %w", err)
	}

	off2, _, err := p2.Alloc(96)
	if err != nil {
		return fmt.Errorf("failed to allocate 96 bytes: %w", err)
	}
	printInfo("Allocated block2: offset %d (anonymous mapping)\n", off2)
	printVerbose("  free blocks: %d of %d\n", p2.FreeBlocks(), p2.NumBlocks())

	p2.Free(off2)
	return p2.Close()
}
