package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg := defaultConfig()

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("poolviz %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		case "--blocks", "--block-size", "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: %s requires a value\n", arg)
				os.Exit(1)
			}
			i++
			v, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil || v <= 0 {
				fmt.Fprintf(os.Stderr, "Error: invalid value for %s: %s\n", arg, args[i])
				os.Exit(1)
			}
			switch arg {
			case "--blocks":
				cfg.numBlocks = int(v)
			case "--block-size":
				cfg.blockSize = int(v)
			case "--seed":
				cfg.seed = v
			}
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument: %s\n", arg)
			printUsage()
			os.Exit(1)
		}
	}

	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: poolviz [--blocks N] [--block-size N] [--seed N]")
}

func printHelp() {
	printUsage()
	fmt.Println()
	fmt.Println("poolviz renders a fixed-block memory pool's allocation table while")
	fmt.Println("a seeded random alloc/free workload runs against it.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --blocks N      number of blocks in the pool (default 512)")
	fmt.Println("  --block-size N  block size in bytes (default 64)")
	fmt.Println("  --seed N        workload random seed (default 1)")
	fmt.Println()
	fmt.Println("Keys:")
	fmt.Println("  space  pause/resume    n  single step      r  reset pool")
	fmt.Println("  +/-    speed up/down   q  quit")
}
