package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonogram/internal/clilog"
)

var (
	verboseFlag bool
	workersFlag string

	workersCount int
)

var rootCmd = &cobra.Command{
	Use:   "nonogram",
	Short: "Solve and render nonogram (picture-cross) puzzles",
	Long: `nonogram solves picture-cross puzzles from a declared set of
row and column chains, reading a layout document from standard input
and writing the solved grid to standard output.

It provides commands for:
  - solve: read a layout, write a solved grid
  - render: read a solved grid, print it to the terminal`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		clilog.VerboseEnabled = verboseFlag

		count, err := parseWorkers(workersFlag)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		workersCount = count
		clilog.Verbose("workers: %d (from flag %q)", workersCount, workersFlag)
		return nil
	},
}

// Execute runs the root command; called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&workersFlag, "workers", "j", "full", "concurrent branch workers (integer, 'half', or 'full')")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
}

// parseWorkers accepts "full" -> NumCPU(), "half" -> NumCPU()/2 (min 1),
// or an explicit positive integer.
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		n := runtime.NumCPU() / 2
		if n < 1 {
			n = 1
		}
		return n, nil
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got %q)", value)
		}
		if n < 1 {
			return 0, fmt.Errorf("must be at least 1 (got %d)", n)
		}
		return n, nil
	}
}
