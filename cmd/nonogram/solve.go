package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonogram/internal/clilog"
	"github.com/katalvlaran/nonogram/internal/cliui"
	"github.com/katalvlaran/nonogram/puzzleio"
	"github.com/katalvlaran/nonogram/solver"
)

var (
	solveFileFlag string
	solveOutFlag  string
	solveParallel bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle layout and print the resulting grid",
	Long: `Reads a layout document (the "{cols, rows}" chain format) from
standard input, or from --file, solves it, and writes the resulting
grid document to standard output, or to --out.

Examples:
  nonogram solve < puzzle.json
  nonogram solve --file puzzle.json --out solved.json
  nonogram solve --parallel --workers 4 < puzzle.json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if solveFileFlag != "" {
			f, err := os.Open(solveFileFlag)
			if err != nil {
				return fmt.Errorf("opening %s: %w", solveFileFlag, err)
			}
			defer f.Close()
			in = f
		}

		cols, rows, err := puzzleio.DecodeLayout(in)
		if err != nil {
			return fmt.Errorf("reading layout: %w", err)
		}

		sp := cliui.New("solving...")
		sp.Start()
		res, err := solver.Solve(cols, rows, solver.Options{
			Parallel:   solveParallel,
			MaxWorkers: workersCount,
		})
		sp.Stop()
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		clilog.Verbose("iterations=%d branches=%d forced(prop)=%d forced(guess)=%d duration=%s",
			res.Stats.Iterations, res.Stats.Branches,
			res.Stats.ForcedByPropagation, res.Stats.ForcedByBranching, res.Stats.Duration)

		if res.Cancelled {
			return fmt.Errorf("solve: cancelled")
		}
		if !res.Solved {
			clilog.Info("no solution exists for this layout")
			return nil
		}

		out := cmd.OutOrStdout()
		if solveOutFlag != "" {
			f, err := os.Create(solveOutFlag)
			if err != nil {
				return fmt.Errorf("creating %s: %w", solveOutFlag, err)
			}
			defer f.Close()
			out = f
		}
		return puzzleio.EncodeGrid(out, res.Grid)
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveFileFlag, "file", "f", "", "layout JSON file (default: standard input)")
	solveCmd.Flags().StringVarP(&solveOutFlag, "out", "o", "", "grid JSON output file (default: standard output)")
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", false, "evaluate branch alternatives concurrently")
}
