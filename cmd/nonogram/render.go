package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonogram/puzzleio"
	"github.com/katalvlaran/nonogram/render"
)

var (
	renderFileFlag   string
	renderStyleFlag  string
	renderCoordsFlag bool
	renderColorFlag  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a solved grid to the terminal",
	Long: `Reads a grid document from standard input, or from --file, and
prints it to the terminal in ASCII or Unicode, optionally colorized.

Examples:
  nonogram render < solved.json
  nonogram render --file solved.json --style ascii --coords
  nonogram render --color < solved.json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if renderFileFlag != "" {
			f, err := os.Open(renderFileFlag)
			if err != nil {
				return fmt.Errorf("opening %s: %w", renderFileFlag, err)
			}
			defer f.Close()
			in = f
		}

		g, err := puzzleio.DecodeGrid(in)
		if err != nil {
			return fmt.Errorf("reading grid: %w", err)
		}

		return render.ToWriter(cmd.OutOrStdout(), g, render.Options{
			Style:      renderStyleFlag,
			Color:      renderColorFlag,
			ShowCoords: renderCoordsFlag,
		})
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFileFlag, "file", "f", "", "grid JSON file (default: standard input)")
	renderCmd.Flags().StringVarP(&renderStyleFlag, "style", "s", "unicode", "render style: ascii or unicode")
	renderCmd.Flags().BoolVarP(&renderCoordsFlag, "coords", "c", false, "show row coordinates")
	renderCmd.Flags().BoolVar(&renderColorFlag, "color", false, "colorize box glyphs by chain color")
}
