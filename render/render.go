package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/nonogram/grid"
)

// Options configures ToWriter.
type Options struct {
	// Style is "ascii" or "unicode" (default); anything else falls
	// back to unicode.
	Style string
	// Color wraps each box glyph in an ANSI color escape keyed off its
	// grid.Color, via the fallback cycle in palette.go.
	Color bool
	// ShowCoords prints a row-index gutter down the left edge.
	ShowCoords bool
}

// DefaultOptions returns unicode glyphs, no color, no coordinate
// gutter.
func DefaultOptions() Options {
	return Options{Style: "unicode"}
}

func glyphs(style string) (box, space, empty string) {
	if strings.EqualFold(style, "ascii") {
		return "#", ".", "?"
	}
	return "█", "·", "?"
}

// ToWriter draws g to w: a bordered grid with row 0 at the top, one
// glyph per cell. An Empty cell (the grid is not yet Complete) renders
// as "?" rather than failing, so partial solves can be inspected too.
func ToWriter(w io.Writer, g *grid.Grid, opts Options) error {
	box, space, empty := glyphs(opts.Style)

	border := func() {
		fmt.Fprint(w, "+")
		for x := 0; x < g.Width; x++ {
			fmt.Fprint(w, "--")
		}
		fmt.Fprint(w, "-+\n")
	}

	border()
	for y := 0; y < g.Height; y++ {
		if opts.ShowCoords {
			fmt.Fprintf(w, "%2d", y)
		}
		fmt.Fprint(w, "| ")
		for x := 0; x < g.Width; x++ {
			cell := g.At(x, y)
			var glyph string
			switch cell.State {
			case grid.CellBox:
				glyph = box
				if opts.Color {
					glyph = ansiFor(cell.Color).Sprint(glyph)
				}
			case grid.CellSpace:
				glyph = space
			default:
				glyph = empty
			}
			fmt.Fprintf(w, "%s ", glyph)
		}
		fmt.Fprint(w, "|\n")
	}
	border()
	return nil
}
