package render

import (
	"github.com/fatih/color"

	"github.com/katalvlaran/nonogram/grid"
)

// cycle is the fixed palette ansiFor draws from; callers cannot supply
// a color→ANSI mapping of their own. grid.Color values are assigned
// round-robin, so the same puzzle always renders with the same colors.
var cycle = []color.Attribute{
	color.FgRed,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
	color.FgWhite,
}

func ansiFor(c grid.Color) *color.Color {
	return color.New(cycle[int(c)%len(cycle)])
}
