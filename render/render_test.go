package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/render"
)

func solvedGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.NewGrid(2, 2)
	_, err := g.Set(0, 0, grid.Box(grid.Universal))
	require.NoError(t, err)
	_, err = g.Set(1, 0, grid.Space)
	require.NoError(t, err)
	_, err = g.Set(0, 1, grid.Space)
	require.NoError(t, err)
	_, err = g.Set(1, 1, grid.Box(grid.Universal))
	require.NoError(t, err)
	return g
}

func TestToWriter_UnicodeHasBorderAndGlyphs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.ToWriter(&buf, solvedGrid(t), render.DefaultOptions()))
	out := buf.String()
	require.Contains(t, out, "+--")
	require.Contains(t, out, "█")
	require.Contains(t, out, "·")
}

func TestToWriter_AsciiUsesAsciiGlyphs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.ToWriter(&buf, solvedGrid(t), render.Options{Style: "ascii"}))
	out := buf.String()
	require.Contains(t, out, "#")
	require.Contains(t, out, ".")
}

func TestToWriter_EmptyCellRendersAsQuestionMark(t *testing.T) {
	g := grid.NewGrid(1, 1)
	var buf bytes.Buffer
	require.NoError(t, render.ToWriter(&buf, g, render.DefaultOptions()))
	require.Contains(t, buf.String(), "?")
}

func TestToWriter_ShowCoordsAddsGutter(t *testing.T) {
	var bufWith, bufWithout bytes.Buffer
	g := solvedGrid(t)
	require.NoError(t, render.ToWriter(&bufWith, g, render.Options{Style: "ascii", ShowCoords: true}))
	require.NoError(t, render.ToWriter(&bufWithout, g, render.Options{Style: "ascii"}))
	require.Greater(t, len(bufWith.String()), len(bufWithout.String()))
}
