package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
)

func TestGrid_SetTransitions(t *testing.T) {
	require := require.New(t)
	g := grid.NewGrid(3, 2)

	changed, err := g.Set(0, 0, grid.Space)
	require.NoError(err)
	require.True(changed)
	require.Equal(grid.Space, g.At(0, 0))

	// Re-setting the same value is a no-op, not a conflict.
	changed, err = g.Set(0, 0, grid.Space)
	require.NoError(err)
	require.False(changed)

	// Setting a different value on a determined cell is a conflict.
	_, err = g.Set(0, 0, grid.Box(grid.Universal))
	require.ErrorIs(err, grid.ErrConflict)
}

func TestGrid_SetOutOfRange(t *testing.T) {
	g := grid.NewGrid(2, 2)
	_, err := g.Set(5, 0, grid.Space)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestGrid_Clone(t *testing.T) {
	require := require.New(t)
	g := grid.NewGrid(2, 2)
	_, err := g.Set(0, 0, grid.Box(grid.Universal))
	require.NoError(err)

	clone := g.Clone()
	_, err = clone.Set(1, 1, grid.Space)
	require.NoError(err)

	require.Equal(grid.CellEmpty, g.At(1, 1).State, "mutating the clone must not affect the original")
	require.Equal(grid.CellBox, clone.At(0, 0).State)
}

func TestGrid_Runs(t *testing.T) {
	require := require.New(t)
	g := grid.NewGrid(5, 1)
	for _, x := range []int{0, 1, 3, 4} {
		_, err := g.Set(x, 0, grid.Box(grid.Universal))
		require.NoError(err)
	}
	_, err := g.Set(2, 0, grid.Space)
	require.NoError(err)

	runs := g.Runs(grid.Row, 0)
	require.Equal([]grid.Chain{{Color: grid.Universal, Length: 2}, {Color: grid.Universal, Length: 2}}, runs)
}

func TestView_RowAndCol(t *testing.T) {
	require := require.New(t)
	g := grid.NewGrid(3, 3)

	row := grid.RowView(g, 1)
	require.Equal(3, row.Len())
	changed, err := row.Set(2, grid.Box(grid.Universal))
	require.NoError(err)
	require.True(changed)
	require.Equal(grid.CellBox, g.At(2, 1).State)

	col := grid.ColView(g, 2)
	require.Equal(grid.CellBox, col.Get(1).State)
}

func TestPalette_InternIsIdempotent(t *testing.T) {
	require := require.New(t)
	p := grid.NewPalette[string]()
	red := p.Intern("red")
	require.Equal(red, p.Intern("red"))
	yellow := p.Intern("yellow")
	require.NotEqual(red, yellow)

	label, ok := p.Label(red)
	require.True(ok)
	require.Equal("red", label)

	_, ok = p.Label(grid.Color(99))
	require.False(ok)
}
