package puzzleio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/puzzleio"
)

func TestLayout_RoundTrip(t *testing.T) {
	require := require.New(t)
	cols := [][]grid.Chain{
		{{Color: grid.Universal, Length: 1}},
		{{Color: grid.Color(1), Length: 2}, {Color: grid.Universal, Length: 1}},
	}
	rows := [][]grid.Chain{
		{{Color: grid.Universal, Length: 2}},
	}

	var buf bytes.Buffer
	require.NoError(puzzleio.EncodeLayout(&buf, cols, rows))

	gotCols, gotRows, err := puzzleio.DecodeLayout(&buf)
	require.NoError(err)
	require.Equal(cols, gotCols)
	require.Equal(rows, gotRows)
}

func TestLayout_UncoloredChainIsBareInteger(t *testing.T) {
	require := require.New(t)
	cols := [][]grid.Chain{{{Color: grid.Universal, Length: 3}}}
	rows := [][]grid.Chain{{{Color: grid.Universal, Length: 1}}}

	var buf bytes.Buffer
	require.NoError(puzzleio.EncodeLayout(&buf, cols, rows))

	require.Contains(buf.String(), `"cols":[[3]]`)
}

func TestLayout_ColoredChainIsObject(t *testing.T) {
	require := require.New(t)
	cols := [][]grid.Chain{{{Color: grid.Color(2), Length: 3}}}
	rows := [][]grid.Chain{{{Color: grid.Universal, Length: 1}}}

	var buf bytes.Buffer
	require.NoError(puzzleio.EncodeLayout(&buf, cols, rows))

	require.Contains(buf.String(), `"color":2`)
	require.Contains(buf.String(), `"len":3`)
}

func TestGrid_RoundTrip(t *testing.T) {
	require := require.New(t)
	g := grid.NewGrid(2, 2)
	_, err := g.Set(0, 0, grid.Box(grid.Universal))
	require.NoError(err)
	_, err = g.Set(1, 0, grid.Space)
	require.NoError(err)
	_, err = g.Set(0, 1, grid.Space)
	require.NoError(err)
	_, err = g.Set(1, 1, grid.Box(grid.Color(1)))
	require.NoError(err)

	var buf bytes.Buffer
	require.NoError(puzzleio.EncodeGrid(&buf, g))

	got, err := puzzleio.DecodeGrid(&buf)
	require.NoError(err)
	require.Equal(g, got)
}

func TestGrid_RejectsUndeterminedCell(t *testing.T) {
	g := grid.NewGrid(1, 1)
	var buf bytes.Buffer
	err := puzzleio.EncodeGrid(&buf, g)
	require.ErrorIs(t, err, puzzleio.ErrUndeterminedCell)
}

func TestGrid_RejectsRaggedRows(t *testing.T) {
	_, err := puzzleio.DecodeGrid(strings.NewReader(`{"rows":[["Space","Space"],["Space"]]}`))
	require.ErrorIs(t, err, puzzleio.ErrInvalidDocument)
}

func TestGrid_RejectsUnknownCellString(t *testing.T) {
	_, err := puzzleio.DecodeGrid(strings.NewReader(`{"rows":[["Bogus"]]}`))
	require.ErrorIs(t, err, puzzleio.ErrInvalidDocument)
}

func TestLayout_RejectsMalformedDocument(t *testing.T) {
	_, _, err := puzzleio.DecodeLayout(strings.NewReader(`not json`))
	require.ErrorIs(t, err, puzzleio.ErrInvalidDocument)
}
