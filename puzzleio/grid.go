package puzzleio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/nonogram/grid"
)

type gridDoc struct {
	Rows [][]cellJSON `json:"rows"`
}

// EncodeGrid writes g to w as a grid document. Returns
// ErrUndeterminedCell if g is not yet Complete.
func EncodeGrid(w io.Writer, g *grid.Grid) error {
	doc := gridDoc{Rows: make([][]cellJSON, g.Height)}
	for y := 0; y < g.Height; y++ {
		row := make([]cellJSON, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = cellJSON(g.At(x, y))
		}
		doc.Rows[y] = row
	}
	return json.NewEncoder(w).Encode(doc)
}

// DecodeGrid reads a grid document from r. All rows must share the
// same width; a malformed cell or ragged row is ErrInvalidDocument.
func DecodeGrid(r io.Reader) (*grid.Grid, error) {
	var doc gridDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	height := len(doc.Rows)
	width := 0
	if height > 0 {
		width = len(doc.Rows[0])
	}
	g := grid.NewGrid(width, height)
	for y, row := range doc.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDocument, y, len(row), width)
		}
		for x, c := range row {
			if _, err := g.Set(x, y, grid.Cell(c)); err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrInvalidDocument, y, x, err)
			}
		}
	}
	return g, nil
}
