package puzzleio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/nonogram/grid"
)

type layoutDoc struct {
	Cols [][]chainJSON `json:"cols"`
	Rows [][]chainJSON `json:"rows"`
}

// EncodeLayout writes cols/rows to w as a layout document.
func EncodeLayout(w io.Writer, cols, rows [][]grid.Chain) error {
	doc := layoutDoc{
		Cols: make([][]chainJSON, len(cols)),
		Rows: make([][]chainJSON, len(rows)),
	}
	for i, line := range cols {
		doc.Cols[i] = fromChains(line)
	}
	for i, line := range rows {
		doc.Rows[i] = fromChains(line)
	}
	return json.NewEncoder(w).Encode(doc)
}

// DecodeLayout reads a layout document from r.
func DecodeLayout(r io.Reader) (cols, rows [][]grid.Chain, err error) {
	var doc layoutDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	cols = make([][]grid.Chain, len(doc.Cols))
	for i, line := range doc.Cols {
		cols[i] = toChains(line)
	}
	rows = make([][]grid.Chain, len(doc.Rows))
	for i, line := range doc.Rows {
		rows[i] = toChains(line)
	}
	return cols, rows, nil
}
