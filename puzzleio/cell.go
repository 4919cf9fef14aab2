package puzzleio

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/nonogram/grid"
)

// cellJSON is grid.Cell's wire encoding: the string "Space", or an
// object naming the box color. An Empty cell has no representation;
// MarshalJSON on one fails.
type cellJSON grid.Cell

type boxObject struct {
	Color grid.Color `json:"color"`
}

func (c cellJSON) MarshalJSON() ([]byte, error) {
	switch c.State {
	case grid.CellSpace:
		return json.Marshal("Space")
	case grid.CellBox:
		return json.Marshal(map[string]boxObject{"Box": {Color: c.Color}})
	default:
		return nil, ErrUndeterminedCell
	}
}

func (c *cellJSON) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "Space" {
			return fmt.Errorf("%w: unknown cell string %q", ErrInvalidDocument, s)
		}
		*c = cellJSON(grid.Space)
		return nil
	}
	var obj struct {
		Box *boxObject `json:"Box"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Box == nil {
		return fmt.Errorf("%w: cell: not \"Space\" or a Box object", ErrInvalidDocument)
	}
	*c = cellJSON(grid.Box(obj.Box.Color))
	return nil
}
