package puzzleio

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/nonogram/grid"
)

// chainJSON is grid.Chain with the uncolored shorthand: a chain
// defaults to the universal color and encodes as a bare integer
// length in that case, or as {"color", "len"} otherwise.
type chainJSON grid.Chain

type chainObject struct {
	Color grid.Color `json:"color"`
	Len   int        `json:"len"`
}

func (c chainJSON) MarshalJSON() ([]byte, error) {
	if c.Color == grid.Universal {
		return json.Marshal(c.Length)
	}
	return json.Marshal(chainObject{Color: c.Color, Len: c.Length})
}

func (c *chainJSON) UnmarshalJSON(data []byte) error {
	var length int
	if err := json.Unmarshal(data, &length); err == nil {
		c.Color = grid.Universal
		c.Length = length
		return nil
	}
	var obj chainObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: chain: %v", ErrInvalidDocument, err)
	}
	c.Color = obj.Color
	c.Length = obj.Len
	return nil
}

func toChains(xs []chainJSON) []grid.Chain {
	out := make([]grid.Chain, len(xs))
	for i, x := range xs {
		out[i] = grid.Chain(x)
	}
	return out
}

func fromChains(xs []grid.Chain) []chainJSON {
	out := make([]chainJSON, len(xs))
	for i, x := range xs {
		out[i] = chainJSON(x)
	}
	return out
}
