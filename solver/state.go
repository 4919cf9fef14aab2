package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/layout"
)

// state is one independently-owned candidate: a grid plus one
// LineLayout per row and per column, plus the dirty sets still owed a
// propagation pass. A branch forks state by deep-copying it; the two
// resulting forks share no mutable memory, so they may be explored
// concurrently with no locking.
type state struct {
	grid       *grid.Grid
	rowLayouts []*layout.LineLayout
	colLayouts []*layout.LineLayout
	dirtyRows  *dirtySet
	dirtyCols  *dirtySet
}

func newState(cols, rows [][]grid.Chain) (*state, error) {
	width, height := len(cols), len(rows)
	s := &state{
		grid:       grid.NewGrid(width, height),
		rowLayouts: make([]*layout.LineLayout, height),
		colLayouts: make([]*layout.LineLayout, width),
		dirtyRows:  newDirtySet(height, true),
		dirtyCols:  newDirtySet(width, true),
	}
	for y, chains := range rows {
		l, err := layout.NewLineLayout(chains, width)
		if err != nil {
			return nil, wrapLineError("row", y, err)
		}
		s.rowLayouts[y] = l
	}
	for x, chains := range cols {
		l, err := layout.NewLineLayout(chains, height)
		if err != nil {
			return nil, wrapLineError("col", x, err)
		}
		s.colLayouts[x] = l
	}
	return s, nil
}

// wrapLineError classifies a LineLayout construction failure. A chain
// that merely cannot fit its line (layout.ErrInvalidInput) does not
// indicate bad puzzle data: it proves the puzzle unsolvable, so it is
// left unwrapped for Solve to recognize and turn into an ordinary
// Result{Solved:false}. Anything else (a chain declared with length <
// 1) is genuinely malformed input and is wrapped in the package's own
// ErrInvalidInput instead.
func wrapLineError(axis string, index int, err error) error {
	if errors.Is(err, layout.ErrInvalidInput) {
		return fmt.Errorf("%s %d: %w", axis, index, err)
	}
	return fmt.Errorf("%w: %s %d: %w", ErrInvalidInput, axis, index, err)
}

func (s *state) clone() *state {
	rows := make([]*layout.LineLayout, len(s.rowLayouts))
	for i, l := range s.rowLayouts {
		rows[i] = l.Clone()
	}
	cols := make([]*layout.LineLayout, len(s.colLayouts))
	for i, l := range s.colLayouts {
		cols[i] = l.Clone()
	}
	return &state{
		grid:       s.grid.Clone(),
		rowLayouts: rows,
		colLayouts: cols,
		dirtyRows:  s.dirtyRows.clone(),
		dirtyCols:  s.dirtyCols.clone(),
	}
}
