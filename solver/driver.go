package solver

import (
	"context"

	"github.com/katalvlaran/nonogram/grid"
)

// propagate drains dirtyCols then dirtyRows, alternating, until both
// are empty: the two-dimensional fixed point. A column's Update can
// only mark rows dirty (and vice versa), so once an inner drain starts
// its own axis's dirty set cannot regain entries mid-drain; the nested
// loop shape mirrors that invariant rather than fighting it.
func (s *state) propagate(ctx context.Context, c *counters, onStep func(Event)) error {
	for s.dirtyCols.any() || s.dirtyRows.any() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for s.dirtyCols.any() {
			for _, x := range s.dirtyCols.drain() {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.addIterations(1)
				changed, err := s.colLayouts[x].Update(grid.ColView(s.grid, x))
				if err != nil {
					return &ConflictError{Axis: "col", Index: x, Err: err}
				}
				c.addForcedProp(len(changed))
				for _, y := range changed {
					s.dirtyRows.mark(y)
				}
				if onStep != nil {
					onStep(Event{Kind: "propagate", Axis: "col", Index: x})
				}
			}
		}
		for s.dirtyRows.any() {
			for _, y := range s.dirtyRows.drain() {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.addIterations(1)
				changed, err := s.rowLayouts[y].Update(grid.RowView(s.grid, y))
				if err != nil {
					return &ConflictError{Axis: "row", Index: y, Err: err}
				}
				c.addForcedProp(len(changed))
				for _, x := range changed {
					s.dirtyCols.mark(x)
				}
				if onStep != nil {
					onStep(Event{Kind: "propagate", Axis: "row", Index: y})
				}
			}
		}
	}
	return nil
}
