package solver

import (
	"errors"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/layout"
)

// branchTarget names one cell the brancher has chosen to guess: the
// Start index of the first unresolved chain in the first
// not-fully-pinned line, rows before columns.
type branchTarget struct {
	axis      grid.Axis
	lineIndex int
	cellPos   int
	color     grid.Color
}

func axisName(a grid.Axis) string {
	if a == grid.Row {
		return "row"
	}
	return "col"
}

// coords returns the global (x, y) this target addresses.
func (t branchTarget) coords() (x, y int) {
	if t.axis == grid.Row {
		return t.cellPos, t.lineIndex
	}
	return t.lineIndex, t.cellPos
}

// apply writes cell at the target's coordinates in st and marks both
// lines through that cell (its row and its column) dirty. The target cell is always CellEmpty at the
// point a branch is taken (pickBranchTarget enforces this), so Set
// never conflicts here.
func (t branchTarget) apply(st *state, cell grid.Cell) error {
	x, y := t.coords()
	changed, err := st.grid.Set(x, y, cell)
	if err != nil {
		return err
	}
	if changed {
		st.dirtyCols.mark(x)
		st.dirtyRows.mark(y)
	}
	return nil
}

// pickBranchTarget finds the first not-fully-pinned line (every row in
// order, then every column in order), its first unresolved chain, and
// that chain's current range Start. The cell at Start must still be
// CellEmpty: R1/R3 tightening guarantees a chain's own window never
// leaves its Start cell forced while the window remains wider than the
// chain, so anything else found there means the propagation invariant
// was violated upstream.
func pickBranchTarget(s *state) (branchTarget, error) {
	for y, l := range s.rowLayouts {
		if chainIdx, ok := firstUnresolved(l); ok {
			return buildTarget(s, grid.Row, y, l, chainIdx)
		}
	}
	for x, l := range s.colLayouts {
		if chainIdx, ok := firstUnresolved(l); ok {
			return buildTarget(s, grid.Col, x, l, chainIdx)
		}
	}
	return branchTarget{}, errors.New("solver: no unresolved chain in an incomplete grid")
}

// firstUnresolved returns the index of the first chain whose range is
// wider than its length, i.e. the first chain Update has not yet
// pinned down.
func firstUnresolved(l *layout.LineLayout) (int, bool) {
	for i, ch := range l.Chains {
		if l.Ranges[i].Len() > ch.Length {
			return i, true
		}
	}
	return 0, false
}

func buildTarget(s *state, axis grid.Axis, lineIndex int, l *layout.LineLayout, chainIdx int) (branchTarget, error) {
	pos := l.Ranges[chainIdx].Start
	view := grid.View(s.grid, axis, lineIndex)
	if view.Get(pos).State != grid.CellEmpty {
		return branchTarget{}, ErrPreconditionViolated
	}
	return branchTarget{axis: axis, lineIndex: lineIndex, cellPos: pos, color: l.Chains[chainIdx].Color}, nil
}

func isInfeasible(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
