package grid

// Grid is a rectangular Width×Height array of cells with O(1) indexed
// access, stored row-major in a single flat slice for cache locality.
// Each solve branch owns its own Grid; Clone is a deep copy so branches
// never share mutable cell state.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// NewGrid returns a Width×Height Grid with every cell CellEmpty.
// Complexity: O(Width*Height).
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, false
	}
	return y*g.Width + x, true
}

// At returns the cell at (x, y). Out-of-range coordinates return the
// zero CellEmpty value.
func (g *Grid) At(x, y int) Cell {
	i, ok := g.index(x, y)
	if !ok {
		return Cell{}
	}
	return g.cells[i]
}

// Set writes c at (x, y).
//
// Only Empty -> Space and Empty -> Box transitions are permitted; a
// Set that would change an already-determined cell to a different
// value returns ErrConflict and leaves the grid untouched. Setting a
// cell to its current value is a no-op and reports changed = false.
func (g *Grid) Set(x, y int, c Cell) (changed bool, err error) {
	i, ok := g.index(x, y)
	if !ok {
		return false, ErrOutOfRange
	}
	cur := g.cells[i]
	if cur.State == CellEmpty {
		if c.State == CellEmpty {
			return false, nil
		}
		g.cells[i] = c
		return true, nil
	}
	if cur == c {
		return false, nil
	}
	return false, ErrConflict
}

// Clone returns a deep copy of g. Cost is linear in Width*Height.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Runs reconstructs the chain list actually present along the given
// line by scanning its cells left-to-right (Row) or top-to-bottom
// (Col), grouping consecutive same-color Box cells. A line containing
// any CellEmpty cell is not yet fully determined; Runs still returns
// the runs visible so far, which is only meaningful for verification
// once the grid is complete.
func (g *Grid) Runs(axis Axis, index int) []Chain {
	l := g.Height
	if axis == Row {
		l = g.Width
	}
	var runs []Chain
	curColor := Color(0)
	curLen := 0
	flush := func() {
		if curLen > 0 {
			runs = append(runs, Chain{Color: curColor, Length: curLen})
			curLen = 0
		}
	}
	for k := 0; k < l; k++ {
		var cell Cell
		if axis == Row {
			cell = g.At(k, index)
		} else {
			cell = g.At(index, k)
		}
		if cell.State == CellBox {
			if curLen > 0 && cell.Color == curColor {
				curLen++
			} else {
				flush()
				curColor = cell.Color
				curLen = 1
			}
		} else {
			flush()
		}
	}
	flush()
	return runs
}

// Complete reports whether every cell in the grid is determined
// (Space or Box).
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if c.State == CellEmpty {
			return false
		}
	}
	return true
}
