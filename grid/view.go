// File: view.go
// Role: uniform row/column accessor so the layout engine never needs
// to distinguish rows from columns.

package grid

// LineView is a uniform accessor over one row or column of a Grid: an
// index k in [0, Len()) addresses a cell regardless of orientation.
type LineView interface {
	// Len returns the line's length L.
	Len() int
	// Get returns the cell at index k.
	Get(k int) Cell
	// Set writes c at index k, applying the same Empty-only transition
	// rule as Grid.Set. changed reports whether a new determination was
	// made.
	Set(k int, c Cell) (changed bool, err error)
}

// rowView addresses row y of g: Get(k) reads (k, y).
type rowView struct {
	g *Grid
	y int
}

// RowView returns a LineView over row y of g.
func RowView(g *Grid, y int) LineView { return rowView{g: g, y: y} }

func (v rowView) Len() int                        { return v.g.Width }
func (v rowView) Get(k int) Cell                  { return v.g.At(k, v.y) }
func (v rowView) Set(k int, c Cell) (bool, error) { return v.g.Set(k, v.y, c) }

// colView addresses column x of g: Get(k) reads (x, k).
type colView struct {
	g *Grid
	x int
}

// ColView returns a LineView over column x of g.
func ColView(g *Grid, x int) LineView { return colView{g: g, x: x} }

func (v colView) Len() int                       { return v.g.Height }
func (v colView) Get(k int) Cell                 { return v.g.At(v.x, k) }
func (v colView) Set(k int, c Cell) (bool, error) { return v.g.Set(v.x, k, c) }

// View returns a LineView for the given axis/index pair of g.
func View(g *Grid, axis Axis, index int) LineView {
	if axis == Row {
		return RowView(g, index)
	}
	return ColView(g, index)
}
