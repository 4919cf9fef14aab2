package layout

import "github.com/katalvlaran/nonogram/grid"

// Update runs update_starts then update_stops against view, then
// derives and writes forced cells from the tightened ranges.
//
// Returns the line-local indices whose cell was newly determined this
// call (for the caller to mark the crossing axis dirty), or
// ErrInfeasible if any chain's range collapsed past its length, R3
// found no compatible window, or a forced write conflicted with an
// existing determined cell.
func (l *LineLayout) Update(view grid.LineView) ([]int, error) {
	if err := reduceStartsPass(l.Chains, l.Ranges, l.Length, view); err != nil {
		return nil, err
	}
	if err := reduceStopsPass(l.Chains, l.Ranges, l.Length, view); err != nil {
		return nil, err
	}
	for i, ch := range l.Chains {
		if l.Ranges[i].Len() < ch.Length {
			return nil, ErrInfeasible
		}
	}
	return l.ForcedCells(view)
}

// Pinned reports whether every chain's range has narrowed to exactly
// its length: the line is fully determined by its ranges alone.
func (l *LineLayout) Pinned() bool {
	for i, ch := range l.Chains {
		if l.Ranges[i].Len() > ch.Length {
			return false
		}
	}
	return true
}
