// File: forced.go
// Role: cell deduction from tightened ranges.

package layout

import "github.com/katalvlaran/nonogram/grid"

// ForcedCells derives and writes the cells that follow from l's
// current ranges:
//
//   - a cell covered by no chain's range is forced Space;
//   - a cell covered only by ranges of one color, and lying in at
//     least one of those chains' guaranteed-overlap zone
//     [Stop-Length, Start+Length), is forced Box(color).
//
// Any other cell is left as-is. Returns the line-local indices that
// were newly determined this call (view.Set reported changed), or
// ErrInfeasible if a forced write conflicts with an existing
// determined cell.
func (l *LineLayout) ForcedCells(view grid.LineView) ([]int, error) {
	var changed []int
	for k := 0; k < l.Length; k++ {
		covered := false
		sameColor := true
		guaranteed := false
		var color grid.Color

		for i, ch := range l.Chains {
			r := l.Ranges[i]
			if k < r.Start || k >= r.Stop {
				continue
			}
			if !covered {
				covered = true
				color = ch.Color
			} else if ch.Color != color {
				sameColor = false
			}
			zoneLo := r.Stop - ch.Length
			zoneHi := r.Start + ch.Length
			if k >= zoneLo && k < zoneHi {
				guaranteed = true
			}
		}

		var (
			wrote bool
			err   error
		)
		switch {
		case !covered:
			wrote, err = view.Set(k, grid.Space)
		case sameColor && guaranteed:
			wrote, err = view.Set(k, grid.Box(color))
		default:
			continue
		}
		if err != nil {
			if err == grid.ErrConflict {
				return changed, ErrInfeasible
			}
			return changed, err
		}
		if wrote {
			changed = append(changed, k)
		}
	}
	return changed, nil
}
