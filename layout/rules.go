// File: rules.go
// Role: update-starts — the left-to-right feasibility pass, operating
// directly on a (chains, ranges, length) triple so stops.go can reuse
// it unmodified against a reversed view.

package layout

import "github.com/katalvlaran/nonogram/grid"

// reduceStartsPass runs update_starts over chains/ranges against view,
// iterating chains right to left and backtracking a neighbor's Start
// forward whenever monotonicity would otherwise be violated.
func reduceStartsPass(chains []grid.Chain, ranges []ChainRange, length int, view grid.LineView) error {
	for i := len(chains) - 1; i >= 0; i-- {
		if err := fixStartAt(chains, ranges, length, i, view); err != nil {
			return err
		}
	}
	return nil
}

// fixStartAt applies the three start-reduction rules to chain i, then
// checks monotonicity against chain i+1. A violation backtracks: chain
// i+1's Start is pushed forward to the minimum feasible value, its
// entire start-reduction is re-run (which may cascade further right),
// and chain i is retried.
func fixStartAt(chains []grid.Chain, ranges []ChainRange, length int, i int, view grid.LineView) error {
	if err := reduceChainStart(chains, ranges, length, i, view); err != nil {
		return err
	}
	for i+1 < len(chains) {
		required := ranges[i].Start + adjTotal(chains, i)
		if required <= ranges[i+1].Start {
			return nil
		}
		ranges[i+1].Start = required
		if ranges[i+1].Start+chains[i+1].Length > length {
			return ErrInfeasible
		}
		if err := fixStartAt(chains, ranges, length, i+1, view); err != nil {
			return err
		}
		if err := reduceChainStart(chains, ranges, length, i, view); err != nil {
			return err
		}
	}
	return nil
}

// reduceChainStart applies R1, R2, R3 in order to chain i's Start.
func reduceChainStart(chains []grid.Chain, ranges []ChainRange, length int, i int, view grid.LineView) error {
	ch := chains[i]
	s := ranges[i].Start

	// R1 — pull start toward the rightmost forced box assignable to
	// this chain: scan backward from just before the next chain's
	// current start (or the line's end, if last) down to s+len-1,
	// stopping at the first same-color box found.
	hi := length - 1
	if i+1 < len(chains) {
		hi = ranges[i+1].Start - 1
	}
	lo := s + ch.Length - 1
	for b := hi; b >= lo; b-- {
		cell := view.Get(b)
		if cell.State == grid.CellBox && cell.Color == ch.Color {
			if nb := b - ch.Length + 1; nb > s {
				s = nb
			}
			break
		}
	}

	// R2 — push start past any adjacent same-color box: two chains of
	// the same color can never touch.
	for s > 0 {
		cell := view.Get(s - 1)
		if cell.State != grid.CellBox || cell.Color != ch.Color {
			break
		}
		s++
	}

	// R3 — push start to the first window of Length compatible cells.
	counter := 0
	idx := s
	for {
		if idx >= length {
			return ErrInfeasible
		}
		cell := view.Get(idx)
		compatible := cell.State == grid.CellEmpty || (cell.State == grid.CellBox && cell.Color == ch.Color)
		if compatible {
			counter++
			if counter == ch.Length {
				s = idx - ch.Length + 1
				break
			}
		} else {
			counter = 0
			s = idx + 1
		}
		idx++
	}

	ranges[i].Start = s
	return nil
}
