package layout

import "github.com/katalvlaran/nonogram/grid"

// ChainRange is one chain's current feasible window within a line: the
// half-open interval [Start, Stop) in which the chain's first cell
// (Start) through one-past-its-last-possible-cell (Stop) may lie.
type ChainRange struct {
	Start, Stop int
}

// Len returns Stop - Start, the current window width.
func (r ChainRange) Len() int { return r.Stop - r.Start }

// LineLayout is one line's ordered chain list and parallel ordered
// range list. It is constructed once from the puzzle input, mutated in
// place during propagation, and deep-copied on branch recursion via
// Clone.
type LineLayout struct {
	Chains []grid.Chain
	Ranges []ChainRange
	Length int
}

// NewLineLayout constructs a LineLayout for a line of the given length
// holding chains in declared order. Ranges all start as [0, Length);
// Update tightens them on first call.
//
// Returns ErrInvalidInput if the chains cannot fit even with optimal
// packing: sum of lengths plus one mandatory gap cell between every
// pair of same-color neighbors must not exceed length.
func NewLineLayout(chains []grid.Chain, length int) (*LineLayout, error) {
	for _, c := range chains {
		if c.Length < 1 {
			return nil, grid.ErrInvalidChain
		}
	}
	minSpan := 0
	for i, c := range chains {
		minSpan += c.Length
		if i+1 < len(chains) && sameColor(chains, i) {
			minSpan++
		}
	}
	if minSpan > length {
		return nil, ErrInvalidInput
	}

	ranges := make([]ChainRange, len(chains))
	for i := range ranges {
		ranges[i] = ChainRange{Start: 0, Stop: length}
	}
	return &LineLayout{Chains: chains, Ranges: ranges, Length: length}, nil
}

// Clone returns a deep copy of l: the Chains slice is shared (chains
// are immutable input), Ranges is copied so mutation on one branch
// never affects another.
func (l *LineLayout) Clone() *LineLayout {
	ranges := make([]ChainRange, len(l.Ranges))
	copy(ranges, l.Ranges)
	return &LineLayout{Chains: l.Chains, Ranges: ranges, Length: l.Length}
}

// sameColor reports whether chain i and chain i+1 share a color. The
// caller must ensure i+1 is in range.
func sameColor(chains []grid.Chain, i int) bool {
	return chains[i].Color == chains[i+1].Color
}

// adjTotal returns the minimum number of cells chain i's window must
// occupy before chain i+1's start may begin: its own length, plus one
// mandatory gap cell if the two chains share a color.
func adjTotal(chains []grid.Chain, i int) int {
	total := chains[i].Length
	if i+1 < len(chains) && sameColor(chains, i) {
		total++
	}
	return total
}
