// File: stops.go
// Role: update-stops — the right-to-left dual of update-starts.
// Implemented by reversing coordinates and chain order and re-running
// reduceStartsPass against the reversed view, rather than
// hand-duplicating the same rules backwards.

package layout

import "github.com/katalvlaran/nonogram/grid"

// reverseView mirrors a LineView's index space: index k reads/writes
// the underlying view at length-1-k.
type reverseView struct {
	view   grid.LineView
	length int
}

func (r reverseView) Len() int { return r.length }

func (r reverseView) Get(k int) grid.Cell { return r.view.Get(r.length - 1 - k) }

func (r reverseView) Set(k int, c grid.Cell) (bool, error) {
	return r.view.Set(r.length-1-k, c)
}

// reduceStopsPass runs update_stops over chains/ranges against view.
//
// It builds a mirrored chain list (reversed order) and mirrored range
// list (each [Start, Stop) reflected through the line's length), runs
// the ordinary start-reduction pass against a reverseView, then maps
// the tightened mirrored starts back onto the original Stops. A chain
// at original index i sits at mirrored index n-1-i; an original
// interval [Start, Stop) in forward coordinates occupies
// [length-Stop, length-Start) in reversed coordinates.
func reduceStopsPass(chains []grid.Chain, ranges []ChainRange, length int, view grid.LineView) error {
	n := len(chains)
	mChains := make([]grid.Chain, n)
	mRanges := make([]ChainRange, n)
	for j := 0; j < n; j++ {
		orig := n - 1 - j
		mChains[j] = chains[orig]
		mRanges[j] = ChainRange{
			Start: length - ranges[orig].Stop,
			Stop:  length - ranges[orig].Start,
		}
	}

	rv := reverseView{view: view, length: length}
	if err := reduceStartsPass(mChains, mRanges, length, rv); err != nil {
		return err
	}

	for j := 0; j < n; j++ {
		orig := n - 1 - j
		ranges[orig].Stop = length - mRanges[j].Start
	}
	return nil
}
