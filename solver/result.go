package solver

import (
	"time"

	"github.com/katalvlaran/nonogram/grid"
)

// Stats reports how much work Solve did, for logging and benchmarking.
type Stats struct {
	// Iterations counts individual line Update calls during propagation.
	Iterations int
	// Branches counts guess points the brancher visited.
	Branches int
	// ForcedByPropagation counts cells determined by line propagation
	// alone, across the whole search.
	ForcedByPropagation int
	// ForcedByBranching counts cells determined by a branch guess
	// (Box or Space) rather than by propagation.
	ForcedByBranching int
	// Duration is total wall-clock time spent inside Solve.
	Duration time.Duration
}

// Result is the outcome of a Solve call.
type Result struct {
	// Grid is the solved grid. Nil if Solved is false and Cancelled is
	// false (the puzzle has no solution).
	Grid *grid.Grid
	// Solved reports whether Grid is a complete, consistent solution.
	Solved bool
	// Cancelled reports whether opts.Ctx was canceled before a solution
	// was found; Grid is nil in that case.
	Cancelled bool
	// Stats is populated regardless of outcome.
	Stats Stats
}
