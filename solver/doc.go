// Package solver drives a grid.Grid and its per-line layout.LineLayout
// set to a solution: a fixed-point propagation loop, followed by
// guess-and-verify recursion wherever propagation alone cannot
// determine the grid.
//
// # Algorithm
//
//	1. Solve constructs one LineLayout per row and per column, all
//	   lines initially dirty.
//	2. The propagation driver drains the dirty column set (running
//	   each dirty column's Update, marking crossing rows dirty on any
//	   newly determined cell), then drains the dirty row set the same
//	   way, alternating until both are empty: a fixed point.
//	3. If the grid is complete, Solve returns it. If not, the brancher
//	   picks the first unresolved chain's Start cell in the first
//	   not-fully-pinned line (rows before columns), forks the grid, and
//	   tries Box on the fork before falling back to Space on the
//	   original.
//
// # Options
//
//	opts := solver.DefaultOptions()
//	// opts.Ctx = context.Background()
//	// opts.Verbose = false
//	// opts.Parallel = false
//	// opts.MaxWorkers = runtime.NumCPU()
//
// # Errors
//
//	ErrInvalidInput - a row or column declares a chain with length < 1:
//	malformed puzzle data, not an unsolvable puzzle.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is
//	canceled; surfaces as Result.Cancelled, never a panic.
//
// A chain that is individually well-formed but cannot fit its line,
// and all other intra-search failures (infeasible branches), are
// recovered internally as an ordinary Result{Solved:false}; they never
// escape Solve as an error.
package solver
