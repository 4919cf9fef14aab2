// Package layout implements the per-line chain-range propagation
// engine: the algorithmic core of the solver, constituting most of
// this module's line-of-business logic.
//
// A LineLayout holds one line's ordered Chains and their current
// ChainRanges. Update runs two symmetric feasibility passes against a
// grid.LineView — update-starts (left-to-right) and update-stops
// (right-to-left, implemented by mirroring update-starts over a
// reversed view, see stops.go) — then derives and writes any cells
// that follow from the tightened ranges.
//
// Each pass applies three per-chain rules, in order, to raise (or for
// stops, lower) the chain's bound:
//
//	R1 - pull toward the nearest forced same-color box in the
//	     reachable zone between this chain and its neighbor.
//	R2 - step past an adjacent same-color box (two same-color chains
//	     never touch).
//	R3 - advance to the first window of Length compatible cells.
//
// Chains are processed in reverse order (update-starts: right to left)
// so that a chain whose bound must move to satisfy monotonicity with
// its already-processed neighbor can push that neighbor's bound
// further and recurse: reverse-scan with backtracking.
//
// Errors:
//
//	ErrInvalidInput - chains do not fit the line even optimally
//	                  (construction time).
//	ErrInfeasible   - a range violation, an R3 window search failure,
//	                  or a forced write conflict (update time); the
//	                  caller discards this branch.
package layout
