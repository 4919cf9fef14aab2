package layout

import "errors"

// Sentinel errors for the layout package.
var (
	// ErrInvalidInput indicates a line's declared chains cannot fit the
	// line's length even with optimal packing. Detected at construction.
	ErrInvalidInput = errors.New("layout: chains do not fit line")

	// ErrInfeasible indicates a runtime propagation failure: a range
	// collapsed past its chain's length, R3 found no compatible window,
	// or a forced write conflicted with an already-determined cell. The
	// branch that produced it must be discarded.
	ErrInfeasible = errors.New("layout: line is infeasible")
)
