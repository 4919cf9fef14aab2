package solver

import (
	"errors"
	"strconv"
)

// Sentinel errors for the solver package.
var (
	// ErrInvalidInput indicates a row or column declared a chain with
	// length < 1: malformed puzzle data, not merely an unsolvable
	// puzzle. A chain that is individually well-formed but cannot fit
	// its line is not this error — it surfaces as Result{Solved:false}.
	ErrInvalidInput = errors.New("solver: invalid puzzle input")

	// ErrPreconditionViolated indicates the brancher picked a cell that
	// propagation should already have determined, which is a solver bug
	// rather than a puzzle-data error. It is returned rather than
	// panicked so a violation surfaces as an ordinary test failure
	// instead of crashing the process.
	ErrPreconditionViolated = errors.New("solver: branch cell precondition violated")
)

// ConflictError wraps a layout.ErrInfeasible with the line that
// produced it, so callers and tests can inspect failure context without
// string matching.
type ConflictError struct {
	Axis  string // "row" or "col"
	Index int
	Err   error
}

func (e *ConflictError) Error() string {
	return e.Axis + " " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error { return e.Err }
