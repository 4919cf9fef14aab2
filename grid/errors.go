package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfRange indicates an index fell outside a line or grid's bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrConflict indicates a write would overwrite an already-determined
	// cell with a different value.
	ErrConflict = errors.New("grid: conflicting write to determined cell")

	// ErrInvalidChain indicates a Chain was declared with length <= 0.
	ErrInvalidChain = errors.New("grid: chain length must be >= 1")
)
