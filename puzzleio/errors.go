package puzzleio

import "errors"

var (
	// ErrInvalidDocument indicates malformed or structurally
	// inconsistent JSON (wrong cell shape, ragged rows, unknown cell
	// string).
	ErrInvalidDocument = errors.New("puzzleio: invalid document")

	// ErrUndeterminedCell indicates an attempt to encode a grid that
	// still has an Empty cell; only complete grids are serializable.
	ErrUndeterminedCell = errors.New("puzzleio: cannot encode an undetermined cell")
)
