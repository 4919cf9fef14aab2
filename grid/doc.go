// Package grid defines the nonogram board: an interned Color, a
// tri-state Cell (Empty / Space / Box), a declared Chain, the W×H
// Grid that stores cells, and the LineView abstraction that lets the
// layout engine read and write a row or a column without caring
// which.
//
// What:
//
//   - Color interns an arbitrary comparable label to a small integer
//     via Palette, so the hot same-color check in package layout is a
//     plain integer compare.
//   - Grid owns a flat []Cell slice (row-major) for O(1) indexed
//     access and a cheap Clone for branch forking.
//   - LineView (RowView/ColView) lets package layout address a line by
//     a single index k ∈ [0, L) regardless of orientation.
//
// Errors:
//
//	ErrOutOfRange      - index outside [0, Width) / [0, Height) / [0, L).
//	ErrConflict         - a Set would overwrite an already-determined cell
//	                      with a different value.
//	ErrInvalidChain     - a Chain has non-positive length.
//
// See: SPEC_FULL.md §3 for the full data model.
package grid
