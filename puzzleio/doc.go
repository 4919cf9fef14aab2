// Package puzzleio is the JSON wire format for puzzle layouts and
// solved grids: the serialization boundary between a puzzle author (or
// the CLI's stdin) and the solver.
//
// A layout document is:
//
//	{"cols": [[chain, ...], ...], "rows": [[chain, ...], ...]}
//
// where each chain is either a bare integer length (the universal,
// uncolored default) or {"color": <n>, "len": <n>} when it carries a
// non-default color.
//
// A grid document is:
//
//	{"rows": [[cell, ...], ...]}
//
// where each cell is either the string "Space" or {"Box": {"color":
// <n>}}. Encoding a grid with any still-Empty cell fails: a document
// only ever describes a complete grid.
package puzzleio
