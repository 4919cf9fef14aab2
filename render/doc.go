// Package render draws a solved grid.Grid to a terminal, in ASCII or
// Unicode box-drawing glyphs, with an optional ANSI-colored variant
// that cycles interned grid.Color values through a small fixed
// palette via github.com/fatih/color.
package render
