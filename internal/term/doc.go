// Package term draws cell grids to ANSI terminals.
//
// A Buffer is double-buffered: drawing goes to the back grid, Diff reports
// the cells that differ from what was last shown, and Render turns those
// changes into a minimal escape sequence stream.
package term
