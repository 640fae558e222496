package term

import "golang.org/x/text/width"

// Color is a 24-bit terminal color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Cell is one character cell. Wide runes occupy two cells: the first holds
// the rune with Width 2, the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
	FG    Color
	BG    Color
}

// NewCell creates a cell with its display width detected.
func NewCell(r rune, fg, bg Color) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r)), FG: fg, BG: bg}
}

// blank is an empty cell in the default colors.
var blank = Cell{Rune: ' ', Width: 1}

// IsContinuation reports whether c is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns 2 for East Asian wide and fullwidth runes, 1 otherwise.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
