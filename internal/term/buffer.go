package term

import "strings"

// Buffer is a double-buffered grid of cells.
// Writes go to the back grid; Diff compares it against the front grid and
// Swap makes the back grid the one considered on screen.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

// Change is one cell that differs between the grids.
type Change struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a width x height buffer filled with blanks.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Resize reallocates both grids. The front grid is left empty so the next
// Diff repaints everything.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	b.width, b.height = width, height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	for i := range b.back {
		b.back[i] = blank
	}
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back-grid cell at (x, y), or a zero Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if i := b.idx(x, y); i >= 0 {
		return b.back[i]
	}
	return Cell{}
}

// SetCell writes c at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.back[i] = c
	}
}

// SetRune writes r at (x, y), keeping wide runes and their continuation
// cells consistent. A wide rune that would not fit is drawn as a blank.
func (b *Buffer) SetRune(x, y int, r rune, fg, bg Color) {
	if b.idx(x, y) < 0 {
		return
	}
	b.breakWide(x, y)

	w := RuneWidth(r)
	if w == 2 && x+1 >= b.width {
		b.SetCell(x, y, Cell{Rune: ' ', Width: 1, FG: fg, BG: bg})
		return
	}
	b.SetCell(x, y, Cell{Rune: r, Width: uint8(w), FG: fg, BG: bg})
	if w == 2 {
		b.breakWide(x+1, y)
		b.SetCell(x+1, y, Cell{Width: 0, FG: fg, BG: bg})
	}
}

// breakWide blanks the other half of a wide rune overlapping (x, y).
func (b *Buffer) breakWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation() && x > 0:
		b.SetCell(x-1, y, Cell{Rune: ' ', Width: 1, BG: b.Cell(x-1, y).BG})
	case c.Width == 2:
		b.SetCell(x+1, y, Cell{Rune: ' ', Width: 1, BG: b.Cell(x+1, y).BG})
	}
}

// SetString writes s starting at (x, y) and returns the columns written.
// Runes left of the buffer are skipped; writing stops at the right edge.
func (b *Buffer) SetString(x, y int, s string, fg, bg Color) int {
	if y < 0 || y >= b.height {
		return 0
	}
	written := 0
	for _, r := range s {
		w := RuneWidth(r)
		if x >= b.width {
			break
		}
		if x >= 0 {
			if w == 2 && x+1 >= b.width {
				break
			}
			b.SetRune(x, y, r, fg, bg)
			written += w
		}
		x += w
	}
	return written
}

// Fill paints the background of the cells in [x, x+w) x [y, y+h), keeping
// their runes.
func (b *Buffer) Fill(x, y, w, h int, bg Color) {
	for row := max(y, 0); row < min(y+h, b.height); row++ {
		for col := max(x, 0); col < min(x+w, b.width); col++ {
			i := row*b.width + col
			c := b.back[i]
			c.BG = bg
			b.back[i] = c
		}
	}
}

// Clear blanks the back grid.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blank
	}
}

// Diff returns the back-grid cells that differ from the front grid.
func (b *Buffer) Diff() []Change {
	var changes []Change
	for i := range b.back {
		if b.back[i] != b.front[i] {
			changes = append(changes, Change{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap records the back grid as shown.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// String returns the back grid's runes, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.back[y*b.width+x]
			switch {
			case c.IsContinuation():
			case c.Rune == 0:
				sb.WriteRune(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
