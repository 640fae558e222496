package term

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Bytes returns what has been built.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// BeginSyncUpdate asks the terminal to buffer output until EndSyncUpdate.
// Terminals without support ignore it.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

// EndSyncUpdate shows everything written since BeginSyncUpdate.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

// ResetStyle resets all attributes to the terminal defaults.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetColors resets attributes and selects fg and bg.
func (e *escBuilder) SetColors(fg, bg Color) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	e.appendColor(fg, 38)
	e.appendColor(bg, 48)
	e.buf = append(e.buf, 'm')
}

// appendColor writes ;base;2;r;g;b for a set color and nothing otherwise.
func (e *escBuilder) appendColor(c Color, base int) {
	if !c.Set {
		return
	}
	e.buf = append(e.buf, ';')
	e.writeInt(base)
	e.buf = append(e.buf, ';', '2', ';')
	e.writeInt(int(c.R))
	e.buf = append(e.buf, ';')
	e.writeInt(int(c.G))
	e.buf = append(e.buf, ';')
	e.writeInt(int(c.B))
}

// WriteRune appends r UTF-8 encoded.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// Render encodes changes as one synchronized update. The cursor is only
// moved when a change does not follow the previous one, and colors are only
// emitted when they differ from the last cell written.
func Render(changes []Change) []byte {
	e := newEscBuilder(len(changes)*8 + 32)
	e.BeginSyncUpdate()

	cx, cy := -1, -1
	var fg, bg Color
	styled := false
	for _, ch := range changes {
		c := ch.Cell
		if c.IsContinuation() {
			continue
		}
		if ch.X != cx || ch.Y != cy {
			e.MoveTo(ch.X, ch.Y)
		}
		if !styled || c.FG != fg || c.BG != bg {
			e.SetColors(c.FG, c.BG)
			fg, bg, styled = c.FG, c.BG, true
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		e.WriteRune(r)
		cx, cy = ch.X+int(max(c.Width, 1)), ch.Y
	}

	e.ResetStyle()
	e.EndSyncUpdate()
	return e.Bytes()
}

// Enter returns the sequence that takes over the screen: alternate screen,
// hidden cursor, cleared display.
func Enter() []byte {
	e := newEscBuilder(32)
	e.EnterAltScreen()
	e.HideCursor()
	e.ClearScreen()
	return e.Bytes()
}

// Leave undoes Enter.
func Leave() []byte {
	e := newEscBuilder(32)
	e.ResetStyle()
	e.ShowCursor()
	e.ExitAltScreen()
	return e.Bytes()
}
