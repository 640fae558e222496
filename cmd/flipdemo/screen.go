package main

import (
	"io"
	"math"

	flip "github.com/grindlemire/go-flip"
	"github.com/grindlemire/go-flip/internal/term"
)

// screen paints the element tree into a cell buffer after every layout
// commit and writes only the cells that changed.
type screen struct {
	out io.Writer
	buf *term.Buffer
}

func newScreen(out io.Writer, width, height int) *screen {
	return &screen{out: out, buf: term.NewBuffer(width, height)}
}

func (s *screen) resize(width, height int) {
	s.buf.Resize(width, height)
}

// draw is the App's commit hook.
func (s *screen) draw(app *flip.App) {
	s.buf.Clear()
	if root := app.Root(); root != nil {
		s.paint(root, 0, 0, flip.DefaultColor())
	}
	changes := s.buf.Diff()
	if len(changes) == 0 {
		return
	}
	s.out.Write(term.Render(changes))
	s.buf.Swap()
}

// paint draws el and its subtree. offX and offY carry the translation of
// animating ancestors; under is the color el is drawn over.
func (s *screen) paint(el *flip.Element, offX, offY float64, under flip.Color) {
	r := el.VisualRect().Translate(offX, offY)
	x, y := round(r.Left), round(r.Top)

	bg := under
	if c := el.VisualBackground(); !c.IsDefault() {
		base := under
		if base.IsDefault() {
			base = flip.RGBColor(0, 0, 0)
		}
		bg = base.Lerp(c, el.VisualOpacity())
		s.buf.Fill(x, y, round(r.Width), round(r.Height), toTerm(bg))
	}

	if text := el.Text(); text != "" {
		border, content := el.Rect(), el.ContentRect()
		s.buf.SetString(x+content.X-border.X, y+content.Y-border.Y, text, toTerm(el.TextColor()), toTerm(bg))
	}

	if t := el.Transform(); t != nil {
		offX += t.TranslateX
		offY += t.TranslateY
	}
	for _, child := range el.Children() {
		s.paint(child, offX, offY, bg)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func toTerm(c flip.Color) term.Color {
	if c.IsDefault() {
		return term.Color{}
	}
	r, g, b := c.ToRGBValues()
	return term.RGB(r, g, b)
}
