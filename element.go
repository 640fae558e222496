package flip

import "golang.org/x/text/width"

// Element is a layout container with visual properties.
// It implements Layoutable and owns its children directly.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element
	app      *App // set while attached to an App's root

	// Layout properties
	style  LayoutStyle
	layout LayoutResult
	dirty  bool

	// Visual properties
	background Color
	opacity    float64
	text       string
	textColor  Color

	// Visual overrides written by a running animation; nil when idle.
	transform    *Transform
	animBG       *Color
	animOpacity  *float64
	animationRef *Animation
}

// Compile-time check that Element implements Layoutable
var _ Layoutable = (*Element)(nil)

// New creates a new Element with the given options.
// By default, an Element has Auto width/height and full opacity.
func New(opts ...Option) *Element {
	e := &Element{
		style:   DefaultLayoutStyle(),
		dirty:   true,
		opacity: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText updates the text content and marks dirty.
func (e *Element) SetText(text string) {
	e.text = text
	e.MarkDirty()
}

// TextColor returns the foreground color used for text.
func (e *Element) TextColor() Color {
	return e.textColor
}

// Background returns the resting background color.
func (e *Element) Background() Color {
	return e.background
}

// SetBackground sets the resting background color.
func (e *Element) SetBackground(c Color) {
	e.background = c
	e.markAppDirty()
}

// Opacity returns the resting opacity in [0, 1].
func (e *Element) Opacity() float64 {
	return e.opacity
}

// SetOpacity sets the resting opacity, clamped to [0, 1].
func (e *Element) SetOpacity(o float64) {
	e.opacity = clamp01(o)
	e.markAppDirty()
}

// IsAttached reports whether the element is part of an App's root tree.
func (e *Element) IsAttached() bool {
	return e.app != nil
}

// Walk calls fn for e and every descendant, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// stringWidth returns the display width of a string in terminal cells.
func stringWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
