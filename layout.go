package flip

import "github.com/grindlemire/go-flip/internal/layout"

// Layout vocabulary, shared with internal/layout so element options and the
// flex pass agree on one set of types.
type (
	Direction    = layout.Direction
	Justify      = layout.Justify
	Align        = layout.Align
	Value        = layout.Value
	Edges        = layout.Edges
	LayoutStyle  = layout.Style
	LayoutResult = layout.Layout
	Layoutable   = layout.Layoutable

	// CellRect is a layout rectangle in whole cells. Geometry captures convert
	// it to a Rect.
	CellRect = layout.Rect
)

const (
	Row    = layout.Row
	Column = layout.Column

	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween

	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Fixed is a size of n cells.
func Fixed(n int) Value { return layout.Fixed(n) }

// Percent is a size of p percent of the parent's content box.
func Percent(p float64) Value { return layout.Percent(p) }

// Auto sizes to content, or to the flex pass when stretched.
func Auto() Value { return layout.Auto() }

// EdgeAll is n cells on every side.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeSymmetric is v cells on top and bottom and h cells on the sides.
func EdgeSymmetric(v, h int) Edges { return layout.EdgeSymmetric(v, h) }

// DefaultLayoutStyle is the style every new element starts with.
func DefaultLayoutStyle() LayoutStyle { return layout.DefaultStyle() }
