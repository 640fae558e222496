package layout

// Direction is the main axis of a container.
type Direction uint8

const (
	Row Direction = iota
	Column
)

// Justify places a line's items along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween // first and last items touch the edges
)

// Align places items on the cross axis within their line.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch // only applies to items with an auto cross size
)

// Style is everything the flex pass reads from a node.
type Style struct {
	Width, Height Value

	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	// Gap separates siblings on the main axis and wrapped lines on the cross axis.
	Gap  int
	Wrap bool

	FlexGrow, FlexShrink float64

	Padding, Margin Edges
}

// DefaultStyle is an auto-sized row that stretches its items and lets them
// shrink evenly.
func DefaultStyle() Style {
	return Style{AlignItems: AlignStretch, FlexShrink: 1}
}
