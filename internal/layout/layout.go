package layout

// Layoutable is one box in a tree handed to Calculate. Implementations store the
// computed Layout and a dirty flag; Calculate skips clean nodes whose slot
// did not move.
type Layoutable interface {
	LayoutStyle() Style
	LayoutChildren() []Layoutable

	SetLayout(Layout)
	GetLayout() Layout

	IsDirty() bool
	SetDirty(dirty bool)

	// IntrinsicSize is the content size used for auto dimensions.
	IntrinsicSize() (width, height int)
}

// Layout is the result of a Calculate pass for one node.
type Layout struct {
	// Rect is the border box, placed by the parent with margins applied.
	Rect Rect
	// ContentRect is Rect minus padding. Children are placed inside it.
	ContentRect Rect
	// Slot is the space the parent offered on the last pass.
	Slot Rect
}
