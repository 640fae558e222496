package flip

// Element satisfies layout.Layoutable; these methods are the flex pass's
// view of the tree.

func (e *Element) LayoutStyle() LayoutStyle { return e.style }

func (e *Element) LayoutChildren() []Layoutable {
	nodes := make([]Layoutable, len(e.children))
	for i, c := range e.children {
		nodes[i] = c
	}
	return nodes
}

func (e *Element) SetLayout(l LayoutResult) { e.layout = l }

func (e *Element) GetLayout() LayoutResult { return e.layout }

func (e *Element) IsDirty() bool { return e.dirty }

func (e *Element) SetDirty(dirty bool) { e.dirty = dirty }

// IntrinsicSize is the element's natural border-box size: one line of text,
// or its children packed along the main axis with gaps and margins.
func (e *Element) IntrinsicSize() (width, height int) {
	pad := e.style.Padding
	if e.text != "" {
		return stringWidth(e.text) + pad.Horizontal(), 1 + pad.Vertical()
	}
	if len(e.children) == 0 {
		return 0, 0
	}

	column := e.style.Direction == Column
	var main, cross int
	for i, c := range e.children {
		cw, ch := c.IntrinsicSize()
		cw = c.style.Width.Resolve(0, cw) + c.style.Margin.Horizontal()
		ch = c.style.Height.Resolve(0, ch) + c.style.Margin.Vertical()
		if column {
			cw, ch = ch, cw
		}
		if i > 0 {
			main += e.style.Gap
		}
		main += cw
		cross = max(cross, ch)
	}
	if column {
		main, cross = cross, main
	}
	return main + pad.Horizontal(), cross + pad.Vertical()
}

// Style returns the layout style set by options or SetStyle.
func (e *Element) Style() LayoutStyle { return e.style }

// SetStyle replaces the layout style and schedules a relayout.
func (e *Element) SetStyle(style LayoutStyle) {
	e.style = style
	e.MarkDirty()
}

// Rect is the border box from the last commit, in cells. It ignores any
// running animation; see VisualRect.
func (e *Element) Rect() CellRect { return e.layout.Rect }

// ContentRect is Rect minus padding.
func (e *Element) ContentRect() CellRect { return e.layout.ContentRect }

// MarkDirty flags e and its ancestors for relayout and wakes the app.
func (e *Element) MarkDirty() {
	for n := e; n != nil; n = n.parent {
		n.dirty = true
	}
	e.markAppDirty()
}

func (e *Element) markAppDirty() {
	if e.app != nil {
		e.app.MarkDirty()
	}
}
