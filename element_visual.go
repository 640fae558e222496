package flip

// VisualRect returns the element's on-screen rectangle: the layout rect with
// any in-flight animation transform applied about its center.
func (e *Element) VisualRect() Rect {
	r := RectFromCells(e.layout.Rect)
	if e.transform == nil {
		return r
	}
	return e.transform.Apply(r)
}

// ScreenRect is where the element is painted: VisualRect moved by the
// translation of every animating ancestor.
func (e *Element) ScreenRect() Rect {
	dx, dy := e.inheritedOffset()
	return e.VisualRect().Translate(dx, dy)
}

func (e *Element) inheritedOffset() (dx, dy float64) {
	for p := e.parent; p != nil; p = p.parent {
		if t := p.transform; t != nil {
			dx += t.TranslateX
			dy += t.TranslateY
		}
	}
	return dx, dy
}

// VisualBackground returns the background color currently on screen.
func (e *Element) VisualBackground() Color {
	if e.animBG != nil {
		return *e.animBG
	}
	return e.background
}

// VisualOpacity returns the opacity currently on screen.
func (e *Element) VisualOpacity() float64 {
	if e.animOpacity != nil {
		return *e.animOpacity
	}
	return e.opacity
}

// Transform returns the in-flight animation transform, or nil at rest.
func (e *Element) Transform() *Transform {
	return e.transform
}

// setVisual installs animation overrides. Nil fields clear the override.
func (e *Element) setVisual(t *Transform, bg *Color, opacity *float64) {
	e.transform = t
	e.animBG = bg
	e.animOpacity = opacity
	e.markAppDirty()
}

func (e *Element) clearVisual() {
	e.setVisual(nil, nil, nil)
}
