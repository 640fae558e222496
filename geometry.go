package flip

// Rect is a rectangle in fractional terminal cells. Animation math works in
// floats; layout produces whole cells.
type Rect struct {
	Left, Top, Width, Height float64
}

// RectFromCells converts a layout rect to a Rect.
func RectFromCells(r CellRect) Rect {
	return Rect{
		Left:   float64(r.X),
		Top:    float64(r.Y),
		Width:  float64(r.Width),
		Height: float64(r.Height),
	}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// IsZero reports the invalid marker: no width and no height, which is what
// an element reports while unattached or not yet laid out.
func (r Rect) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Snapshot is a point-in-time visual record of an element.
type Snapshot struct {
	Rect    Rect
	Color   Color
	Opacity float64
}

// Valid reports whether the snapshot may be stored as a baseline.
func (s Snapshot) Valid() bool {
	return !s.Rect.IsZero()
}

// Probe captures an element's geometry and style synchronously.
type Probe interface {
	Capture(el *Element) Snapshot
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func(el *Element) Snapshot

// Capture calls f(el).
func (f ProbeFunc) Capture(el *Element) Snapshot {
	return f(el)
}

// RestingProbe is implemented by probes that can also measure an element
// as it will sit once every animation on it and its ancestors has ended.
// Regions take their after-capture this way; probes without it are read
// through Capture for both.
type RestingProbe interface {
	Probe
	CaptureResting(el *Element) Snapshot
}

// LayoutProbe reads what is on screen: the screen rect (layout plus the
// in-flight transforms of the element and its ancestors), the visual
// background and the visual opacity. Unattached elements report a zero
// snapshot.
type LayoutProbe struct{}

// Capture implements Probe.
func (LayoutProbe) Capture(el *Element) Snapshot {
	if el == nil || !el.IsAttached() {
		return Snapshot{}
	}
	return Snapshot{
		Rect:    el.ScreenRect(),
		Color:   el.VisualBackground(),
		Opacity: el.VisualOpacity(),
	}
}

// CaptureResting implements RestingProbe: the layout rect with the resting
// background and opacity.
func (LayoutProbe) CaptureResting(el *Element) Snapshot {
	if el == nil || !el.IsAttached() {
		return Snapshot{}
	}
	return Snapshot{
		Rect:    RectFromCells(el.Rect()),
		Color:   el.Background(),
		Opacity: el.Opacity(),
	}
}
