package layout

// Rect is a box in whole terminal cells with its origin at the top-left.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Inset shrinks r by e on every side. The result may have a negative size
// when e is larger than r; callers clamp.
func (r Rect) Inset(e Edges) Rect {
	r.X += e.Left
	r.Y += e.Top
	r.Width -= e.Horizontal()
	r.Height -= e.Vertical()
	return r
}

// Edges is padding or margin, in cells, in CSS order.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll puts n cells on every side.
func EdgeAll(n int) Edges { return Edges{n, n, n, n} }

// EdgeSymmetric puts v cells above and below and h cells left and right.
func EdgeSymmetric(v, h int) Edges { return Edges{v, h, v, h} }

func (e Edges) Horizontal() int { return e.Left + e.Right }

func (e Edges) Vertical() int { return e.Top + e.Bottom }
