package layout

// testNode is a minimal Layoutable used by the layout tests.
type testNode struct {
	style    Style
	children []*testNode
	layout   Layout
	dirty    bool
	iw, ih   int
}

func newTestNode(style Style, children ...*testNode) *testNode {
	return &testNode{style: style, children: children, dirty: true}
}

func sized(w, h int) *testNode {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return newTestNode(s)
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) { n.layout = l }
func (n *testNode) GetLayout() Layout { return n.layout }
func (n *testNode) IsDirty() bool { return n.dirty }
func (n *testNode) SetDirty(d bool) { n.dirty = d }
func (n *testNode) IntrinsicSize() (int, int) { return n.iw, n.ih }
