package flip

import "slices"

// adopt takes child from any previous parent without marking either dirty.
func (e *Element) adopt(child *Element) {
	if child.parent != nil && child.parent != e {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	child.attach(e.app)
}

func orphan(child *Element) {
	child.parent = nil
	child.attach(nil)
}

// attach points a subtree at app. A nil app detaches it.
func (e *Element) attach(app *App) {
	e.app = app
	for _, c := range e.children {
		c.attach(app)
	}
}

// AddChild appends children, moving each from its previous parent.
func (e *Element) AddChild(children ...*Element) {
	for _, c := range children {
		e.adopt(c)
		e.children = append(e.children, c)
	}
	e.MarkDirty()
}

// RemoveChild detaches child and reports whether it was found. Sibling
// order is preserved.
func (e *Element) RemoveChild(child *Element) bool {
	i := slices.Index(e.children, child)
	if i < 0 {
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	orphan(child)
	e.MarkDirty()
	return true
}

func (e *Element) RemoveAllChildren() {
	for _, c := range e.children {
		orphan(c)
	}
	e.children = nil
	e.MarkDirty()
}

// SetChildren replaces the child sequence. Elements present before and after
// stay attached, so their visual state and layout survive a reorder.
func (e *Element) SetChildren(children ...*Element) {
	for _, old := range e.children {
		if !slices.Contains(children, old) {
			orphan(old)
		}
	}
	e.children = e.children[:0:0]
	for _, c := range children {
		e.adopt(c)
		e.children = append(e.children, c)
	}
	e.MarkDirty()
}

func (e *Element) Children() []*Element { return e.children }

// Parent is nil for the root and for detached elements.
func (e *Element) Parent() *Element { return e.parent }
