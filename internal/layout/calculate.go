package layout

// Calculate lays out the tree under root inside a width x height viewport.
// A root with fixed or percent dimensions is sized against the viewport;
// an auto root fills it.
func Calculate(root Layoutable, width, height int) {
	if root == nil {
		return
	}
	s := root.LayoutStyle()
	calculateNode(root, NewRect(0, 0, s.Width.Resolve(width, width), s.Height.Resolve(height, height)))
}

func calculateNode(node Layoutable, slot Rect) {
	if !node.IsDirty() && node.GetLayout().Slot == slot {
		return
	}

	style := node.LayoutStyle()
	box := slot
	box.Width, box.Height = max(box.Width, 0), max(box.Height, 0)
	content := box.Inset(style.Padding)

	if len(node.LayoutChildren()) > 0 {
		layoutChildren(node, style, content)
	}

	node.SetLayout(Layout{Rect: box, ContentRect: content, Slot: slot})
	node.SetDirty(false)
}
