package layout

// flexItem holds intermediate calculation state for a child.
// Sizes are outer sizes: content plus margin.
type flexItem struct {
	node      Layoutable
	style     Style
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
	stretch   bool // cross size is auto
}

// layoutChildren arranges the children of a node within the given content rect.
func layoutChildren(node Layoutable, style Style, contentRect Rect) {
	children := node.LayoutChildren()
	isRow := style.Direction == Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes (auto falls back to intrinsic size)
	items := make([]flexItem, len(children))
	for i, child := range children {
		cs := child.LayoutStyle()
		iw, ih := child.IntrinsicSize()

		mainVal, crossVal := cs.Width, cs.Height
		mainIntrinsic, crossIntrinsic := iw, ih
		mainMargin, crossMargin := cs.Margin.Horizontal(), cs.Margin.Vertical()
		if !isRow {
			mainVal, crossVal = crossVal, mainVal
			mainIntrinsic, crossIntrinsic = crossIntrinsic, mainIntrinsic
			mainMargin, crossMargin = crossMargin, mainMargin
		}

		items[i] = flexItem{
			node:      child,
			style:     cs,
			mainSize:  mainVal.Resolve(mainSize, mainIntrinsic) + mainMargin,
			crossSize: crossVal.Resolve(crossSize, crossIntrinsic) + crossMargin,
			stretch:   crossVal.IsAuto(),
		}
	}

	// Phase 2: lines, main axis distribution, cross axis alignment
	crossPos := 0
	for _, line := range breakLines(items, style, mainSize) {
		distributeLine(items, line, style, mainSize)

		lineCross := crossSize
		if style.Wrap {
			lineCross = 0
			for _, idx := range line {
				lineCross = max(lineCross, items[idx].crossSize)
			}
		}

		for _, idx := range line {
			item := &items[idx]
			if style.AlignItems == AlignStretch && item.stretch {
				item.crossSize = lineCross
				item.crossPos = crossPos
				continue
			}
			item.crossPos = crossPos + alignOffset(style.AlignItems, lineCross, item.crossSize)
		}
		crossPos += lineCross + style.Gap
	}

	// Phase 3: convert to rects and recurse
	for i := range items {
		item := &items[i]
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + item.mainPos,
				Y:      contentRect.Y + item.crossPos,
				Width:  item.mainSize,
				Height: item.crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + item.crossPos,
				Y:      contentRect.Y + item.mainPos,
				Width:  item.crossSize,
				Height: item.mainSize,
			}
		}
		calculateNode(item.node, slot.Inset(item.style.Margin))
	}
}

// breakLines groups item indices into lines. Without wrapping every item
// lands on a single line.
func breakLines(items []flexItem, style Style, mainSize int) [][]int {
	if len(items) == 0 {
		return nil
	}
	if !style.Wrap {
		line := make([]int, len(items))
		for i := range items {
			line[i] = i
		}
		return [][]int{line}
	}

	var lines [][]int
	var line []int
	used := 0
	for i, item := range items {
		next := used + item.mainSize
		if len(line) > 0 {
			next += style.Gap
		}
		if len(line) > 0 && next > mainSize {
			lines = append(lines, line)
			line = nil
			next = item.mainSize
		}
		line = append(line, i)
		used = next
	}
	return append(lines, line)
}

// distributeLine grows or shrinks the items of one line and positions them
// along the main axis.
func distributeLine(items []flexItem, line []int, style Style, mainSize int) {
	used := style.Gap * max(0, len(line)-1)
	totalGrow, totalShrink := 0.0, 0.0
	for _, idx := range line {
		used += items[idx].mainSize
		totalGrow += items[idx].style.FlexGrow
		totalShrink += items[idx].style.FlexShrink
	}
	free := mainSize - used

	switch {
	case free > 0 && totalGrow > 0:
		for _, idx := range line {
			if g := items[idx].style.FlexGrow; g > 0 {
				items[idx].mainSize += int(float64(free) * g / totalGrow)
			}
		}
		free = 0
	case free < 0 && totalShrink > 0 && !style.Wrap:
		deficit := -free
		for _, idx := range line {
			if s := items[idx].style.FlexShrink; s > 0 {
				reduction := int(float64(deficit) * s / totalShrink)
				items[idx].mainSize = max(0, items[idx].mainSize-reduction)
			}
		}
		free = 0
	}

	offset, spacing := justify(style.JustifyContent, max(0, free), len(line))
	for _, idx := range line {
		items[idx].mainPos = offset
		offset += items[idx].mainSize + style.Gap + spacing
	}
}

// justify returns the initial offset and the extra spacing between children.
func justify(mode Justify, freeSpace, itemCount int) (offset, spacing int) {
	if freeSpace <= 0 || itemCount == 0 {
		return 0, 0
	}
	switch mode {
	case JustifyEnd:
		return freeSpace, 0
	case JustifyCenter:
		return freeSpace / 2, 0
	case JustifySpaceBetween:
		if itemCount > 1 {
			return 0, freeSpace / (itemCount - 1)
		}
	}
	return 0, 0
}

// alignOffset returns the offset for positioning a child on the cross axis.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default:
		return 0
	}
}
