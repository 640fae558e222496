package flip

// Option configures an Element at construction.
type Option func(*Element)

func styled(set func(*LayoutStyle)) Option {
	return func(e *Element) { set(&e.style) }
}

// WithWidth fixes the border-box width in cells.
func WithWidth(cells int) Option { return styled(func(s *LayoutStyle) { s.Width = Fixed(cells) }) }

// WithHeight fixes the border-box height in cells.
func WithHeight(cells int) Option { return styled(func(s *LayoutStyle) { s.Height = Fixed(cells) }) }

// WithWidthPercent sizes the element against its parent's content width.
func WithWidthPercent(p float64) Option {
	return styled(func(s *LayoutStyle) { s.Width = Percent(p) })
}

// WithSize fixes both dimensions. Regions use it to give a card a stable
// footprint so reorders animate position alone.
func WithSize(width, height int) Option {
	return styled(func(s *LayoutStyle) {
		s.Width, s.Height = Fixed(width), Fixed(height)
	})
}

func WithDirection(d Direction) Option { return styled(func(s *LayoutStyle) { s.Direction = d }) }

func WithJustify(j Justify) Option { return styled(func(s *LayoutStyle) { s.JustifyContent = j }) }

func WithAlign(a Align) Option { return styled(func(s *LayoutStyle) { s.AlignItems = a }) }

// WithGap spaces siblings apart, and wrapped lines when combined with WithWrap.
func WithGap(cells int) Option { return styled(func(s *LayoutStyle) { s.Gap = cells }) }

// WithWrap starts a new line when children overflow the main axis.
func WithWrap() Option { return styled(func(s *LayoutStyle) { s.Wrap = true }) }

func WithFlexGrow(factor float64) Option {
	return styled(func(s *LayoutStyle) { s.FlexGrow = factor })
}

func WithPadding(cells int) Option {
	return styled(func(s *LayoutStyle) { s.Padding = EdgeAll(cells) })
}

func WithPaddingEdges(e Edges) Option { return styled(func(s *LayoutStyle) { s.Padding = e }) }

func WithMargin(cells int) Option { return styled(func(s *LayoutStyle) { s.Margin = EdgeAll(cells) }) }

// WithBackground sets the resting background. Animations override it
// through the element's visual state, never by changing this value.
func WithBackground(c Color) Option { return func(e *Element) { e.background = c } }

// WithOpacity sets the resting opacity, clamped to [0, 1].
func WithOpacity(o float64) Option { return func(e *Element) { e.opacity = clamp01(o) } }

func WithText(text string) Option { return func(e *Element) { e.text = text } }

func WithTextColor(c Color) Option { return func(e *Element) { e.textColor = c } }
