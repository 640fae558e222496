package flip

// Frame is the coordinate frame of one tracked region. It composes the
// region's own snapshot with its nearest tracked ancestor's frame so a
// nested region can subtract how far its ancestor moved.
//
// Results are cached against the store version: repeated reads between two
// store writes cost O(1) after the first.
type Frame struct {
	id     string
	parent *Frame // nearest tracked ancestor; not owned
	store  *Store

	cachedAt uint64
	cached   bool
	abs      *Snapshot
	prevAbs  *Snapshot
	detached bool
}

func newFrame(id string, parent *Frame, store *Store) *Frame {
	return &Frame{id: id, parent: parent, store: store}
}

// ID returns the region id this frame belongs to.
func (f *Frame) ID() string {
	return f.id
}

// Parent returns the nearest ancestor frame, or nil at the root.
func (f *Frame) Parent() *Frame {
	return f.parent
}

// Absolute returns the current snapshot translated by every ancestor's
// current absolute position. ok is false when nothing is recorded.
func (f *Frame) Absolute() (Snapshot, bool) {
	f.refresh()
	if f.abs == nil {
		return Snapshot{}, false
	}
	return *f.abs, true
}

// PreviousAbsolute is Absolute over previous snapshots.
func (f *Frame) PreviousAbsolute() (Snapshot, bool) {
	f.refresh()
	if f.prevAbs == nil {
		return Snapshot{}, false
	}
	return *f.prevAbs, true
}

// Detach drops the frame from the tree when its region is disposed.
func (f *Frame) Detach() {
	f.detached = true
	f.parent = nil
	f.cached = false
}

func (f *Frame) refresh() {
	if f.detached {
		f.abs, f.prevAbs = nil, nil
		return
	}
	v := f.store.Version()
	if f.cached && f.cachedAt == v {
		return
	}

	var parentAbs, parentPrev *Snapshot
	if f.parent != nil {
		if s, ok := f.parent.Absolute(); ok {
			parentAbs = &s
		}
		if s, ok := f.parent.PreviousAbsolute(); ok {
			parentPrev = &s
		}
	}

	f.abs = compose(f.store.Get, f.id, parentAbs)
	f.prevAbs = compose(f.store.Previous, f.id, parentPrev)
	f.cachedAt = v
	f.cached = true
}

func compose(read func(string) (Snapshot, bool), id string, parent *Snapshot) *Snapshot {
	s, ok := read(id)
	if !ok {
		return nil
	}
	if parent != nil {
		s.Rect = s.Rect.Translate(parent.Rect.Left, parent.Rect.Top)
	}
	return &s
}
