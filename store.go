package flip

// entry is the pair kept per id. Nil means nothing recorded.
type entry struct {
	current  *Snapshot
	previous *Snapshot
}

// Store is the keyed geometry store shared by every region and frame under
// one Scope. Every write to the current snapshot shifts the old current into
// previous in the same update.
//
// Store is used only from the App loop and does no locking.
type Store struct {
	probe    Probe
	entries  map[string]*entry
	version  uint64
	onReject func(id string)
}

// NewStore creates an empty store capturing through probe. A nil probe
// means LayoutProbe.
func NewStore(probe Probe) *Store {
	if probe == nil {
		probe = LayoutProbe{}
	}
	return &Store{
		probe:   probe,
		entries: make(map[string]*entry),
	}
}

// Get returns the current snapshot for id.
func (s *Store) Get(id string) (Snapshot, bool) {
	if e, ok := s.entries[id]; ok && e.current != nil {
		return *e.current, true
	}
	return Snapshot{}, false
}

// Previous returns the snapshot that was current before the last write.
func (s *Store) Previous(id string) (Snapshot, bool) {
	if e, ok := s.entries[id]; ok && e.previous != nil {
		return *e.previous, true
	}
	return Snapshot{}, false
}

// Set overwrites the current snapshot for id unconditionally, shifting the
// old current into previous.
func (s *Store) Set(id string, snap Snapshot) {
	e, ok := s.entries[id]
	if !ok {
		e = &entry{}
		s.entries[id] = e
	}
	e.previous = e.current
	e.current = &snap
	s.version++
}

// Record captures el and stores it under id. A zero-size capture is
// dropped so a detached or not-yet-laid-out element cannot clobber the
// baseline; Record then returns false.
func (s *Store) Record(id string, el *Element) bool {
	snap := s.probe.Capture(el)
	if snap.Rect.IsZero() {
		if s.onReject != nil {
			s.onReject(id)
		}
		return false
	}
	s.Set(id, snap)
	return true
}

// Capture reads el through the store's probe without storing anything.
func (s *Store) Capture(el *Element) Snapshot {
	return s.probe.Capture(el)
}

// CaptureResting reads el at rest when the probe supports it, and through
// Capture otherwise.
func (s *Store) CaptureResting(el *Element) Snapshot {
	if rp, ok := s.probe.(RestingProbe); ok {
		return rp.CaptureResting(el)
	}
	return s.probe.Capture(el)
}

// Version increments on every write. Frames use it to invalidate caches.
func (s *Store) Version() uint64 {
	return s.version
}

// Len returns the number of ids with an entry.
func (s *Store) Len() int {
	return len(s.entries)
}
