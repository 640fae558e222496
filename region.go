package flip

import (
	"time"

	"github.com/grindlemire/go-flip/internal/debug"
)

// regionState is the lifecycle of a tracked region.
type regionState uint8

const (
	regionUninitialized regionState = iota
	regionTracked
	regionDisposed
)

// FlipOption configures a tracked region.
type FlipOption func(*regionConfig)

type regionConfig struct {
	duration time.Duration
	easing   string
}

// WithDuration sets how long the region's animations run.
func WithDuration(d time.Duration) FlipOption {
	return func(c *regionConfig) {
		c.duration = d
	}
}

// WithEasing sets the region's easing; see ParseEasing for the syntax.
func WithEasing(easing string) FlipOption {
	return func(c *regionConfig) {
		c.easing = easing
	}
}

// Region is the controller of one tracked region: it records geometry under
// its id at mount, around list reconciliations and at disposal, and plays
// the invert animation whenever the id shows up somewhere new.
type Region struct {
	id     string
	scope  *Scope // scope the region was created in
	inner  *Scope // scope handed to render
	frame  *Frame
	nodes  []*Element
	timing Timing
	state  regionState

	// Ticks of the reconciliation that created the region belong to the
	// region's mount, not to a later move.
	skipSeq  uint64
	skipTick bool

	unbinds []Unbind
	last    *Animation
}

// Flip renders a tracked region and returns its nodes for the caller to
// attach. render must yield exactly one element; anything else is logged
// and the region skips every capture and animation.
//
// Example:
//
//	card := scope.Flip("card-"+id, func(s *flip.Scope) []*flip.Element {
//	    return []*flip.Element{flip.New(flip.WithSize(10, 3))}
//	}, flip.WithDuration(200*time.Millisecond))
//	parent.AddChild(card...)
func (s *Scope) Flip(id string, render func(*Scope) []*Element, opts ...FlipOption) []*Element {
	return s.NewRegion(id, render, opts...).Nodes()
}

// NewRegion is Flip returning the Region itself.
func (s *Scope) NewRegion(id string, render func(*Scope) []*Element, opts ...FlipOption) *Region {
	cfg := regionConfig{
		duration: s.app.config.Duration,
		easing:   s.app.config.Easing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	easing, err := ParseEasing(cfg.easing)
	if err != nil {
		s.app.warn("flip: region %q: %v; using linear", id, err)
		easing = Linear
	}

	r := &Region{
		id:     id,
		scope:  s,
		frame:  newFrame(id, s.frame, s.store),
		timing: Timing{Duration: cfg.duration, Easing: easing, EasingName: cfg.easing},
	}

	// Subscribe before rendering so ancestors handle each tick before the
	// regions nested inside them.
	if flow := s.flow; flow != nil {
		if seq, ok := flow.InFlight(); ok {
			r.skipSeq, r.skipTick = seq, true
		}
		r.unbinds = append(r.unbinds, flow.OnBefore(r.onBefore), flow.OnAfter(r.onAfter))
	}

	r.inner = s.derive(r.frame, nil)
	if render != nil {
		r.nodes = render(r.inner)
	}

	s.app.AfterCommit(r.mount)
	s.OnDispose(r.dispose)
	return r
}

// ID returns the region id.
func (r *Region) ID() string {
	return r.id
}

// Nodes returns what render produced.
func (r *Region) Nodes() []*Element {
	return r.nodes
}

// Frame returns the region's coordinate frame.
func (r *Region) Frame() *Frame {
	return r.frame
}

// Scope returns the scope handed to render; regions created in it nest
// under this one.
func (r *Region) Scope() *Scope {
	return r.inner
}

// Tracked reports whether the region has mounted and not been disposed.
func (r *Region) Tracked() bool {
	return r.state == regionTracked
}

// LastAnimation returns the most recently played animation, or nil.
func (r *Region) LastAnimation() *Animation {
	return r.last
}

// node returns the single element the region tracks.
func (r *Region) node() (*Element, bool) {
	if len(r.nodes) != 1 || r.nodes[0] == nil {
		r.scope.app.warn("flip: region %q must render exactly one element, got %d", r.id, len(r.nodes))
		r.scope.app.telemetry.regionMisused(r.id)
		return nil, false
	}
	return r.nodes[0], true
}

// mount runs after the first layout commit that follows construction.
func (r *Region) mount() {
	if r.state != regionUninitialized {
		return
	}
	el, ok := r.node()
	if !ok {
		return
	}
	r.state = regionTracked
	if !el.IsAttached() {
		debug.Log("Region %q: mounted detached, nothing captured", r.id)
		return
	}
	r.flip(el)
}

func (r *Region) onBefore(*Tick) {
	if r.state == regionDisposed {
		return
	}
	if el, ok := r.node(); ok {
		r.scope.store.Record(r.id, el)
	}
}

func (r *Region) onAfter(t *Tick) {
	if r.state == regionDisposed {
		return
	}
	if r.skipTick && t.Seq == r.skipSeq {
		r.skipTick = false
		return
	}
	if el, ok := r.node(); ok {
		r.flip(el)
	}
}

// flip compares the stored baseline with what is on screen now. Without a
// baseline it records one and plays nothing.
func (r *Region) flip(el *Element) {
	store := r.scope.store
	before, ok := store.Get(r.id)
	if !ok || !before.Valid() {
		store.Record(r.id, el)
		return
	}

	// The before side was read where the element was painted. The after
	// side is the resting layout of the whole chain: ancestors that handled
	// this tick are already showing their own start transforms, and the
	// parent correction below accounts for them.
	el.clearVisual()
	after := store.CaptureResting(el)
	if !after.Valid() {
		debug.Log("Region %q: zero-size capture, keeping baseline", r.id)
		r.scope.app.telemetry.captureRejected(r.id)
		return
	}

	// The ancestor already handled this tick, so its frame holds its own
	// before (previous) and after (current) positions.
	var parentBefore, parentAfter *Rect
	if parent := r.frame.Parent(); parent != nil {
		if s, ok := parent.PreviousAbsolute(); ok {
			parentBefore = &s.Rect
		}
		if s, ok := parent.Absolute(); ok {
			parentAfter = &s.Rect
		}
	}

	inv := ComputeInvert(before.Rect, after.Rect, parentBefore, parentAfter)
	store.Set(r.id, after)

	debug.Log("Region %q: %v -> %v, start %s", r.id, before.Rect, after.Rect, inv.Transform())
	r.last = r.scope.player.Play(el, invertKeyframes(inv, before), r.timing)
	r.scope.app.telemetry.animationPlayed(r.id)
}

// dispose records the last known geometry so the id can pick up from here
// if it reappears.
func (r *Region) dispose() {
	if r.state == regionDisposed {
		return
	}
	for _, unbind := range r.unbinds {
		unbind()
	}
	r.unbinds = nil
	if r.state == regionTracked {
		if el, ok := r.node(); ok {
			r.scope.store.Record(r.id, el)
		}
	}
	r.state = regionDisposed
	r.frame.Detach()
}
