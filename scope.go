package flip

import "github.com/grindlemire/go-flip/internal/debug"

// Scope carries what a tracked region needs from its surroundings: the
// shared Store, the Player, the nearest ancestor region's Frame and the
// nearest list's Flow. It replaces ambient context lookup with an explicit
// value passed to render functions.
//
// Scopes also own disposal. Disposing a scope disposes its child scopes
// first, then runs its own cleanups in reverse registration order.
type Scope struct {
	app    *App
	store  *Store
	player Player
	frame  *Frame
	flow   *Flow

	parent   *Scope
	children []*Scope
	cleanups []func()
	disposed bool
}

// ScopeOption configures a root Scope.
type ScopeOption func(*Scope)

// WithProbe captures geometry through p instead of LayoutProbe.
func WithProbe(p Probe) ScopeOption {
	return func(s *Scope) {
		s.store = NewStore(p)
	}
}

// WithPlayer plays animations through p instead of an Animator.
func WithPlayer(p Player) ScopeOption {
	return func(s *Scope) {
		s.player = p
	}
}

// WithStore shares an existing store, e.g. between two root scopes that
// should hand regions back and forth.
func WithStore(store *Store) ScopeOption {
	return func(s *Scope) {
		s.store = store
	}
}

// NewScope creates the root scope of a tracked subtree. It owns a new Store
// unless WithStore is given.
func NewScope(app *App, opts ...ScopeOption) *Scope {
	s := &Scope{app: app}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewStore(nil)
	}
	if s.player == nil {
		s.player = NewAnimator(app)
	}
	if s.store.onReject == nil {
		s.store.onReject = func(id string) {
			debug.Log("Store.Record: dropped zero-size capture for %q", id)
			app.telemetry.captureRejected(id)
		}
	}
	return s
}

// App returns the loop this scope runs on.
func (s *Scope) App() *App {
	return s.app
}

// Store returns the shared geometry store.
func (s *Scope) Store() *Store {
	return s.store
}

// Player returns the animation player.
func (s *Scope) Player() Player {
	return s.player
}

// Frame returns the nearest ancestor region's frame, or nil.
func (s *Scope) Frame() *Frame {
	return s.frame
}

// Flow returns the nearest list boundary's ticks, or nil.
func (s *Scope) Flow() *Flow {
	return s.flow
}

// Child returns a scope nested under s, disposed with it.
func (s *Scope) Child() *Scope {
	return s.derive(nil, nil)
}

// derive creates a child scope, overriding frame and flow when non-nil.
func (s *Scope) derive(frame *Frame, flow *Flow) *Scope {
	c := &Scope{
		app:    s.app,
		store:  s.store,
		player: s.player,
		frame:  s.frame,
		flow:   s.flow,
		parent: s,
	}
	if frame != nil {
		c.frame = frame
	}
	if flow != nil {
		c.flow = flow
	}
	s.children = append(s.children, c)
	return c
}

// OnDispose registers fn to run when the scope is disposed.
func (s *Scope) OnDispose(fn func()) {
	s.cleanups = append(s.cleanups, fn)
}

// Disposed reports whether Dispose has run.
func (s *Scope) Disposed() bool {
	return s.disposed
}

// Dispose tears down child scopes, then runs cleanups newest first.
// Dispose is idempotent.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for i := len(s.children) - 1; i >= 0; i-- {
		s.children[i].Dispose()
	}
	s.children = nil

	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.cleanups = nil

	if p := s.parent; p != nil && !p.disposed {
		for i, c := range p.children {
			if c == s {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
}
