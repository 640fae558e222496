package flip

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-flip/internal/debug"
)

// State is a reactive value owned by an App. Set runs the bound callbacks
// synchronously, or once at the end of the enclosing App.Batch.
//
// Get may be called from any goroutine. Set, Update and Bind belong to the
// App loop; other goroutines go through App.QueueUpdate.
//
//	order := flip.NewState(app, []string{"a", "b", "c"})
//	list.Bind(order)
//	order.Set([]string{"c", "a", "b"})
type State[T any] struct {
	app *App

	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

type binding[T any] struct {
	id   uint64
	fn   func(T)
	dead atomic.Bool
}

// Unbind detaches a callback. Calling it more than once is harmless.
type Unbind func()

var nextBindingID atomic.Uint64

// NewState creates a state owned by app.
func NewState[T any](app *App, initial T) *State[T] {
	if app == nil {
		panic("flip: nil app in NewState")
	}
	return &State[T]{app: app, value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v, marks the app dirty and notifies bindings in the order they
// were registered.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	live := s.bindings[:0]
	for _, b := range s.bindings {
		if !b.dead.Load() {
			live = append(live, b)
		}
	}
	clear(s.bindings[len(live):])
	s.bindings = live
	notify := append([]*binding[T](nil), live...)
	s.mu.Unlock()

	s.app.MarkDirty()

	if s.app.batch.active() {
		for _, b := range notify {
			s.app.batch.hold(b.id, func() {
				// Unbinding later in the batch cancels the held call.
				if !b.dead.Load() {
					b.fn(v)
				}
			})
		}
		debug.Log("State.Set: held %d bindings until the batch ends", len(notify))
		return
	}
	for _, b := range notify {
		// An earlier callback may have unbound this one.
		if !b.dead.Load() {
			b.fn(v)
		}
	}
}

// Update sets the result of fn applied to the current value.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn for future changes. It is not called with the current
// value.
func (s *State[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: nextBindingID.Add(1), fn: fn}
	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()
	return func() { b.dead.Store(true) }
}

// heldBindings collects binding callbacks while a batch is open. Each
// binding runs once, with its last value, in the order it was first held.
type heldBindings struct {
	depth int
	order []uint64
	fns   map[uint64]func()
}

func (h *heldBindings) active() bool { return h.depth > 0 }

func (h *heldBindings) hold(id uint64, fn func()) {
	if h.fns == nil {
		h.fns = make(map[uint64]func())
	}
	if _, ok := h.fns[id]; !ok {
		h.order = append(h.order, id)
	}
	h.fns[id] = fn
}

func (h *heldBindings) release() []func() {
	fns := make([]func(), 0, len(h.order))
	for _, id := range h.order {
		fns = append(fns, h.fns[id])
	}
	h.order, h.fns = nil, nil
	return fns
}

// Batch runs fn and defers binding callbacks until the outermost Batch
// returns. The batch is closed even if fn panics.
func (a *App) Batch(fn func()) {
	a.batch.depth++
	defer func() {
		a.batch.depth--
		if a.batch.depth > 0 {
			return
		}
		for _, run := range a.batch.release() {
			run()
		}
	}()
	fn()
}
