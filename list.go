package flip

import "github.com/grindlemire/go-flip/internal/debug"

// ListOption configures a For or Index.
type ListOption func(*listConfig)

type listConfig struct {
	fallback func(*Scope) []*Element
}

// WithFallback renders fallback in place of the rows while the sequence is
// empty.
func WithFallback(render func(*Scope) []*Element) ListOption {
	return func(c *listConfig) {
		c.fallback = render
	}
}

// reconciler is the tick protocol shared by For and Index: a before tick on
// every Set, the mutation one microtask later inside a batch, and an after
// tick once the mutation has been laid out.
type reconciler[T any] struct {
	kind      string
	app       *App
	scope     *Scope // rows are children of this scope
	flow      *Flow
	container *Element
	items     []T

	pending  []T
	queued   bool
	disposed bool

	// source unbinds the State passed to the latest Bind; sourceGen tells
	// that Bind's handle apart from stale ones.
	source    Unbind
	sourceGen uint64

	fallback      func(*Scope) []*Element
	fallbackScope *Scope
	fallbackNodes []*Element

	// reconcile updates the rows to match items and returns their nodes
	// in order.
	reconcile func(items []T) []*Element
}

func newReconciler[T any](kind string, parent *Scope, container *Element, opts []ListOption) *reconciler[T] {
	var cfg listConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	flow := NewFlow(parent.app)
	l := &reconciler[T]{
		kind:      kind,
		app:       parent.app,
		scope:     parent.derive(nil, flow),
		flow:      flow,
		container: container,
		fallback:  cfg.fallback,
	}
	l.scope.OnDispose(func() {
		l.disposed = true
		if l.source != nil {
			l.source()
			l.source = nil
		}
	})
	return l
}

// Set schedules items to replace the current sequence. Regions beneath the
// list record their geometry before Set returns; the sequence changes on
// the next microtask and they animate once it has been laid out. Several
// Sets before the microtask runs collapse into one mutation.
func (l *reconciler[T]) Set(items []T) {
	if l.disposed {
		return
	}
	l.flow.EmitBefore()
	l.pending = append([]T(nil), items...)
	if l.queued {
		return
	}
	l.queued = true
	l.app.QueueMicrotask(l.flush)
}

// Bind makes the list follow src. The current value of src is applied
// immediately.
func (l *reconciler[T]) Bind(src *State[[]T]) Unbind {
	if l.source != nil {
		l.source()
	}
	l.Set(src.Get())
	unbind := src.Bind(l.Set)
	l.source = unbind
	l.sourceGen++
	gen := l.sourceGen
	return func() {
		unbind()
		if l.sourceGen == gen {
			l.source = nil
		}
	}
}

// Items returns the applied sequence. Items passed to Set show up here
// after the next microtask.
func (l *reconciler[T]) Items() []T {
	return l.items
}

// Flow returns the list's before/after ticks.
func (l *reconciler[T]) Flow() *Flow {
	return l.flow
}

// Scope returns the scope rows are rendered in.
func (l *reconciler[T]) Scope() *Scope {
	return l.scope
}

// Dispose disposes every row and stops following a bound source.
func (l *reconciler[T]) Dispose() {
	l.scope.Dispose()
}

func (l *reconciler[T]) flush() {
	l.queued = false
	if l.disposed {
		return
	}
	items := l.pending
	l.pending = nil

	_, span := l.app.telemetry.startReorder(l.kind, l.flow.Before(), len(items))
	defer span.End()

	l.app.Batch(func() {
		l.apply(items)
	})
	debug.Log("%s: applied %d items", l.kind, len(items))
	l.app.AfterCommit(func() {
		if !l.disposed {
			l.flow.EmitAfter()
		}
	})
}

func (l *reconciler[T]) apply(items []T) {
	l.items = items
	nodes := l.reconcile(items)

	if len(items) == 0 && l.fallback != nil {
		if l.fallbackScope == nil {
			l.fallbackScope = l.scope.Child()
			l.fallbackNodes = l.fallback(l.fallbackScope)
		}
		nodes = l.fallbackNodes
	} else if l.fallbackScope != nil {
		l.fallbackScope.Dispose()
		l.fallbackScope, l.fallbackNodes = nil, nil
	}

	if l.container != nil {
		l.container.SetChildren(nodes...)
	}
}

// For renders one row per item, keyed by item value. A row survives
// reorders for as long as its value stays in the sequence, and its index
// state follows its position. Equal values are matched to rows in order.
type For[T comparable] struct {
	*reconciler[T]
	render func(*Scope, T, *State[int]) []*Element
	rows   []*forRow[T]
}

type forRow[T comparable] struct {
	item  T
	scope *Scope
	index *State[int]
	nodes []*Element
}

// NewFor renders items into container under scope and returns the list.
// Rows are rendered immediately, without ticks; later changes go through
// Set or Bind.
//
// Example:
//
//	list := flip.NewFor(scope, column, ids, func(s *flip.Scope, id string, i *flip.State[int]) []*flip.Element {
//	    return s.Flip("row-"+id, func(*flip.Scope) []*flip.Element {
//	        return []*flip.Element{flip.New(flip.WithText(id))}
//	    })
//	})
//	list.Set(shuffled)
func NewFor[T comparable](scope *Scope, container *Element, items []T, render func(*Scope, T, *State[int]) []*Element, opts ...ListOption) *For[T] {
	f := &For[T]{
		reconciler: newReconciler[T]("for", scope, container, opts),
		render:     render,
	}
	f.reconcile = f.reconcileRows
	f.apply(append([]T(nil), items...))
	return f
}

func (f *For[T]) reconcileRows(items []T) []*Element {
	pool := make(map[T][]*forRow[T], len(f.rows))
	for _, row := range f.rows {
		pool[row.item] = append(pool[row.item], row)
	}

	next := make([]*forRow[T], len(items))
	kept := make(map[*forRow[T]]bool, len(f.rows))
	for i, item := range items {
		if queue := pool[item]; len(queue) > 0 {
			next[i] = queue[0]
			pool[item] = queue[1:]
			kept[queue[0]] = true
		}
	}

	// Removed rows record their geometry while still attached.
	for _, row := range f.rows {
		if !kept[row] {
			row.scope.Dispose()
		}
	}

	var nodes []*Element
	for i, item := range items {
		row := next[i]
		if row == nil {
			row = &forRow[T]{item: item, scope: f.scope.Child(), index: NewState(f.app, i)}
			row.nodes = f.render(row.scope, item, row.index)
			next[i] = row
		} else if row.index.Get() != i {
			row.index.Set(i)
		}
		nodes = append(nodes, row.nodes...)
	}
	f.rows = next
	return nodes
}

// Index renders one row per position. Rows are reused by index and their
// item state follows whatever value sits at that position; rows past the
// end of a shorter sequence are disposed.
type Index[T any] struct {
	*reconciler[T]
	render func(*Scope, *State[T], int) []*Element
	rows   []*indexRow[T]
}

type indexRow[T any] struct {
	scope *Scope
	item  *State[T]
	nodes []*Element
}

// NewIndex renders items into container under scope and returns the list.
func NewIndex[T any](scope *Scope, container *Element, items []T, render func(*Scope, *State[T], int) []*Element, opts ...ListOption) *Index[T] {
	x := &Index[T]{
		reconciler: newReconciler[T]("index", scope, container, opts),
		render:     render,
	}
	x.reconcile = x.reconcileRows
	x.apply(append([]T(nil), items...))
	return x
}

func (x *Index[T]) reconcileRows(items []T) []*Element {
	for i := len(x.rows) - 1; i >= len(items); i-- {
		x.rows[i].scope.Dispose()
	}
	if len(x.rows) > len(items) {
		x.rows = x.rows[:len(items)]
	}

	var nodes []*Element
	for i, item := range items {
		if i < len(x.rows) {
			x.rows[i].item.Set(item)
		} else {
			row := &indexRow[T]{scope: x.scope.Child(), item: NewState(x.app, item)}
			row.nodes = x.render(row.scope, row.item, i)
			x.rows = append(x.rows, row)
		}
		nodes = append(nodes, x.rows[i].nodes...)
	}
	return nodes
}
