package flip

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-flip/internal/debug"
	"github.com/grindlemire/go-flip/internal/layout"
)

// App owns the single-threaded loop every region, list and animation runs
// on: a microtask queue, the layout commit, after-commit callbacks and
// animation frames.
//
// Everything except QueueUpdate, Stop and State.Get must be called from the
// loop (or from a test driving Flush and Frame directly).
type App struct {
	root          *Element
	width, height int
	dirty         atomic.Bool
	batch         heldBindings

	microtasks  []func()
	afterCommit []func()
	frames      []func(time.Time)
	commits     uint64
	onCommit    []func(*App)

	// Event loop fields
	updateQueue chan func()
	stopCh      chan struct{}
	stopOnce    sync.Once

	// Configuration (set via options)
	config        Config
	frameDuration time.Duration
	queueSize     int
	logf          func(format string, args ...any)

	telemetry *telemetry
}

// NewApp creates an App with default configuration. Options can override
// frame rate, queue size, logging and animation defaults.
func NewApp(opts ...AppOption) (*App, error) {
	cfg := DefaultConfig()
	a := &App{
		stopCh:        make(chan struct{}),
		config:        cfg,
		frameDuration: time.Second / time.Duration(cfg.FrameRate),
		queueSize:     256,
		logf:          debug.Log,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.updateQueue = make(chan func(), a.queueSize)
	a.telemetry = newTelemetry()
	return a, nil
}

// SetRoot attaches root as the tree laid out in a width x height viewport.
func (a *App) SetRoot(root *Element, width, height int) {
	if a.root != nil && a.root != root {
		a.root.attach(nil)
	}
	a.root = root
	a.width, a.height = width, height
	if root != nil {
		root.attach(a)
		root.MarkDirty()
	}
	a.MarkDirty()
}

// Root returns the attached root element, or nil.
func (a *App) Root() *Element {
	return a.root
}

// Resize changes the viewport and schedules a layout commit.
func (a *App) Resize(width, height int) {
	a.width, a.height = width, height
	if a.root != nil {
		a.root.MarkDirty()
	}
	a.MarkDirty()
}

// Size returns the viewport dimensions.
func (a *App) Size() (width, height int) {
	return a.width, a.height
}

// Config returns the animation defaults in effect.
func (a *App) Config() Config {
	return a.config
}

// MarkDirty marks this app as needing a layout commit.
func (a *App) MarkDirty() {
	a.dirty.Store(true)
}

// Commits returns how many layout commits have run.
func (a *App) Commits() uint64 {
	return a.commits
}

// commit lays out the root tree and notifies commit observers.
func (a *App) commit() {
	a.dirty.Store(false)
	if a.root != nil {
		layout.Calculate(a.root, a.width, a.height)
	}
	a.commits++
	for _, fn := range a.onCommit {
		fn(a)
	}
}

func (a *App) warn(format string, args ...any) {
	if a.logf != nil {
		a.logf(format, args...)
	}
}
