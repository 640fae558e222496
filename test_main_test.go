package flip

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/go-flip/internal/debug"
)

func TestMain(m *testing.M) {
	// Never write debug logs from tests, whatever the environment says.
	_ = debug.Init("")
	os.Exit(m.Run())
}

// logSink collects App warnings.
type logSink struct {
	lines []string
}

func (l *logSink) logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *logSink) contains(substr string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// newTestApp returns an App whose warnings go to the returned sink.
func newTestApp(t *testing.T, opts ...AppOption) (*App, *logSink) {
	t.Helper()
	sink := &logSink{}
	opts = append([]AppOption{WithLogger(sink.logf)}, opts...)
	app, err := NewApp(opts...)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app, sink
}

// harness is an App with a row root of the given size, a recording player
// and a root scope.
type harness struct {
	app    *App
	log    *logSink
	root   *Element
	player *RecordingPlayer
	scope  *Scope
}

func newHarness(t *testing.T, width, height int, rootOpts ...Option) *harness {
	t.Helper()
	app, sink := newTestApp(t)
	root := New(rootOpts...)
	app.SetRoot(root, width, height)
	player := &RecordingPlayer{}
	return &harness{
		app:    app,
		log:    sink,
		root:   root,
		player: player,
		scope:  NewScope(app, WithPlayer(player)),
	}
}

// box returns a fixed-size element.
func box(width, height int, opts ...Option) *Element {
	return New(append([]Option{WithSize(width, height)}, opts...)...)
}

// one wraps an element as a region render function.
func one(el *Element) func(*Scope) []*Element {
	return func(*Scope) []*Element { return []*Element{el} }
}

// callsFor returns the recorded plays on el.
func (p *RecordingPlayer) callsFor(el *Element) []PlayCall {
	var calls []PlayCall
	for _, c := range p.Calls {
		if c.Element == el {
			calls = append(calls, c)
		}
	}
	return calls
}

func startTransform(t *testing.T, c PlayCall) Transform {
	t.Helper()
	if c.Keyframes[0].Transform == nil {
		t.Fatal("start keyframe has no transform")
	}
	return *c.Keyframes[0].Transform
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
