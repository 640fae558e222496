package flip

import (
	"testing"
	"time"
)

func TestRegion_FirstAppearanceRecordsOnly(t *testing.T) {
	h := newHarness(t, 30, 3)
	el := box(10, 1)
	r := h.scope.NewRegion("card", one(el))
	h.root.AddChild(r.Nodes()...)

	if r.Tracked() {
		t.Fatal("region tracked before the first commit")
	}
	h.app.Flush()

	if !r.Tracked() {
		t.Error("region should be tracked after mount")
	}
	if len(h.player.Calls) != 0 {
		t.Errorf("first appearance played %d animations", len(h.player.Calls))
	}
	got, ok := h.scope.Store().Get("card")
	if !ok || got.Rect != (Rect{Width: 10, Height: 1}) {
		t.Errorf("store[card] = %+v, %v, want the mounted rect", got, ok)
	}
}

func TestRegion_RemountAnimatesFromLastPosition(t *testing.T) {
	h := newHarness(t, 30, 3)

	first := h.scope.Child()
	oldEl := box(10, 1, WithBackground(RGBColor(200, 0, 0)))
	h.root.AddChild(first.Flip("card", one(oldEl))...)
	h.app.Flush()

	// Disposal records while the old node is still on screen.
	first.Dispose()

	second := h.scope.Child()
	newEl := box(10, 1)
	h.root.SetChildren(append([]*Element{box(12, 1)}, second.Flip("card", one(newEl))...)...)
	h.app.Flush()

	calls := h.player.callsFor(newEl)
	if len(calls) != 1 {
		t.Fatalf("remount played %d animations, want 1", len(calls))
	}
	if got, want := startTransform(t, calls[0]).String(), "translate(-12px, 0px) scale(1,1)"; got != want {
		t.Errorf("start transform = %s, want %s", got, want)
	}
	if bg := calls[0].Keyframes[0].BackgroundColor; bg == nil || !bg.Equal(RGBColor(200, 0, 0)) {
		t.Errorf("start background = %v, want the old color", bg)
	}
	cur, _ := h.scope.Store().Get("card")
	if cur.Rect.Left != 12 {
		t.Errorf("store[card].Left = %v, want 12 after the transition", cur.Rect.Left)
	}
}

func TestRegion_Misuse(t *testing.T) {
	type tc struct {
		nodes func() []*Element
	}

	tests := map[string]tc{
		"no nodes":  {nodes: func() []*Element { return nil }},
		"two nodes": {nodes: func() []*Element { return []*Element{box(2, 1), box(2, 1)} }},
		"nil node":  {nodes: func() []*Element { return []*Element{nil} }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 30, 3)
			nodes := tt.nodes()
			r := h.scope.NewRegion("bad", func(*Scope) []*Element { return nodes })
			for _, n := range nodes {
				if n != nil {
					h.root.AddChild(n)
				}
			}
			h.app.Flush()

			if !h.log.contains(`region "bad" must render exactly one element`) {
				t.Errorf("logs = %v, want a usage warning", h.log.lines)
			}
			if r.Tracked() {
				t.Error("misused region should not be tracked")
			}
			if h.scope.Store().Len() != 0 || len(h.player.Calls) != 0 {
				t.Error("misused region should not capture or animate")
			}
		})
	}
}

func TestRegion_DetachedMountCapturesNothing(t *testing.T) {
	h := newHarness(t, 30, 3)
	r := h.scope.NewRegion("floating", one(box(4, 1)))
	h.app.Flush()

	if !r.Tracked() {
		t.Error("region should still be tracked")
	}
	if h.scope.Store().Len() != 0 {
		t.Error("detached region should not record")
	}
}

func TestRegion_DisposeRecordsLastPosition(t *testing.T) {
	h := newHarness(t, 30, 6)
	child := h.scope.Child()
	el := box(5, 1)
	h.root.AddChild(child.Flip("card", one(el))...)
	h.app.Flush()

	// Move without a tick: no animation, but disposal must see the new spot.
	h.root.SetStyle(func() LayoutStyle {
		s := h.root.Style()
		s.Padding = EdgeAll(2)
		return s
	}())
	h.app.Flush()
	child.Dispose()

	got, _ := h.scope.Store().Get("card")
	if got.Rect.Left != 2 || got.Rect.Top != 2 {
		t.Errorf("store[card] = %+v, want the position at disposal", got.Rect)
	}
	if len(h.player.Calls) != 0 {
		t.Errorf("played %d animations, want none", len(h.player.Calls))
	}
}

func TestRegion_ZeroSizeAfterKeepsBaseline(t *testing.T) {
	h := newHarness(t, 30, 3)
	first := h.scope.Child()
	h.root.AddChild(first.Flip("card", one(box(6, 1)))...)
	h.app.Flush()
	first.Dispose()

	second := h.scope.Child()
	h.root.SetChildren(second.Flip("card", one(box(0, 0)))...)
	h.app.Flush()

	if len(h.player.Calls) != 0 {
		t.Errorf("zero-size remount played %d animations", len(h.player.Calls))
	}
	got, _ := h.scope.Store().Get("card")
	if got.Rect.Width != 6 {
		t.Errorf("store[card] = %+v, want the 6-wide baseline kept", got.Rect)
	}
}

func TestRegion_Timing(t *testing.T) {
	type tc struct {
		opts         []FlipOption
		wantDuration time.Duration
		wantEasing   string
		wantWarning  bool
	}

	tests := map[string]tc{
		"app defaults": {
			wantDuration: 300 * time.Millisecond,
			wantEasing:   "ease-in-out",
		},
		"explicit": {
			opts:         []FlipOption{WithDuration(time.Second), WithEasing("steps(2)")},
			wantDuration: time.Second,
			wantEasing:   "steps(2)",
		},
		"bad easing falls back to linear": {
			opts:         []FlipOption{WithEasing("wobble")},
			wantDuration: 300 * time.Millisecond,
			wantEasing:   "wobble",
			wantWarning:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 30, 3)
			r := h.scope.NewRegion("card", one(box(2, 1)), tt.opts...)

			if r.timing.Duration != tt.wantDuration || r.timing.EasingName != tt.wantEasing {
				t.Errorf("timing = %v %q, want %v %q", r.timing.Duration, r.timing.EasingName, tt.wantDuration, tt.wantEasing)
			}
			if got := h.log.contains("using linear"); got != tt.wantWarning {
				t.Errorf("warning logged = %v, want %v", got, tt.wantWarning)
			}
			if tt.wantWarning && r.timing.Easing(0.3) != 0.3 {
				t.Error("fallback easing should be linear")
			}
		})
	}
}

func TestRegion_NestedScopeUsesRegionFrame(t *testing.T) {
	h := newHarness(t, 30, 3)
	var inner *Region
	outer := h.scope.NewRegion("outer", func(s *Scope) []*Element {
		inner = s.NewRegion("inner", one(box(2, 1)))
		container := box(10, 1)
		container.AddChild(inner.Nodes()...)
		return []*Element{container}
	})

	if inner.Frame().Parent() != outer.Frame() {
		t.Error("inner frame should nest under the outer region's frame")
	}
	if outer.Scope().Frame() != outer.Frame() {
		t.Error("render scope should carry the region's frame")
	}
}
