package flip

import (
	"slices"
	"strconv"
	"testing"
	"time"
)

// itemList is a For of fixed-size tracked boxes, one region per item.
type itemList struct {
	*For[string]
	els     map[string]*Element
	indexes map[string]*State[int]
	renders int
}

func newItemList(h *harness, items []string, opts ...ListOption) *itemList {
	l := &itemList{els: map[string]*Element{}, indexes: map[string]*State[int]{}}
	l.For = NewFor(h.scope, h.root, items, func(s *Scope, id string, index *State[int]) []*Element {
		l.renders++
		el := box(10, 1)
		l.els[id] = el
		l.indexes[id] = index
		return s.Flip("item-"+id, one(el))
	}, opts...)
	return l
}

func TestFor_Reorder(t *testing.T) {
	h := newHarness(t, 30, 3)
	list := newItemList(h, []string{"a", "b", "c"})
	h.app.Flush()
	if len(h.player.Calls) != 0 {
		t.Fatalf("initial render played %d animations", len(h.player.Calls))
	}

	version := h.scope.Store().Version()
	list.Set([]string{"b", "a", "c"})
	if h.scope.Store().Version() == version {
		t.Error("Set() should record before geometry synchronously")
	}
	if !slices.Equal(list.Items(), []string{"a", "b", "c"}) {
		t.Errorf("Items() before the microtask = %v, want the old sequence", list.Items())
	}

	h.app.Flush()

	type want struct {
		dx    float64
		index int
	}
	for id, w := range map[string]want{
		"a": {dx: -10, index: 1},
		"b": {dx: 10, index: 0},
		"c": {dx: 0, index: 2},
	} {
		calls := h.player.callsFor(list.els[id])
		if len(calls) != 1 {
			t.Errorf("%s: %d animations, want 1", id, len(calls))
			continue
		}
		tr := startTransform(t, calls[0])
		if tr.TranslateX != w.dx || tr.TranslateY != 0 || tr.ScaleX != 1 || tr.ScaleY != 1 {
			t.Errorf("%s: start transform = %s, want dx %v", id, tr, w.dx)
		}
		if got := list.indexes[id].Get(); got != w.index {
			t.Errorf("%s: index = %d, want %d", id, got, w.index)
		}
	}
	if list.renders != 3 {
		t.Errorf("renders = %d, want rows reused", list.renders)
	}
	if got := list.els["a"].Rect().X; got != 10 {
		t.Errorf("a laid out at x=%d, want 10", got)
	}
}

func TestFor_RemoveThenReinsert(t *testing.T) {
	h := newHarness(t, 30, 3)
	list := newItemList(h, []string{"a", "b", "c"})
	h.app.Flush()

	list.Set([]string{"a", "c"})
	h.app.Flush()

	// b's region recorded where it was before its node was detached.
	got, _ := h.scope.Store().Get("item-b")
	if got.Rect.Left != 10 {
		t.Errorf("store[item-b].Left = %v, want 10", got.Rect.Left)
	}
	if n := len(h.root.Children()); n != 2 {
		t.Fatalf("container has %d children, want 2", n)
	}
	h.player.Reset()

	list.Set([]string{"b", "a", "c"})
	h.app.Flush()

	for id, dx := range map[string]float64{"b": 10, "a": -10, "c": -10} {
		calls := h.player.callsFor(list.els[id])
		if len(calls) != 1 {
			t.Errorf("%s: %d animations, want exactly 1", id, len(calls))
			continue
		}
		if got := startTransform(t, calls[0]).TranslateX; got != dx {
			t.Errorf("%s: dx = %v, want %v", id, got, dx)
		}
	}
}

func TestFor_NestedRegionsFollowParent(t *testing.T) {
	h := newHarness(t, 30, 3)
	dots := map[string]*Element{}
	list := NewFor(h.scope, h.root, []string{"a", "b"}, func(s *Scope, id string, _ *State[int]) []*Element {
		return s.Flip("row-"+id, func(inner *Scope) []*Element {
			row := box(10, 1)
			dots[id] = box(2, 1)
			row.AddChild(inner.Flip("dot-"+id, one(dots[id]))...)
			return []*Element{row}
		})
	})
	h.app.Flush()

	list.Set([]string{"b", "a"})
	h.app.Flush()

	for _, id := range []string{"a", "b"} {
		calls := h.player.callsFor(dots[id])
		if len(calls) != 1 {
			t.Fatalf("dot-%s: %d animations, want 1", id, len(calls))
		}
		if tr := startTransform(t, calls[0]); tr != Identity() {
			t.Errorf("dot-%s: start transform = %s, want identity relative to its row", id, tr)
		}
	}
}

func TestFor_InterruptedNestedRegionStaysOnScreen(t *testing.T) {
	cfg := Config{Duration: time.Second, Easing: "linear", FrameRate: 60}
	app, _ := newTestApp(t, WithConfig(cfg))
	root := New()
	app.SetRoot(root, 20, 1)
	scope := NewScope(app)

	dots := map[string]*Element{}
	rows := map[string]*Element{}
	list := NewFor(scope, root, []string{"a", "b"}, func(s *Scope, id string, _ *State[int]) []*Element {
		return s.Flip("row-"+id, func(inner *Scope) []*Element {
			rows[id] = box(10, 1)
			dots[id] = box(2, 1)
			rows[id].AddChild(inner.Flip("dot-"+id, one(dots[id]))...)
			return []*Element{rows[id]}
		})
	})
	app.Flush()

	list.Set([]string{"b", "a"})
	app.Flush()
	app.Frame(epoch)
	app.Frame(epoch.Add(500 * time.Millisecond))

	onScreen := dots["a"].ScreenRect()
	if onScreen.Left != 5 {
		t.Fatalf("dot-a halfway on screen at %v, want 5", onScreen.Left)
	}

	// Reverse while row-a is still moving: it is laid out at 0 again.
	list.Set([]string{"a", "b"})
	app.Flush()

	if got := dots["a"].ScreenRect(); got != onScreen {
		t.Errorf("dot-a jumped from %+v to %+v", onScreen, got)
	}
	if got := rows["a"].ScreenRect().Left; got != 5 {
		t.Errorf("row-a restarted on screen at %v, want 5", got)
	}
}

func TestFor_DuplicateValues(t *testing.T) {
	h := newHarness(t, 40, 3)
	renders := 0
	var els []*Element
	list := NewFor(h.scope, h.root, []int{1, 1, 2}, func(s *Scope, v int, _ *State[int]) []*Element {
		renders++
		el := box(5, 1)
		els = append(els, el)
		return []*Element{el}
	})
	h.app.Flush()

	list.Set([]int{2, 1, 1})
	h.app.Flush()
	if renders != 3 {
		t.Errorf("renders = %d, want 3 (all rows reused)", renders)
	}
	want := []*Element{els[2], els[0], els[1]}
	if !slices.Equal(h.root.Children(), want) {
		t.Error("duplicate rows should keep their relative order")
	}

	list.Set([]int{1, 1, 1})
	h.app.Flush()
	if renders != 4 || len(h.root.Children()) != 3 {
		t.Errorf("renders = %d, children = %d, want 4 and 3", renders, len(h.root.Children()))
	}
}

func TestFor_CoalescesSets(t *testing.T) {
	h := newHarness(t, 30, 3)
	list := newItemList(h, []string{"a", "b"})
	h.app.Flush()

	list.Set([]string{"b", "a"})
	list.Set([]string{"a", "b"})
	before := list.Flow().Before()
	h.app.Flush()

	if !slices.Equal(list.Items(), []string{"a", "b"}) {
		t.Errorf("Items() = %v, want the last Set", list.Items())
	}
	after := list.Flow().After()
	if after == nil || after.Seq != before.Seq {
		t.Errorf("after tick = %+v, want the pair of the last before tick %+v", after, before)
	}
	if list.els["a"].Rect().X != 0 {
		t.Error("a should be back at x=0")
	}
}

func TestFor_Fallback(t *testing.T) {
	h := newHarness(t, 30, 3)
	empty := New(WithText("nothing here"))
	fallbackScopes := 0
	list := newItemList(h, nil, WithFallback(func(s *Scope) []*Element {
		fallbackScopes++
		return []*Element{empty}
	}))
	h.app.Flush()

	if !slices.Equal(h.root.Children(), []*Element{empty}) {
		t.Fatalf("children = %v, want the fallback", h.root.Children())
	}

	list.Set([]string{"a"})
	h.app.Flush()
	if !slices.Equal(h.root.Children(), []*Element{list.els["a"]}) {
		t.Error("fallback should be replaced by the row")
	}

	list.Set(nil)
	h.app.Flush()
	if !slices.Equal(h.root.Children(), []*Element{empty}) || fallbackScopes != 2 {
		t.Errorf("fallback renders = %d, want it rendered again", fallbackScopes)
	}
}

func TestFor_Bind(t *testing.T) {
	h := newHarness(t, 30, 3)
	list := newItemList(h, []string{"a"})
	src := NewState(h.app, []string{"a", "b"})

	unbind := list.Bind(src)
	h.app.Flush()
	if !slices.Equal(list.Items(), []string{"a", "b"}) {
		t.Errorf("Items() = %v, want the source's current value", list.Items())
	}

	src.Set([]string{"b"})
	h.app.Flush()
	if !slices.Equal(list.Items(), []string{"b"}) {
		t.Errorf("Items() = %v, want [b]", list.Items())
	}

	unbind()
	src.Set([]string{"c"})
	h.app.Flush()
	if !slices.Equal(list.Items(), []string{"b"}) {
		t.Errorf("Items() after unbind = %v, want [b]", list.Items())
	}
}

func TestFor_BindReplacesSource(t *testing.T) {
	h := newHarness(t, 30, 3)
	list := newItemList(h, []string{"a"})
	first := NewState(h.app, []string{"a"})
	second := NewState(h.app, []string{"b"})
	third := NewState(h.app, []string{"c"})

	unbindFirst := list.Bind(first)
	list.Bind(second)
	// A stale handle must not forget the newer source.
	unbindFirst()
	list.Bind(third)
	h.app.Flush()

	second.Set([]string{"x"})
	h.app.Flush()
	if !slices.Equal(list.Items(), []string{"c"}) {
		t.Errorf("Items() = %v, want [c]: the replaced source still drives the list", list.Items())
	}

	third.Set([]string{"d"})
	h.app.Flush()
	if !slices.Equal(list.Items(), []string{"d"}) {
		t.Errorf("Items() = %v, want [d]", list.Items())
	}
}

func TestFor_Dispose(t *testing.T) {
	h := newHarness(t, 30, 3)
	list := newItemList(h, []string{"a", "b"})
	h.app.Flush()

	list.Set([]string{"b", "a"})
	list.Dispose()
	h.app.Flush()

	if !slices.Equal(list.Items(), []string{"a", "b"}) {
		t.Errorf("Items() = %v, want the sequence at disposal", list.Items())
	}
	if list.Flow().After() != nil {
		t.Error("disposed list emitted an after tick")
	}
	if !list.Scope().Disposed() {
		t.Error("list scope should be disposed")
	}

	list.Set([]string{"a"})
	h.app.Flush()
	if len(list.Items()) != 2 {
		t.Error("Set() after Dispose should be ignored")
	}
}

func TestIndex(t *testing.T) {
	h := newHarness(t, 30, 3)
	renders := 0
	var disposed []int
	list := NewIndex(h.scope, h.root, []string{"a", "b"}, func(s *Scope, item *State[string], i int) []*Element {
		renders++
		el := New(WithText(item.Get()))
		item.Bind(el.SetText)
		s.OnDispose(func() { disposed = append(disposed, i) })
		return []*Element{el}
	})
	h.app.Flush()

	list.Set([]string{"x"})
	h.app.Flush()
	children := h.root.Children()
	if len(children) != 1 {
		t.Fatalf("children = %d, want 1", len(children))
	}
	if got := children[0].Text(); got != "x" {
		t.Errorf("row text = %q, want x", got)
	}
	if !slices.Equal(disposed, []int{1}) {
		t.Errorf("disposed = %v, want [1]", disposed)
	}

	list.Set([]string{"x", "y", "z"})
	h.app.Flush()
	if renders != 4 {
		t.Errorf("renders = %d, want 4 (slot 0 reused, 2 rendered again)", renders)
	}
	if got := h.root.Children()[2].Text(); got != "z" {
		t.Errorf("third row text = %q, want z", got)
	}
	if list.Flow().After() == nil {
		t.Error("Index should emit after ticks")
	}
}

func TestIndex_RegionsAnimateWhenSlotsMove(t *testing.T) {
	h := newHarness(t, 30, 3, WithJustify(JustifyEnd))
	var els []*Element
	list := NewIndex(h.scope, h.root, []int{1, 2}, func(s *Scope, _ *State[int], i int) []*Element {
		el := box(5, 1)
		els = append(els, el)
		return s.Flip("slot-"+strconv.Itoa(i), one(el))
	})
	h.app.Flush()

	// Dropping the last slot slides the first one right under JustifyEnd.
	list.Set([]int{1})
	h.app.Flush()

	calls := h.player.callsFor(els[0])
	if len(calls) != 1 {
		t.Fatalf("slot 0 played %d animations, want 1", len(calls))
	}
	if got := startTransform(t, calls[0]).TranslateX; got != -5 {
		t.Errorf("slot 0 dx = %v, want -5", got)
	}
}
