package flip

import (
	"github.com/google/uuid"

	"github.com/grindlemire/go-flip/internal/debug"
)

// Phase says which side of a tree mutation a tick bounds.
type Phase uint8

const (
	// PhaseBefore fires before the mutation is applied.
	PhaseBefore Phase = iota
	// PhaseAfter fires after the mutation has been laid out.
	PhaseAfter
)

// String returns "before" or "after".
func (p Phase) String() string {
	if p == PhaseAfter {
		return "after"
	}
	return "before"
}

// Tick is an opaque token broadcast around one reconciliation. Consumers
// compare tokens by pointer: a new pointer is a new tick, whatever it holds.
type Tick struct {
	ID    uuid.UUID
	Phase Phase
	Seq   uint64 // shared by the before/after pair of one reconciliation
}

// Flow is the before/after tick pair a list boundary exposes to the tracked
// regions rendered beneath it.
type Flow struct {
	before   *State[*Tick]
	after    *State[*Tick]
	seq      uint64
	inFlight bool // between EmitBefore and EmitAfter
}

// NewFlow creates a flow whose ticks are states owned by app.
func NewFlow(app *App) *Flow {
	return &Flow{
		before: NewState[*Tick](app, nil),
		after:  NewState[*Tick](app, nil),
	}
}

// EmitBefore starts a new reconciliation and broadcasts its before tick.
// Subscribers run synchronously before EmitBefore returns.
func (f *Flow) EmitBefore() *Tick {
	f.seq++
	f.inFlight = true
	t := &Tick{ID: uuid.New(), Phase: PhaseBefore, Seq: f.seq}
	debug.Log("Flow: before tick %d (%s)", t.Seq, t.ID)
	f.before.Set(t)
	return t
}

// EmitAfter broadcasts the after tick of the current reconciliation.
func (f *Flow) EmitAfter() *Tick {
	f.inFlight = false
	t := &Tick{ID: uuid.New(), Phase: PhaseAfter, Seq: f.seq}
	debug.Log("Flow: after tick %d (%s)", t.Seq, t.ID)
	f.after.Set(t)
	return t
}

// InFlight returns the sequence number of the reconciliation whose after
// tick has not been emitted yet.
func (f *Flow) InFlight() (seq uint64, ok bool) {
	return f.seq, f.inFlight
}

// Before returns the latest before tick, or nil if none was emitted.
func (f *Flow) Before() *Tick {
	return f.before.Get()
}

// After returns the latest after tick, or nil if none was emitted.
func (f *Flow) After() *Tick {
	return f.after.Get()
}

// OnBefore subscribes fn to future before ticks. It does not fire for the
// tick current at subscription time.
func (f *Flow) OnBefore(fn func(*Tick)) Unbind {
	return subscribe(f.before, fn)
}

// OnAfter subscribes fn to future after ticks.
func (f *Flow) OnAfter(fn func(*Tick)) Unbind {
	return subscribe(f.after, fn)
}

// subscribe delivers only ticks whose pointer differs from the last one
// seen, so re-setting the same token is not a new tick.
func subscribe(s *State[*Tick], fn func(*Tick)) Unbind {
	last := s.Get()
	return s.Bind(func(t *Tick) {
		if t == last {
			return
		}
		last = t
		fn(t)
	})
}
