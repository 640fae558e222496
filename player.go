package flip

import "time"

// Timing controls how a keyframe pair is played.
type Timing struct {
	Duration time.Duration
	Easing   Easing
	// EasingName is the description Easing was parsed from, kept for logs.
	EasingName string
}

// Player plays a two-keyframe animation on an element.
type Player interface {
	Play(el *Element, frames [2]Keyframe, timing Timing) *Animation
}

// Animation is a handle to one played keyframe pair.
type Animation struct {
	el        *Element
	frames    [2]Keyframe
	timing    Timing
	start     time.Time
	started   bool
	finished  bool
	cancelled bool
	onFinish  []func()
}

func newAnimation(el *Element, frames [2]Keyframe, timing Timing) *Animation {
	if timing.Easing == nil {
		timing.Easing = Linear
	}
	return &Animation{el: el, frames: frames, timing: timing}
}

// Element returns the animated element.
func (a *Animation) Element() *Element {
	return a.el
}

// Keyframes returns the start and end keyframes.
func (a *Animation) Keyframes() [2]Keyframe {
	return a.frames
}

// Timing returns the timing the animation was played with.
func (a *Animation) Timing() Timing {
	return a.timing
}

// Finished reports whether the animation ran to completion.
func (a *Animation) Finished() bool {
	return a.finished
}

// Cancelled reports whether the animation was replaced before finishing.
func (a *Animation) Cancelled() bool {
	return a.cancelled
}

// Done reports whether the animation is no longer running.
func (a *Animation) Done() bool {
	return a.finished || a.cancelled
}

// OnFinish registers fn to run when the animation completes. If it already
// has, fn runs immediately. Cancelled animations never call fn.
func (a *Animation) OnFinish(fn func()) {
	if a.finished {
		fn()
		return
	}
	a.onFinish = append(a.onFinish, fn)
}

func (a *Animation) finish() {
	if a.Done() {
		return
	}
	a.finished = true
	callbacks := a.onFinish
	a.onFinish = nil
	for _, fn := range callbacks {
		fn()
	}
}

func (a *Animation) cancel() {
	if a.Done() {
		return
	}
	a.cancelled = true
	a.onFinish = nil
}

// PlayCall is one Play invocation seen by a RecordingPlayer.
type PlayCall struct {
	Element   *Element
	Keyframes [2]Keyframe
	Timing    Timing
	Animation *Animation
}

// RecordingPlayer is a deterministic Player that records calls and
// finishes every animation immediately. Use it in tests.
type RecordingPlayer struct {
	Calls []PlayCall
}

// Play implements Player.
func (p *RecordingPlayer) Play(el *Element, frames [2]Keyframe, timing Timing) *Animation {
	anim := newAnimation(el, frames, timing)
	p.Calls = append(p.Calls, PlayCall{Element: el, Keyframes: frames, Timing: timing, Animation: anim})
	anim.finish()
	return anim
}

// Reset forgets recorded calls.
func (p *RecordingPlayer) Reset() {
	p.Calls = nil
}
