package flip

import "time"

// Animator is the Player for live element trees. It writes interpolated
// transform, background and opacity overrides onto the element every
// animation frame and clears them when the animation ends.
//
// Playing a new animation on an element cancels the one in flight. The new
// start keyframe was captured from what was on screen, so motion continues
// from the interrupted position instead of jumping.
type Animator struct {
	app     *App
	running map[*Animation]struct{}
}

// NewAnimator returns an Animator driven by app's frames.
func NewAnimator(app *App) *Animator {
	return &Animator{app: app, running: make(map[*Animation]struct{})}
}

// Play implements Player.
func (p *Animator) Play(el *Element, frames [2]Keyframe, timing Timing) *Animation {
	if prev := el.animationRef; prev != nil {
		prev.cancel()
		delete(p.running, prev)
	}

	anim := newAnimation(el, frames, timing)
	el.animationRef = anim
	p.running[anim] = struct{}{}

	// Show the start state before the first frame so nothing flashes at the
	// new layout position.
	p.apply(anim, 0)
	p.app.RequestFrame(func(now time.Time) { p.step(anim, now) })
	return anim
}

// Running returns how many animations are in flight.
func (p *Animator) Running() int {
	return len(p.running)
}

func (p *Animator) step(anim *Animation, now time.Time) {
	if anim.Done() {
		return
	}
	if !anim.started {
		anim.start = now
		anim.started = true
	}

	elapsed := now.Sub(anim.start)
	if anim.timing.Duration <= 0 || elapsed >= anim.timing.Duration {
		p.end(anim)
		return
	}

	progress := float64(elapsed) / float64(anim.timing.Duration)
	p.apply(anim, anim.timing.Easing(progress))
	p.app.RequestFrame(func(now time.Time) { p.step(anim, now) })
}

func (p *Animator) end(anim *Animation) {
	delete(p.running, anim)
	if anim.el.animationRef == anim {
		anim.el.animationRef = nil
		anim.el.clearVisual()
	}
	anim.finish()
}

// apply writes the state at eased progress t. Nil keyframe fields stand for
// the element's resting values.
func (p *Animator) apply(anim *Animation, t float64) {
	el := anim.el
	from, to := anim.frames[0], anim.frames[1]

	startT, endT := Identity(), Identity()
	if from.Transform != nil {
		startT = *from.Transform
	}
	if to.Transform != nil {
		endT = *to.Transform
	}
	transform := startT.Lerp(endT, t)

	startBG, endBG := el.background, el.background
	if from.BackgroundColor != nil {
		startBG = *from.BackgroundColor
	}
	if to.BackgroundColor != nil {
		endBG = *to.BackgroundColor
	}
	bg := startBG.Lerp(endBG, t)

	startOp, endOp := el.opacity, el.opacity
	if from.Opacity != nil {
		startOp = *from.Opacity
	}
	if to.Opacity != nil {
		endOp = *to.Opacity
	}
	opacity := clamp01(startOp + (endOp-startOp)*t)

	el.setVisual(&transform, &bg, &opacity)
}
