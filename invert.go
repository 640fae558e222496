package flip

import (
	"fmt"
	"math"
)

// Invert is the start state of a FLIP animation: the transform that makes an
// element in its new layout position coincide with its old position and size.
type Invert struct {
	DeltaX, DeltaY float64
	ScaleX, ScaleY float64
}

// ComputeInvert derives the invert transform from the element's before and
// after rects. parentBefore and parentAfter are the nearest tracked
// ancestor's previous and current absolute rects; when either is nil no
// parent correction is applied.
//
// Translation is measured between centers, so the scale applies about the
// element's center. A zero after-dimension yields scale 1 on that axis.
func ComputeInvert(before, after Rect, parentBefore, parentAfter *Rect) Invert {
	var parentDX, parentDY float64
	if parentBefore != nil && parentAfter != nil {
		offsetX := (parentBefore.Width - parentAfter.Width) / 2
		offsetY := (parentBefore.Height - parentAfter.Height) / 2
		parentDX = parentBefore.Left - parentAfter.Left + offsetX
		parentDY = parentBefore.Top - parentAfter.Top + offsetY
	}

	offsetX := (before.Width - after.Width) / 2
	offsetY := (before.Height - after.Height) / 2

	return Invert{
		DeltaX: -parentDX + (before.Left - after.Left) + offsetX,
		DeltaY: -parentDY + (before.Top - after.Top) + offsetY,
		ScaleX: ratio(before.Width, after.Width),
		ScaleY: ratio(before.Height, after.Height),
	}
}

// ratio returns num/den, or 1 when the result would not be finite.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 1
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

// IsIdentity reports whether playing the invert would not move anything.
func (i Invert) IsIdentity() bool {
	return i.DeltaX == 0 && i.DeltaY == 0 && i.ScaleX == 1 && i.ScaleY == 1
}

// Transform returns the invert as a translate-then-scale transform.
func (i Invert) Transform() Transform {
	return Transform{
		TranslateX: i.DeltaX,
		TranslateY: i.DeltaY,
		ScaleX:     i.ScaleX,
		ScaleY:     i.ScaleY,
	}
}

// Transform is translate(TranslateX, TranslateY) scale(ScaleX, ScaleY) with
// the origin at the element's center.
type Transform struct {
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
}

// Identity returns the transform that leaves an element where it is.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Apply maps r through the transform.
func (t Transform) Apply(r Rect) Rect {
	w := r.Width * t.ScaleX
	h := r.Height * t.ScaleY
	return Rect{
		Left:   r.Left + t.TranslateX + (r.Width-w)/2,
		Top:    r.Top + t.TranslateY + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Lerp interpolates component-wise from t to to by p.
func (t Transform) Lerp(to Transform, p float64) Transform {
	mix := func(a, b float64) float64 { return a + (b-a)*p }
	return Transform{
		TranslateX: mix(t.TranslateX, to.TranslateX),
		TranslateY: mix(t.TranslateY, to.TranslateY),
		ScaleX:     mix(t.ScaleX, to.ScaleX),
		ScaleY:     mix(t.ScaleY, to.ScaleY),
	}
}

// String formats the transform in CSS notation.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g,%g)", t.TranslateX, t.TranslateY, t.ScaleX, t.ScaleY)
}

// Keyframe is one end of an animation. Nil fields mean "the element's
// natural resting value", so the zero Keyframe is the identity end state.
type Keyframe struct {
	Transform       *Transform
	TransformOrigin string
	BackgroundColor *Color
	Opacity         *float64
}

// IsEmpty reports whether the keyframe sets no properties.
func (k Keyframe) IsEmpty() bool {
	return k.Transform == nil && k.BackgroundColor == nil && k.Opacity == nil
}

// invertKeyframes builds the two-keyframe FLIP animation: start at the
// inverted transform with the old color and opacity, end at rest.
func invertKeyframes(inv Invert, before Snapshot) [2]Keyframe {
	t := inv.Transform()
	color := before.Color
	opacity := before.Opacity
	return [2]Keyframe{
		{
			Transform:       &t,
			TransformOrigin: "50% 50%",
			BackgroundColor: &color,
			Opacity:         &opacity,
		},
		{},
	}
}
