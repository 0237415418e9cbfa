package animation

import (
	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
)

// Tween interpolates between Begin and End values based on driver progress.
//
// Tween maps the 0-1 range of a [Driver] to any value range or type: the
// spotlight composer uses one tween for blur sigma and one for overlay alpha,
// both fed by the same driver so they stay in lockstep.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the driver's current value.
func (tw *Tween[T]) Transform(driver *Driver) T {
	return tw.Evaluate(driver.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b geometry.Offset, t float64) geometry.Offset {
	return geometry.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor linearly interpolates between two Color values component-wise.
func LerpColor(a, b render.Color, t float64) render.Color {
	aA := float64((a >> 24) & 0xFF)
	aR := float64((a >> 16) & 0xFF)
	aG := float64((a >> 8) & 0xFF)
	aB := float64(a & 0xFF)

	bA := float64((b >> 24) & 0xFF)
	bR := float64((b >> 16) & 0xFF)
	bG := float64((b >> 8) & 0xFF)
	bB := float64(b & 0xFF)

	alpha := uint8(LerpFloat64(aA, bA, t))
	r := uint8(LerpFloat64(aR, bR, t))
	g := uint8(LerpFloat64(aG, bG, t))
	b8 := uint8(LerpFloat64(aB, bB, t))

	return render.Color(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b8))
}

// LerpEdgeInsets linearly interpolates between two EdgeInsets values.
func LerpEdgeInsets(a, b geometry.EdgeInsets, t float64) geometry.EdgeInsets {
	return geometry.EdgeInsets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpRadius linearly interpolates between two Radius values.
func LerpRadius(a, b geometry.Radius, t float64) geometry.Radius {
	return geometry.Radius{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end geometry.Offset) *Tween[geometry.Offset] {
	return &Tween[geometry.Offset]{
		Begin: begin,
		End:   end,
		Lerp:  LerpOffset,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end render.Color) *Tween[render.Color] {
	return &Tween[render.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
