package geometry

// EdgeInsets is a four-sided inset in logical units. The spotlight engine
// uses it to widen a target's reported bounds before cutting the hole.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// InsetsAll creates insets with the same value on every side.
func InsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// InsetsSymmetric creates insets with the given horizontal and vertical values.
func InsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// IsZero returns true if every side is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// InflateRect widens rect by the insets: the left edge moves left by e.Left,
// the top edge up by e.Top, and so on. If opposite edges would cross, the
// affected dimension collapses to zero at its midpoint rather than inverting.
func (e EdgeInsets) InflateRect(r Rect) Rect {
	out := Rect{
		Left:   r.Left - e.Left,
		Top:    r.Top - e.Top,
		Right:  r.Right + e.Right,
		Bottom: r.Bottom + e.Bottom,
	}
	if out.Right < out.Left {
		mid := (out.Left + out.Right) * 0.5
		out.Left, out.Right = mid, mid
	}
	if out.Bottom < out.Top {
		mid := (out.Top + out.Bottom) * 0.5
		out.Top, out.Bottom = mid, mid
	}
	return out
}
