package spotlight

import "github.com/fedpinx/spotlight/pkg/geometry"

// ResolveTarget computes the highlighted region's bounds from a target
// element's reported bounds, an event-target padding, and the current
// viewport.
//
// The padding widens the rect on every side. A padding that would invert a
// dimension clamps it to zero instead, so a degenerate element still yields
// a valid zero-area hole. The result is clamped into the viewport.
//
// A nil bounds means the host layout has not measured the element yet and
// returns a NotReadyError; callers treat this as "not yet visible" and retry
// on a later frame. ResolveTarget is pure and must be re-invoked whenever
// the target's layout or the viewport changes.
func ResolveTarget(bounds *geometry.Rect, padding geometry.EdgeInsets, viewport geometry.Size) (geometry.Rect, error) {
	if bounds == nil {
		return geometry.Rect{}, &NotReadyError{}
	}
	inflated := padding.InflateRect(*bounds)
	return inflated.ClampTo(geometry.RectFromSize(viewport)), nil
}
