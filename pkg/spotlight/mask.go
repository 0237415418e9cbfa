package spotlight

import (
	"math"

	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
)

// HoleRect returns the hole boundary: rect inflated by visualPadding on
// every side.
func HoleRect(rect geometry.Rect, visualPadding float64) geometry.Rect {
	return rect.Inflate(visualPadding)
}

// CircleRadius returns the radius of a circular hole over rect: half the
// rect's diagonal, so the circle fully contains it.
func CircleRadius(rect geometry.Rect) float64 {
	return math.Hypot(rect.Width()/2, rect.Height()/2)
}

// BuildMask produces the backdrop path: the full viewport rectangle with a
// shaped hole cut at rect inflated by visualPadding. The path uses the
// even-odd fill rule, and the hole subpath is additionally wound opposite
// the outer rectangle so nonzero-winding rasterizers fill it identically.
//
// The result is recomputed whenever rect, shape, or viewport changes; the
// composer keeps only the last-built path for render reuse.
func BuildMask(rect geometry.Rect, shape Shape, visualPadding float64, viewport geometry.Size) *render.Path {
	path := render.NewPathWithFillRule(render.FillRuleEvenOdd)
	path.AddRect(geometry.RectFromSize(viewport), render.Clockwise)

	hole := HoleRect(rect, visualPadding)
	switch shape.Kind {
	case ShapeCircle:
		path.AddCircle(hole.Center(), CircleRadius(hole), render.CounterClockwise)
	default:
		path.AddRRect(shape.rrect(hole), render.CounterClockwise)
	}
	return path
}
