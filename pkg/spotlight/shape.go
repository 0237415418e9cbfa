package spotlight

import "github.com/fedpinx/spotlight/pkg/geometry"

// ShapeKind discriminates the hole shape cut into the backdrop.
type ShapeKind int

const (
	// ShapeRoundedRect cuts a rectangle with per-corner rounded corners.
	ShapeRoundedRect ShapeKind = iota
	// ShapeCircle cuts the smallest circle fully containing the target rect.
	ShapeCircle
)

// String returns a human-readable representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRoundedRect:
		return "rounded_rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// DefaultCornerRadius is the corner radius used by rounded-rect holes when
// no radius is configured.
const DefaultCornerRadius = 8.0

// DefaultVisualPadding is the extra margin, per side, between the target
// rect and the hole boundary.
const DefaultVisualPadding = 8.0

// CornerRadii holds one radius per corner of a rounded-rect hole.
type CornerRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformCorners returns radii with the same value at every corner.
func UniformCorners(radius float64) CornerRadii {
	return CornerRadii{
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// Shape is a tagged variant describing the hole shape. Exactly one kind is
// active per highlight; Corners is meaningful only for ShapeRoundedRect.
//
// The zero Shape is a rounded rect whose corners default to
// DefaultCornerRadius. Shapes built through RoundedRect keep their radii
// as given, including zero (square corners).
type Shape struct {
	Kind    ShapeKind
	Corners CornerRadii

	// explicitCorners distinguishes RoundedRect(UniformCorners(0)) from the
	// zero Shape, which falls back to DefaultCornerRadius.
	explicitCorners bool
}

// RoundedRect returns a rounded-rect shape with the given per-corner radii.
func RoundedRect(corners CornerRadii) Shape {
	return Shape{Kind: ShapeRoundedRect, Corners: corners, explicitCorners: true}
}

// RoundedRectUniform returns a rounded-rect shape with one radius for all
// corners.
func RoundedRectUniform(radius float64) Shape {
	return RoundedRect(UniformCorners(radius))
}

// Circle returns a circular shape.
func Circle() Shape {
	return Shape{Kind: ShapeCircle}
}

// rrect converts the shape's corners to a geometry.RRect over the given rect.
// A shape that never had corners set falls back to DefaultCornerRadius.
func (s Shape) rrect(rect geometry.Rect) geometry.RRect {
	c := s.Corners
	if !s.explicitCorners && c == (CornerRadii{}) {
		c = UniformCorners(DefaultCornerRadius)
	}
	return geometry.RRect{
		Rect:        rect,
		TopLeft:     geometry.CircularRadius(c.TopLeft),
		TopRight:    geometry.CircularRadius(c.TopRight),
		BottomRight: geometry.CircularRadius(c.BottomRight),
		BottomLeft:  geometry.CircularRadius(c.BottomLeft),
	}
}
