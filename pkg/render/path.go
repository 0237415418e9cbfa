// Package render provides the drawing primitives the spotlight engine emits:
// vector paths describing the backdrop mask, and ARGB colors for the overlay
// and highlight border. The host compositing surface consumes these; the
// engine never rasterizes on its own (see pkg/raster for a software surface).
package render

import (
	"fmt"
	"math"

	"github.com/fedpinx/spotlight/pkg/geometry"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// Direction is the winding direction of a closed subpath.
//
// The backdrop mask winds its hole opposite to its outer rectangle so that
// nonzero-winding rasterizers produce the same result as even-odd ones.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// kappa scales a radius to the cubic control-point distance that best
// approximates a quarter circle.
const kappa = 0.5522847498307936

// AddRect appends a closed rectangular subpath with the given winding.
func (p *Path) AddRect(r geometry.Rect, dir Direction) {
	p.MoveTo(r.Left, r.Top)
	if dir == Clockwise {
		p.LineTo(r.Right, r.Top)
		p.LineTo(r.Right, r.Bottom)
		p.LineTo(r.Left, r.Bottom)
	} else {
		p.LineTo(r.Left, r.Bottom)
		p.LineTo(r.Right, r.Bottom)
		p.LineTo(r.Right, r.Top)
	}
	p.Close()
}

// AddRRect appends a closed rounded-rectangle subpath with the given winding.
// Corner radii larger than half the rect's dimensions are reduced to fit.
func (p *Path) AddRRect(rr geometry.RRect, dir Direction) {
	r := rr.Rect
	w, h := r.Width(), r.Height()
	limit := func(rad geometry.Radius) (float64, float64) {
		x := math.Min(math.Abs(rad.X), w/2)
		y := math.Min(math.Abs(rad.Y), h/2)
		return x, y
	}
	tlx, tly := limit(rr.TopLeft)
	trx, try := limit(rr.TopRight)
	brx, bry := limit(rr.BottomRight)
	blx, bly := limit(rr.BottomLeft)

	if dir == Clockwise {
		p.MoveTo(r.Left+tlx, r.Top)
		p.LineTo(r.Right-trx, r.Top)
		p.CubicTo(r.Right-trx+trx*kappa, r.Top, r.Right, r.Top+try-try*kappa, r.Right, r.Top+try)
		p.LineTo(r.Right, r.Bottom-bry)
		p.CubicTo(r.Right, r.Bottom-bry+bry*kappa, r.Right-brx+brx*kappa, r.Bottom, r.Right-brx, r.Bottom)
		p.LineTo(r.Left+blx, r.Bottom)
		p.CubicTo(r.Left+blx-blx*kappa, r.Bottom, r.Left, r.Bottom-bly+bly*kappa, r.Left, r.Bottom-bly)
		p.LineTo(r.Left, r.Top+tly)
		p.CubicTo(r.Left, r.Top+tly-tly*kappa, r.Left+tlx-tlx*kappa, r.Top, r.Left+tlx, r.Top)
	} else {
		p.MoveTo(r.Left+tlx, r.Top)
		p.CubicTo(r.Left+tlx-tlx*kappa, r.Top, r.Left, r.Top+tly-tly*kappa, r.Left, r.Top+tly)
		p.LineTo(r.Left, r.Bottom-bly)
		p.CubicTo(r.Left, r.Bottom-bly+bly*kappa, r.Left+blx-blx*kappa, r.Bottom, r.Left+blx, r.Bottom)
		p.LineTo(r.Right-brx, r.Bottom)
		p.CubicTo(r.Right-brx+brx*kappa, r.Bottom, r.Right, r.Bottom-bry+bry*kappa, r.Right, r.Bottom-bry)
		p.LineTo(r.Right, r.Top+try)
		p.CubicTo(r.Right, r.Top+try-try*kappa, r.Right-trx+trx*kappa, r.Top, r.Right-trx, r.Top)
	}
	p.Close()
}

// AddCircle appends a closed circular subpath with the given winding.
func (p *Path) AddCircle(center geometry.Offset, radius float64, dir Direction) {
	if radius <= 0 {
		return
	}
	c := radius * kappa
	p.MoveTo(center.X, center.Y-radius)
	if dir == Clockwise {
		p.CubicTo(center.X+c, center.Y-radius, center.X+radius, center.Y-c, center.X+radius, center.Y)
		p.CubicTo(center.X+radius, center.Y+c, center.X+c, center.Y+radius, center.X, center.Y+radius)
		p.CubicTo(center.X-c, center.Y+radius, center.X-radius, center.Y+c, center.X-radius, center.Y)
		p.CubicTo(center.X-radius, center.Y-c, center.X-c, center.Y-radius, center.X, center.Y-radius)
	} else {
		p.CubicTo(center.X-c, center.Y-radius, center.X-radius, center.Y-c, center.X-radius, center.Y)
		p.CubicTo(center.X-radius, center.Y+c, center.X-c, center.Y+radius, center.X, center.Y+radius)
		p.CubicTo(center.X+c, center.Y+radius, center.X+radius, center.Y+c, center.X+radius, center.Y)
		p.CubicTo(center.X+radius, center.Y-c, center.X+c, center.Y-radius, center.X, center.Y-radius)
	}
	p.Close()
}

// Bounds returns the bounding box of all on-curve and control points.
// Control points may lie outside the true curve, so this is a conservative
// bound; it is exact for paths built from AddRect.
func (p *Path) Bounds() geometry.Rect {
	if p.IsEmpty() {
		return geometry.Rect{}
	}
	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			left = math.Min(left, cmd.Args[i])
			right = math.Max(right, cmd.Args[i])
			top = math.Min(top, cmd.Args[i+1])
			bottom = math.Max(bottom, cmd.Args[i+1])
		}
	}
	return geometry.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}
