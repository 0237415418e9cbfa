package render

import (
	"testing"

	"github.com/fedpinx/spotlight/pkg/geometry"
)

func TestAddRectWinding(t *testing.T) {
	rect := geometry.RectFromLTWH(0, 0, 10, 10)

	cw := NewPath()
	cw.AddRect(rect, Clockwise)
	ccw := NewPath()
	ccw.AddRect(rect, CounterClockwise)

	// Both start at the top-left; the second point differs by direction.
	if got := cw.Commands[1].Args; got[0] != 10 || got[1] != 0 {
		t.Errorf("clockwise second point: got (%v, %v), want (10, 0)", got[0], got[1])
	}
	if got := ccw.Commands[1].Args; got[0] != 0 || got[1] != 10 {
		t.Errorf("counter-clockwise second point: got (%v, %v), want (0, 10)", got[0], got[1])
	}
	if cw.Commands[len(cw.Commands)-1].Op != PathOpClose {
		t.Error("rect subpath should be closed")
	}
}

func TestAddRectBounds(t *testing.T) {
	p := NewPath()
	p.AddRect(geometry.RectFromLTWH(5, 10, 20, 30), Clockwise)
	got := p.Bounds()
	want := geometry.Rect{Left: 5, Top: 10, Right: 25, Bottom: 40}
	if got != want {
		t.Errorf("expected bounds %+v, got %+v", want, got)
	}
}

func TestAddRRectLimitsOversizedRadii(t *testing.T) {
	rect := geometry.RectFromLTWH(0, 0, 10, 10)
	rr := geometry.RRectFromRectAndRadius(rect, geometry.CircularRadius(100))

	p := NewPath()
	p.AddRRect(rr, Clockwise)

	// Every point must stay within the rect despite the oversized radius.
	b := p.Bounds()
	if b.Left < 0 || b.Top < 0 || b.Right > 10 || b.Bottom > 10 {
		t.Errorf("rrect path escapes its rect: %+v", b)
	}
}

func TestAddRRectZeroRadiusDegeneratesToRect(t *testing.T) {
	rect := geometry.RectFromLTWH(0, 0, 10, 10)
	rr := geometry.RRectFromRectAndRadius(rect, geometry.Radius{})

	p := NewPath()
	p.AddRRect(rr, Clockwise)
	got := p.Bounds()
	if got != rect {
		t.Errorf("expected bounds %+v, got %+v", rect, got)
	}
}

func TestAddCircle(t *testing.T) {
	p := NewPath()
	p.AddCircle(geometry.Offset{X: 50, Y: 50}, 10, CounterClockwise)

	b := p.Bounds()
	want := geometry.Rect{Left: 40, Top: 40, Right: 60, Bottom: 60}
	if b != want {
		t.Errorf("expected bounds %+v, got %+v", want, b)
	}
	if p.Commands[0].Op != PathOpMoveTo {
		t.Error("circle should start with a move")
	}
	if p.Commands[len(p.Commands)-1].Op != PathOpClose {
		t.Error("circle subpath should be closed")
	}
}

func TestAddCircleZeroRadiusIsNoop(t *testing.T) {
	p := NewPath()
	p.AddCircle(geometry.Offset{X: 5, Y: 5}, 0, Clockwise)
	if !p.IsEmpty() {
		t.Error("zero-radius circle should add nothing")
	}
}

func TestPathClear(t *testing.T) {
	p := NewPathWithFillRule(FillRuleEvenOdd)
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Clear()
	if !p.IsEmpty() {
		t.Error("expected empty path after Clear")
	}
	if p.FillRule != FillRuleEvenOdd {
		t.Error("Clear should preserve the fill rule")
	}
}

func TestEnumStrings(t *testing.T) {
	if PathOpMoveTo.String() != "move_to" || PathOpClose.String() != "close" {
		t.Error("unexpected PathOp strings")
	}
	if FillRuleEvenOdd.String() != "evenodd" || FillRuleNonZero.String() != "nonzero" {
		t.Error("unexpected PathFillRule strings")
	}
}

func TestColorComponents(t *testing.T) {
	c := RGBA(255, 128, 0, 0.5)
	r, g, b, a := c.RGBAF()
	if r != 1 || g != 128.0/255 || b != 0 {
		t.Errorf("unexpected components: %v %v %v", r, g, b)
	}
	if a < 0.49 || a > 0.51 {
		t.Errorf("expected alpha ~0.5, got %v", a)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := RGB(10, 20, 30)
	if c.Alpha() != 1 {
		t.Errorf("opaque color should have alpha 1, got %v", c.Alpha())
	}
	faded := c.WithAlpha(0)
	if faded.Alpha() != 0 {
		t.Errorf("expected alpha 0, got %v", faded.Alpha())
	}
	if faded&0x00FFFFFF != c&0x00FFFFFF {
		t.Error("WithAlpha must not change RGB channels")
	}
}
