package raster

import (
	"testing"
	"time"

	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
	"github.com/fedpinx/spotlight/pkg/spotlight"
)

func settledPlan(t *testing.T, cfg spotlight.Config, bounds geometry.Rect, viewport geometry.Size) spotlight.Plan {
	t.Helper()
	c, err := spotlight.NewComposer("k", cfg)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	c.Compose("k", &bounds, viewport)
	c.Advance(time.Second)
	plan, visible := c.Compose("k", &bounds, viewport)
	if !visible {
		t.Fatal("expected visible plan")
	}
	return plan
}

func TestRasterizeCoversOutsideAndSparesHole(t *testing.T) {
	viewport := geometry.Size{Width: 200, Height: 100}
	bounds := geometry.RectFromLTWH(80, 40, 40, 20)
	plan := settledPlan(t, spotlight.Config{
		Shape:          spotlight.RoundedRectUniform(0),
		VisualPadding:  4,
		OverlayColor:   render.RGB(0, 0, 0),
		OverlayOpacity: 1,
	}, bounds, viewport)

	img := Rasterize(plan, viewport)

	// Far outside the hole: fully covered.
	outside := []struct{ x, y int }{{0, 0}, {199, 0}, {0, 99}, {199, 99}, {40, 50}, {160, 50}}
	for _, p := range outside {
		if a := img.RGBAAt(p.x, p.y).A; a != 255 {
			t.Errorf("pixel (%d,%d): expected full coverage, got alpha %d", p.x, p.y, a)
		}
	}

	// Strictly inside the hole (target inflated by 4): transparent.
	inside := []struct{ x, y int }{{100, 50}, {80, 40}, {118, 58}}
	for _, p := range inside {
		if a := img.RGBAAt(p.x, p.y).A; a != 0 {
			t.Errorf("pixel (%d,%d): expected hole, got alpha %d", p.x, p.y, a)
		}
	}
}

func TestRasterizeCircleHole(t *testing.T) {
	viewport := geometry.Size{Width: 200, Height: 200}
	bounds := geometry.RectFromLTWH(90, 90, 20, 20)
	plan := settledPlan(t, spotlight.Config{
		Shape:          spotlight.Circle(),
		VisualPadding:  2,
		OverlayColor:   render.RGB(0, 0, 0),
		OverlayOpacity: 1,
	}, bounds, viewport)

	img := Rasterize(plan, viewport)

	if a := img.RGBAAt(100, 100).A; a != 0 {
		t.Errorf("circle center should be a hole, got alpha %d", a)
	}
	if a := img.RGBAAt(10, 10).A; a != 255 {
		t.Errorf("far corner should be covered, got alpha %d", a)
	}
	// The hole circle contains the inflated rect's corners.
	if a := img.RGBAAt(89, 89).A; a != 0 {
		t.Errorf("inflated rect corner should be inside the circle, got alpha %d", a)
	}
}

func TestRasterizeAlphaScalesWithFade(t *testing.T) {
	viewport := geometry.Size{Width: 100, Height: 100}
	bounds := geometry.RectFromLTWH(40, 40, 20, 20)

	c, err := spotlight.NewComposer("k", spotlight.Config{
		OverlayColor:   render.RGB(0, 0, 0),
		OverlayOpacity: 1,
		Duration:       100 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	c.Compose("k", &bounds, viewport)
	c.Advance(50 * time.Millisecond)
	plan, _ := c.Compose("k", &bounds, viewport)

	img := Rasterize(plan, viewport)
	a := img.RGBAAt(5, 5).A
	if a < 120 || a > 135 {
		t.Errorf("expected roughly half coverage mid-fade, got alpha %d", a)
	}
}

func TestRasterizeEmptyPlan(t *testing.T) {
	img := Rasterize(spotlight.Plan{}, geometry.Size{Width: 10, Height: 10})
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("empty plan must rasterize transparent, pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestFillPathZeroSize(t *testing.T) {
	p := render.NewPath()
	p.AddRect(geometry.RectFromLTWH(0, 0, 10, 10), render.Clockwise)
	img := FillPath(p, render.RGB(0, 0, 0), geometry.Size{})
	if !img.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", img.Bounds())
	}
}
