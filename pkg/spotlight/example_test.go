package spotlight_test

import (
	"fmt"
	"time"

	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
	"github.com/fedpinx/spotlight/pkg/spotlight"
)

// ExampleComposer walks one highlight through its full fade: activation via
// the matching key, frame-by-frame advancing, and deactivation resuming in
// reverse.
func ExampleComposer() {
	comp, err := spotlight.NewComposer("step-1", spotlight.Config{
		Shape:          spotlight.RoundedRectUniform(12),
		Padding:        geometry.InsetsAll(4),
		OverlayColor:   render.RGB(0, 0, 0),
		OverlayOpacity: 0.75,
		Duration:       150 * time.Millisecond,
	})
	if err != nil {
		fmt.Println("config rejected:", err)
		return
	}

	viewport := geometry.Size{Width: 400, Height: 800}
	target := geometry.RectFromLTWH(50, 100, 40, 20)

	// The sequencer says step-1 is active: the fade starts forward.
	comp.Compose("step-1", &target, viewport)
	comp.Advance(150 * time.Millisecond)

	plan, visible := comp.Compose("step-1", &target, viewport)
	fmt.Println("visible:", visible)
	fmt.Println("alpha:", plan.OverlayAlpha)
	fmt.Printf("hole: %.0fx%.0f\n", plan.HighlightRect.Width(), plan.HighlightRect.Height())

	// Another step takes over: the fade drains from its current progress.
	_, visible = comp.Compose("step-2", &target, viewport)
	comp.Advance(time.Second)
	fmt.Println("visible:", visible, "status:", comp.FadeStatus())

	// Output:
	// visible: true
	// alpha: 0.75
	// hole: 64x44
	// visible: false status: dismissed
}

// ExampleResolveTarget shows how padding widens a target's reported bounds.
func ExampleResolveTarget() {
	viewport := geometry.Size{Width: 400, Height: 800}
	bounds := geometry.RectFromLTWH(50, 100, 40, 20)

	rect, _ := spotlight.ResolveTarget(&bounds, geometry.InsetsAll(10), viewport)
	fmt.Printf("%.0f,%.0f %.0fx%.0f\n", rect.Left, rect.Top, rect.Width(), rect.Height())

	// Output:
	// 40,90 60x40
}
