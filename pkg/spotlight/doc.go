// Package spotlight is the geometry and masking engine behind a step-overlay
// walkthrough: it highlights one target region of a UI by dimming and
// blurring everything else and cutting a shaped hole over the target,
// animating the transition in and out.
//
// The engine is deliberately small and pure. Given a target element's
// on-screen bounds, a padding inset, a shape descriptor, and the viewport
// size, it computes the highlighted rect ([ResolveTarget]), builds a
// full-viewport path with the highlight carved out ([BuildMask]), and scales
// blur and overlay opacity over time via a fade driver. A [Composer] ties
// these together and emits a [Plan] per frame for the host rendering surface
// to composite.
//
// Everything around the engine stays external: the widget tree, step
// sequencing (which highlight is active, supplied as a key to
// [Composer.Compose]), viewport change detection, and input dispatch. The
// composer only forwards outside-tap notifications to the configured
// OnDismiss callback; it never decides visibility on its own.
//
//	cfg := spotlight.Config{
//		Shape:        spotlight.RoundedRectUniform(12),
//		Padding:      geometry.InsetsAll(4),
//		OverlayColor: render.RGB(0, 0, 0),
//		BlurSigma:    5,
//		OnDismiss:    func() { sequencer.Next() },
//	}
//	comp, err := spotlight.NewComposer("step-1", cfg)
//	if err != nil {
//		// rejected at construction: e.g. opacity outside [0, 1]
//	}
//	// per frame:
//	comp.Advance(frameDelta)
//	if plan, visible := comp.Compose(activeKey, targetBounds, viewport); visible {
//		surface.Composite(plan)
//	}
package spotlight
