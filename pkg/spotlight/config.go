package spotlight

import (
	"time"

	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
)

// DefaultOverlayOpacity is the backdrop opacity used when Config leaves
// OverlayOpacity at zero.
const DefaultOverlayOpacity = 0.75

// DefaultBlurSigma is the backdrop blur strength used when Config leaves
// BlurSigma at zero.
const DefaultBlurSigma = 0.0

// Config describes one highlight. It is immutable once handed to
// NewComposer; validation happens there, not at render time.
type Config struct {
	// Shape selects the hole shape. The zero value is a rounded rect with
	// DefaultCornerRadius corners.
	Shape Shape

	// CornerOverride, when non-nil, replaces the shape's own corner radii
	// with a single uniform radius. It wins over Shape.Corners.
	CornerOverride *float64

	// Padding inflates the target's reported bounds before the hole is cut.
	// This is the event-target inset, distinct from VisualPadding.
	Padding geometry.EdgeInsets

	// VisualPadding is the extra per-side margin between the padded target
	// rect and the hole boundary. Zero selects DefaultVisualPadding.
	VisualPadding float64

	// OverlayColor is the backdrop color (alpha ignored; OverlayOpacity
	// controls transparency). The zero value is black.
	OverlayColor render.Color

	// OverlayOpacity is the settled backdrop opacity, in [0, 1].
	// Zero selects DefaultOverlayOpacity. Out-of-range values are rejected
	// by NewComposer with a ConfigurationError.
	OverlayOpacity float64

	// BlurSigma is the settled backdrop blur strength. Negative values are
	// rejected by NewComposer.
	BlurSigma float64

	// BorderColor and BorderWidth describe the highlight outline stroked
	// around the hole. A zero width disables the border.
	BorderColor render.Color
	BorderWidth float64

	// Duration is the fade duration. Zero selects animation.DefaultDuration;
	// durations below zero settle instantly.
	Duration time.Duration

	// Curve eases the fade (optional, linear when nil). Must be monotonic.
	Curve func(float64) float64

	// OnDismiss is invoked, verbatim, when the overlay's outside-tap region
	// is activated. Changing the active highlight is the sequencer's job;
	// the composer only forwards the notification.
	OnDismiss func()
}

// withDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) withDefaults() Config {
	if c.VisualPadding == 0 {
		c.VisualPadding = DefaultVisualPadding
	}
	if c.OverlayOpacity == 0 {
		c.OverlayOpacity = DefaultOverlayOpacity
	}
	return c
}

// validate rejects out-of-range values. Called by NewComposer before any
// defaults are applied, so an explicit bad value is always caught.
func (c Config) validate() error {
	if c.OverlayOpacity < 0 || c.OverlayOpacity > 1 {
		return &ConfigurationError{
			Field:  "OverlayOpacity",
			Value:  c.OverlayOpacity,
			Reason: "must be in [0, 1]",
		}
	}
	if c.BlurSigma < 0 {
		return &ConfigurationError{
			Field:  "BlurSigma",
			Value:  c.BlurSigma,
			Reason: "must be non-negative",
		}
	}
	if c.VisualPadding < 0 {
		return &ConfigurationError{
			Field:  "VisualPadding",
			Value:  c.VisualPadding,
			Reason: "must be non-negative",
		}
	}
	if c.CornerOverride != nil && *c.CornerOverride < 0 {
		return &ConfigurationError{
			Field:  "CornerOverride",
			Value:  *c.CornerOverride,
			Reason: "must be non-negative",
		}
	}
	return nil
}

// effectiveShape applies the corner override, which wins over the shape's
// own radii.
func (c Config) effectiveShape() Shape {
	if c.CornerOverride != nil && c.Shape.Kind == ShapeRoundedRect {
		return RoundedRectUniform(*c.CornerOverride)
	}
	return c.Shape
}
