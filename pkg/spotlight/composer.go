package spotlight

import (
	"time"

	"github.com/fedpinx/spotlight/pkg/animation"
	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
)

// Plan is the draw plan the composer emits each frame. It is pure output:
// recomputed on every geometry or animation change, bit-reproducible from
// its inputs, and never persisted.
type Plan struct {
	// Backdrop covers the viewport minus the hole (even-odd fill).
	Backdrop *render.Path
	// BlurSigma is the current backdrop blur strength, scaled by the fade.
	BlurSigma float64
	// OverlayColor is the backdrop color; OverlayAlpha is its current
	// opacity, scaled by the fade.
	OverlayColor render.Color
	OverlayAlpha float64
	// HighlightRect is the hole boundary (target rect plus visual padding).
	HighlightRect geometry.Rect
	// HighlightShape is the hole shape, for surfaces that stroke the border
	// themselves.
	HighlightShape Shape
	// BorderColor and BorderWidth describe the highlight outline; a zero
	// width means no border.
	BorderColor render.Color
	BorderWidth float64
}

// Composer orchestrates one highlight: it resolves the target's geometry,
// builds the backdrop mask, and scales blur and opacity by the fade driver.
//
// Each composer owns its own driver; the only cross-highlight coordination
// is the externally supplied active key passed to Compose. All methods are
// synchronous and must be called from the frame/UI goroutine.
type Composer struct {
	key    any
	cfg    Config
	driver *animation.Driver
	blur   *animation.Tween[float64]
	alpha  *animation.Tween[float64]

	lastTick time.Time
}

// NewComposer validates cfg and creates the composer for the highlight
// identified by key. An out-of-range OverlayOpacity (or BlurSigma,
// VisualPadding, CornerOverride) fails fast with a ConfigurationError.
func NewComposer(key any, cfg Config) (*Composer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	driver := animation.NewDriver(cfg.Duration)
	if cfg.Curve != nil {
		driver.Curve = cfg.Curve
	}
	return &Composer{
		key:    key,
		cfg:    cfg,
		driver: driver,
		blur:   animation.TweenFloat64(0, cfg.BlurSigma),
		alpha:  animation.TweenFloat64(0, cfg.OverlayOpacity),
	}, nil
}

// Key returns the correlation key this composer was created with.
func (c *Composer) Key() any {
	return c.key
}

// Compose recomputes the draw plan for the current frame.
//
// visible is true only when activeKey equals this composer's key. When
// false, or when the target is not yet measured, the fade reverses (resuming
// from its current progress) and no plan is emitted. When true, the fade
// runs forward and the plan carries the mask for the resolved target.
//
// Compose mutates only the driver's direction; with identical inputs and an
// unchanged driver it returns identical plans.
func (c *Composer) Compose(activeKey any, target *geometry.Rect, viewport geometry.Size) (Plan, bool) {
	if activeKey != c.key {
		c.driver.Reverse()
		return Plan{}, false
	}

	rect, err := ResolveTarget(target, c.cfg.Padding, viewport)
	if err != nil {
		// Layout has not measured the target yet. Not a fault: stay
		// invisible and let the next frame recompute.
		return Plan{}, false
	}

	c.driver.Forward()

	shape := c.cfg.effectiveShape()
	return Plan{
		Backdrop:       BuildMask(rect, shape, c.cfg.VisualPadding, viewport),
		BlurSigma:      c.blur.Transform(c.driver),
		OverlayColor:   c.cfg.OverlayColor,
		OverlayAlpha:   c.alpha.Transform(c.driver),
		HighlightRect:  HoleRect(rect, c.cfg.VisualPadding),
		HighlightShape: shape,
		BorderColor:    c.cfg.BorderColor,
		BorderWidth:    c.cfg.BorderWidth,
	}, true
}

// Activate starts or continues the fade-in. Compose does this implicitly
// when the active key matches; sequencers that manage lifecycle explicitly
// can call it directly.
func (c *Composer) Activate() {
	c.driver.Forward()
}

// Deactivate starts or continues the fade-out from the current progress.
func (c *Composer) Deactivate() {
	c.driver.Reverse()
}

// Advance moves the fade by dt. Call exactly once per frame with a
// monotonic elapsed-time sample; the composer never times itself.
func (c *Composer) Advance(dt time.Duration) {
	c.driver.Advance(dt)
}

// Tick advances the fade by the time elapsed since the previous Tick,
// sampled from the animation clock. The first Tick establishes the baseline
// and advances by zero. Frame loops that don't track deltas themselves can
// call this instead of Advance.
func (c *Composer) Tick() {
	now := animation.Now()
	if c.lastTick.IsZero() {
		c.lastTick = now
		return
	}
	dt := now.Sub(c.lastTick)
	c.lastTick = now
	if dt > 0 {
		c.driver.Advance(dt)
	}
}

// Animating returns true while the fade is still moving.
func (c *Composer) Animating() bool {
	return c.driver.IsAnimating()
}

// FadeStatus returns the current fade driver status.
func (c *Composer) FadeStatus() animation.Status {
	return c.driver.Status()
}

// Dismiss forwards the outside-tap notification to the configured OnDismiss
// callback. It does not change visibility; deciding what becomes active next
// is the external sequencer's job.
func (c *Composer) Dismiss() {
	if c.cfg.OnDismiss != nil {
		c.cfg.OnDismiss()
	}
}

// Teardown releases the composer's animation state. The composer must not
// be used afterwards.
func (c *Composer) Teardown() {
	c.driver = nil
	c.blur = nil
	c.alpha = nil
}
