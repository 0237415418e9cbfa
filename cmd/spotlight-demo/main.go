// Command spotlight-demo is an interactive terminal walkthrough built on the
// spotlight engine. Three mock widgets are drawn on screen; the engine dims
// everything except the active one and animates the transition between steps.
//
// Keys: n/space/tab next step, p previous, q/Esc quit. Clicking outside the
// highlighted hole fires the dismiss notification, which advances the tour.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/raster"
	"github.com/fedpinx/spotlight/pkg/render"
	"github.com/fedpinx/spotlight/pkg/spotlight"
)

const frameInterval = 33 * time.Millisecond // ~30 FPS

// widget is a mock UI element the tour highlights. Bounds are recomputed
// from the current screen size so resizing re-anchors the tour.
type widget struct {
	label  string
	bounds func(w, h int) geometry.Rect
}

var widgets = []widget{
	{
		label: " Compose ",
		bounds: func(w, h int) geometry.Rect {
			return geometry.RectFromLTWH(4, 2, 13, 3)
		},
	},
	{
		label: " Search ",
		bounds: func(w, h int) geometry.Rect {
			return geometry.RectFromLTWH(float64(w)-20, 2, 12, 3)
		},
	},
	{
		label: " Send ",
		bounds: func(w, h int) geometry.Rect {
			return geometry.RectFromLTWH(float64(w)/2-5, float64(h)-5, 10, 3)
		},
	},
}

// step pairs a widget with the composer that highlights it.
type step struct {
	key      string
	hint     string
	widget   int
	composer *spotlight.Composer
}

type Demo struct {
	screen        tcell.Screen
	width, height int
	steps         []*step
	active        int
}

func NewDemo() (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	d := &Demo{screen: screen}
	d.width, d.height = screen.Size()

	theme, err := spotlight.LoadTheme(".")
	if err != nil {
		screen.Fini()
		return nil, err
	}

	specs := []struct {
		key, hint string
		widget    int
		shape     spotlight.Shape
	}{
		{"compose", "Start a new message here.", 0, spotlight.RoundedRectUniform(2)},
		{"search", "Find anything with search.", 1, spotlight.Circle()},
		{"send", "When you're done, hit send.", 2, spotlight.RoundedRectUniform(1)},
	}
	for i, s := range specs {
		cfg := spotlight.Config{
			Shape:         s.shape,
			Padding:       geometry.InsetsAll(1),
			VisualPadding: 1,
			OverlayColor:  render.RGB(0, 0, 0),
			Duration:      300 * time.Millisecond,
			OnDismiss: func() {
				d.advanceFrom(i)
			},
		}
		cfg, err := theme.ApplyTo(cfg)
		if err != nil {
			screen.Fini()
			return nil, err
		}
		composer, err := spotlight.NewComposer(s.key, cfg)
		if err != nil {
			screen.Fini()
			return nil, err
		}
		d.steps = append(d.steps, &step{
			key:      s.key,
			hint:     s.hint,
			widget:   s.widget,
			composer: composer,
		})
	}
	return d, nil
}

// advanceFrom moves to the next step if i is still the active one. Called
// from the dismiss notification; the sequencing decision lives here, not in
// the engine.
func (d *Demo) advanceFrom(i int) {
	if d.active == i {
		d.next()
	}
}

func (d *Demo) next() {
	if d.active < len(d.steps)-1 {
		d.active++
	} else {
		d.active = -1 // tour finished
	}
}

func (d *Demo) prev() {
	if d.active > 0 {
		d.active--
	}
}

func (d *Demo) activeKey() any {
	if d.active < 0 || d.active >= len(d.steps) {
		return nil
	}
	return d.steps[d.active].key
}

func (d *Demo) draw() {
	d.screen.Clear()
	viewport := geometry.Size{Width: float64(d.width), Height: float64(d.height)}

	// Base "application" content.
	base := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for _, w := range widgets {
		drawBox(d.screen, w.bounds(d.width, d.height), w.label, base)
	}
	footer := "n: next  p: prev  q: quit  (click outside the hole to dismiss)"
	drawText(d.screen, 2, d.height-1, footer, tcell.StyleDefault.Foreground(tcell.ColorGray))

	activeKey := d.activeKey()
	for _, s := range d.steps {
		s.composer.Tick()
		bounds := widgets[s.widget].bounds(d.width, d.height)
		plan, visible := s.composer.Compose(activeKey, &bounds, viewport)
		if !visible {
			continue
		}
		d.drawOverlay(plan, viewport)
		hintY := int(plan.HighlightRect.Bottom) + 1
		if hintY >= d.height-1 {
			hintY = int(plan.HighlightRect.Top) - 1
		}
		drawText(d.screen, int(plan.HighlightRect.Left), hintY, s.hint,
			tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	d.screen.Show()
}

// drawOverlay dims every cell the backdrop mask covers, using the
// rasterizer at cell resolution, then strokes the highlight border.
func (d *Demo) drawOverlay(plan spotlight.Plan, viewport geometry.Size) {
	img := raster.Rasterize(plan, viewport)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			coverage := float64(img.RGBAAt(x, y).A) / 255
			if coverage < 0.05 {
				continue
			}
			ch, _, style, _ := d.screen.GetContent(x, y)
			if coverage > 0.6 {
				style = style.Foreground(tcell.ColorDarkSlateGray).Dim(true)
			} else {
				style = style.Dim(true)
			}
			d.screen.SetContent(x, y, ch, nil, style)
		}
	}

	// Stroke the highlight outline once the fade has started.
	if plan.OverlayAlpha > 0 {
		drawBorder(d.screen, plan.HighlightRect, plan.HighlightShape,
			tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
}

func (d *Demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			d.next()
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'n', ' ':
				d.next()
			case 'p':
				d.prev()
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			break
		}
		if d.active < 0 {
			break
		}
		s := d.steps[d.active]
		bounds := widgets[s.widget].bounds(d.width, d.height)
		viewport := geometry.Size{Width: float64(d.width), Height: float64(d.height)}
		plan, visible := s.composer.Compose(d.activeKey(), &bounds, viewport)
		if !visible {
			break
		}
		x, y := ev.Position()
		click := geometry.Offset{X: float64(x), Y: float64(y)}
		if !plan.HighlightRect.Contains(click) {
			s.composer.Dismiss()
		}

	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
		d.screen.Sync()
	}
	return true
}

func (d *Demo) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !d.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			d.draw()
		}
	}
}

func drawBox(screen tcell.Screen, r geometry.Rect, label string, style tcell.Style) {
	left, top := int(r.Left), int(r.Top)
	right, bottom := int(r.Right)-1, int(r.Bottom)-1
	for x := left; x <= right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top; y <= bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	drawText(screen, left+1, (top+bottom)/2, label, style)
}

// drawBorder strokes the highlight outline around the hole rect. Rounded
// shapes get rounded corner glyphs.
func drawBorder(screen tcell.Screen, r geometry.Rect, shape spotlight.Shape, style tcell.Style) {
	left, top := int(r.Left), int(r.Top)
	right, bottom := int(r.Right), int(r.Bottom)
	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	ul, ur, ll, lr := tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner
	if shape.Kind == spotlight.ShapeCircle {
		ul, ur, ll, lr = '╭', '╮', '╰', '╯'
	}
	screen.SetContent(left, top, ul, nil, style)
	screen.SetContent(right, top, ur, nil, style)
	screen.SetContent(left, bottom, ll, nil, style)
	screen.SetContent(right, bottom, lr, nil, style)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func main() {
	demo, err := NewDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spotlight-demo: %v\n", err)
		os.Exit(1)
	}
	defer demo.screen.Fini()

	demo.run()
}
