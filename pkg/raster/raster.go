// Package raster renders a composer's draw plan into an image using a
// software scanline rasterizer. It is the reference compositing surface:
// the demo frontend samples it per cell, and tests use it to verify the
// mask at pixel level. GPU-backed hosts composite the plan themselves.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/fedpinx/spotlight/pkg/geometry"
	"github.com/fedpinx/spotlight/pkg/render"
	"github.com/fedpinx/spotlight/pkg/spotlight"
)

// FillPath fills path with the given color into an image of the given size.
// Subpath winding follows the path's commands; the backdrop mask winds its
// hole opposite the outer rect, so the clamped-winding fill leaves the hole
// blank.
func FillPath(path *render.Path, fill render.Color, size geometry.Size) *image.RGBA {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if path == nil || path.IsEmpty() || w <= 0 || h <= 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	var startX, startY float32
	var curX, curY float32
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case render.PathOpMoveTo:
			curX, curY = float32(cmd.Args[0]), float32(cmd.Args[1])
			startX, startY = curX, curY
			z.MoveTo(curX, curY)
		case render.PathOpLineTo:
			curX, curY = float32(cmd.Args[0]), float32(cmd.Args[1])
			z.LineTo(curX, curY)
		case render.PathOpQuadTo:
			curX, curY = float32(cmd.Args[2]), float32(cmd.Args[3])
			z.QuadTo(float32(cmd.Args[0]), float32(cmd.Args[1]), curX, curY)
		case render.PathOpCubicTo:
			curX, curY = float32(cmd.Args[4]), float32(cmd.Args[5])
			z.CubeTo(
				float32(cmd.Args[0]), float32(cmd.Args[1]),
				float32(cmd.Args[2]), float32(cmd.Args[3]),
				curX, curY,
			)
		case render.PathOpClose:
			z.ClosePath()
			curX, curY = startX, startY
		}
	}

	r, g, b, a := fill.RGBAF()
	src := image.NewUniform(color.NRGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: uint8(math.Round(a * 255)),
	})
	z.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// Rasterize renders plan's backdrop into an image of the viewport size:
// every pixel outside the hole carries the overlay color at the plan's
// current alpha, pixels inside the hole stay transparent, and boundary
// pixels are antialiased in between.
//
// Blur is not applied here; BlurSigma is carried for hosts whose surfaces
// blur the content behind the backdrop.
func Rasterize(plan spotlight.Plan, viewport geometry.Size) *image.RGBA {
	fill := plan.OverlayColor.WithAlpha(plan.OverlayAlpha)
	return FillPath(plan.Backdrop, fill, viewport)
}
