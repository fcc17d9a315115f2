// Package canvas has the 2D drawing helpers used to render game graphics
// server side.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so the curve approximates a
// quarter circle.
const kappa = 0.5522847498

// Path receives path-building commands. *vector.Rasterizer implements it.
type Path interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// Clear makes the (0, 0)-(width, height) area of dst fully transparent.
func Clear(dst draw.Image, width, height int) {
	b := dst.Bounds()
	r := image.Rect(0, 0, width, height).Add(b.Min).Intersect(b)
	draw.Draw(dst, r, image.Transparent, image.Point{}, draw.Src)
}

// RoundRect traces a rectangle whose corners are quarter circles of the given
// radius and closes the subpath. Nothing is painted; callers fill or stroke
// the path themselves. The radius is limited to half the shorter side.
func RoundRect(p Path, x, y, width, height, radius float32) {
	if radius < 0 {
		radius = 0
	}
	if m := min(width, height) / 2; radius > m {
		radius = m
	}
	r, k := radius, radius*kappa

	p.MoveTo(x+r, y)
	p.LineTo(x+width-r, y)
	p.CubeTo(x+width-r+k, y, x+width, y+r-k, x+width, y+r)
	p.LineTo(x+width, y+height-r)
	p.CubeTo(x+width, y+height-r+k, x+width-r+k, y+height, x+width-r, y+height)
	p.LineTo(x+r, y+height)
	p.CubeTo(x+r-k, y+height, x, y+height-r+k, x, y+height-r)
	p.LineTo(x, y+r)
	p.CubeTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
}

// FillRoundRect paints a rounded rectangle onto dst in color c, compositing
// over what is already there.
func FillRoundRect(dst draw.Image, x, y, width, height, radius float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	RoundRect(z, x, y, width, height, radius)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
