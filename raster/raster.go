// Package raster draws geom paths with golang.org/x/image/vector.
//
// The package only translates segments; coverage accumulation and
// compositing are done by vector.Rasterizer. Paths are read through
// geom.PathIterator, so any path that can be iterated can be drawn.
//
// Usage:
//
//	p := geom.NewPath().Circle(32, 32, 20)
//	mask := raster.Fill(p, 64, 64)
package raster

import (
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/vector"

	"github.com/gogpu/geom"
)

// Segments is the subset of geom.PathIterator the rasterizer consumes.
type Segments interface {
	IsDone() bool
	Next()
	CurrentSegment(coords []float64) geom.SegmentKind
}

// Fill rasterizes p into a new w×h coverage mask. Path coordinates are
// pixel coordinates; anything outside [0,w)×[0,h) is clipped.
func Fill(p *geom.Path, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || p.IsEmpty() {
		return mask
	}
	z := vector.NewRasterizer(w, h)
	warnFillRule(p)
	Add(z, p.Iterator(), 0, 0)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Draw composites src onto dst through the coverage of p, using the
// Porter-Duff over operator. The path is in dst's coordinate space and
// src is aligned with dst's origin.
func Draw(dst draw.Image, p *geom.Path, src image.Image) {
	b := dst.Bounds()
	if b.Empty() || p.IsEmpty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	warnFillRule(p)
	Add(z, p.Iterator(), -float32(b.Min.X), -float32(b.Min.Y))
	z.Draw(dst, b, src, b.Min)
}

// PixelBounds returns the smallest pixel rectangle covering the path's
// bounds. An empty path yields the zero rectangle.
func PixelBounds(p *geom.Path) image.Rectangle {
	if p.IsEmpty() {
		return image.Rectangle{}
	}
	r := p.Bounds().Fixed()
	return image.Rect(r.Min.X.Floor(), r.Min.Y.Floor(), r.Max.X.Ceil(), r.Max.Y.Ceil())
}

// Add feeds segments into z, offsetting every point by (dx, dy). Open
// subpaths are closed before the next MoveTo and at the end, since the
// rasterizer fills what it is given. Drawing after a Close continues
// from the subpath start and reopens it.
func Add(z *vector.Rasterizer, it Segments, dx, dy float32) {
	var c [6]float64
	pt := func(i int) (float32, float32) {
		return float32(c[i]) + dx, float32(c[i+1]) + dy
	}
	open := false
	for ; !it.IsDone(); it.Next() {
		switch it.CurrentSegment(c[:]) {
		case geom.SegMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(0))
			open = true
		case geom.SegLineTo:
			z.LineTo(pt(0))
			open = true
		case geom.SegQuadTo:
			x1, y1 := pt(0)
			x2, y2 := pt(2)
			z.QuadTo(x1, y1, x2, y2)
			open = true
		case geom.SegCubicTo:
			x1, y1 := pt(0)
			x2, y2 := pt(2)
			x3, y3 := pt(4)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
			open = true
		case geom.SegClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

func warnFillRule(p *geom.Path) {
	if p.FillRule() == geom.FillRuleEvenOdd {
		geom.Logger().Debug("raster: even-odd fill rule not supported, using non-zero coverage",
			slog.Int("segments", p.Len()))
	}
}
