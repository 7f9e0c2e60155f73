package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Conversions to and from 26.6 fixed-point, the coordinate format of
// golang.org/x/image font and vector code.

// toFixed rounds v to the nearest 1/64.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Fixed returns p rounded to 26.6 fixed-point.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// PointFromFixed converts a 26.6 fixed-point point.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

// Fixed returns r as a 26.6 fixed-point rectangle, rounding each edge
// outwards so the result still covers r.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{
			X: fixed.Int26_6(math.Floor(r.X * 64)),
			Y: fixed.Int26_6(math.Floor(r.Y * 64)),
		},
		Max: fixed.Point26_6{
			X: fixed.Int26_6(math.Ceil(r.Right() * 64)),
			Y: fixed.Int26_6(math.Ceil(r.Bottom() * 64)),
		},
	}
}

// RectFromFixed converts a 26.6 fixed-point rectangle. An inverted input
// yields zero width or height.
func RectFromFixed(r fixed.Rectangle26_6) Rect {
	x0, y0 := fromFixed(r.Min.X), fromFixed(r.Min.Y)
	return Rect{
		X: x0,
		Y: y0,
		W: math.Max(fromFixed(r.Max.X)-x0, 0),
		H: math.Max(fromFixed(r.Max.Y)-y0, 0),
	}
}
