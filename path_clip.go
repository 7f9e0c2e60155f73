package geom

import (
	"log/slog"
	"math"
)

// Rectangle clipping.
//
// The path is clipped against the four half-planes of the rectangle in
// turn (Sutherland-Hodgman). Each segment is cut where it crosses the
// clip line; pieces on the inside are kept with their curvature, pieces on
// the outside are replaced by a line along the clip edge. Subpaths are
// treated as closed, as for filling.

// clipPlane is one half-plane of a clip rectangle.
type clipPlane struct {
	axis  int
	value float64
	above bool // inside when coordinate >= value
}

func (cp clipPlane) coord(pt Point) float64 {
	if cp.axis == axisX {
		return pt.X
	}
	return pt.Y
}

func (cp clipPlane) inside(v float64) bool {
	if cp.above {
		return v >= cp.value
	}
	return v <= cp.value
}

// clamp moves pt onto the clip line if it lies outside.
func (cp clipPlane) clamp(pt Point) Point {
	if cp.inside(cp.coord(pt)) {
		return pt
	}
	if cp.axis == axisX {
		pt.X = cp.value
	} else {
		pt.Y = cp.value
	}
	return pt
}

// clipRing is a closed subpath under construction.
type clipRing struct {
	start Point
	segs  []BezierCurve
}

// crossingEpsilon drops crossings that would produce slivers at segment
// ends.
const crossingEpsilon = 1e-9

// Intersect clips the path to r, replacing its contents with the part
// inside r. It returns false and leaves the path empty when nothing with
// positive area remains.
func (p *Path) Intersect(r Rect) bool {
	b := p.Bounds()
	if len(p.kinds) == 0 || !b.Intersects(r) {
		Logger().Debug("geom: intersect is empty", slog.String("bounds", b.String()), slog.String("clip", r.String()))
		p.Reset()
		return false
	}

	if p.shape == ShapeAxisRect {
		p.SetRect(b.Intersection(r), nil)
		return true
	}
	rings := p.clipRings()
	if r.ContainsRect(b) {
		if area := ringsArea(rings); area <= p.emptyEpsilon {
			Logger().Debug("geom: intersect left no area", slog.String("clip", r.String()), slog.Float64("area", area))
			p.Reset()
			return false
		}
		return true
	}

	planes := [4]clipPlane{
		{axis: axisX, value: r.X, above: true},
		{axis: axisX, value: r.Right()},
		{axis: axisY, value: r.Y, above: true},
		{axis: axisY, value: r.Bottom()},
	}
	for _, cp := range planes {
		for i := range rings {
			rings[i] = clipRingToPlane(rings[i], cp)
		}
	}

	if area := ringsArea(rings); area <= p.emptyEpsilon {
		Logger().Debug("geom: intersect left no area", slog.String("clip", r.String()), slog.Float64("area", area))
		p.Reset()
		return false
	}

	p.Reset()
	for _, ring := range rings {
		if len(ring.segs) == 0 {
			continue
		}
		p.MoveTo(ring.start.X, ring.start.Y)
		for _, c := range ring.segs {
			q := c.p
			switch c.degree {
			case Quadratic:
				p.QuadTo(q[1].X, q[1].Y, q[2].X, q[2].Y)
			case Cubic:
				p.CubicTo(q[1].X, q[1].Y, q[2].X, q[2].Y, q[3].X, q[3].Y)
			default:
				p.LineTo(q[1].X, q[1].Y)
			}
		}
		p.Close()
	}
	return true
}

// Intersection returns the part of the path inside r as a new path,
// leaving p unchanged. The result is empty when nothing with positive
// area remains.
func (p *Path) Intersection(r Rect) *Path {
	q := p.Clone()
	q.Intersect(r)
	return q
}

// clipRings converts the path to closed rings of curves.
func (p *Path) clipRings() []clipRing {
	var rings []clipRing
	p.walk(true, func(s walkSeg) {
		if s.kind == SegMoveTo {
			rings = append(rings, clipRing{start: s.pts[0]})
			return
		}
		if s.kind == SegClose && s.pts[0] == s.pts[1] {
			return
		}
		ring := &rings[len(rings)-1]
		ring.segs = append(ring.segs, s.curve())
	})
	return rings
}

// clipRingToPlane clips one closed ring against a half-plane.
func clipRingToPlane(ring clipRing, cp clipPlane) clipRing {
	out := clipRing{start: cp.clamp(ring.start)}
	cur := out.start

	var pieces []BezierCurve
	for _, seg := range ring.segs {
		pieces = splitAtPlane(seg, cp, pieces[:0])
		for _, pc := range pieces {
			if !cp.inside(cp.coord(pc.Eval(0.5))) {
				end := cp.clamp(pc.End())
				if end != cur {
					out.segs = append(out.segs, linearCurve(cur, end))
					cur = end
				}
				continue
			}
			// Pieces on the inside may still poke out by rounding near
			// the crossing; snap every control point into the plane.
			for i := 0; i <= int(pc.degree); i++ {
				pc.p[i] = cp.clamp(pc.p[i])
			}
			pc.p[0] = cur
			if pc.degree == Linear && pc.End() == cur {
				continue
			}
			out.segs = append(out.segs, pc)
			cur = pc.End()
		}
	}
	if cur != out.start {
		out.segs = append(out.segs, linearCurve(cur, out.start))
	}
	return out
}

// splitAtPlane cuts c wherever it crosses the clip line and appends the
// pieces to out.
func splitAtPlane(c BezierCurve, cp clipPlane, out []BezierCurve) []BezierCurve {
	rest := c
	prev := 0.0
	for _, t := range c.crossings(cp.axis, cp.value) {
		if t <= prev+crossingEpsilon || t >= 1-crossingEpsilon {
			continue
		}
		var piece BezierCurve
		piece, rest = rest.Split((t - prev) / (1 - prev))
		out = append(out, piece)
		prev = t
	}
	return append(out, rest)
}

// ringsArea sums the unsigned ring areas, so opposite windings do not
// cancel.
func ringsArea(rings []clipRing) float64 {
	var area float64
	for _, ring := range rings {
		area += math.Abs(ringArea(ring))
	}
	return area
}

// ringArea returns the signed area of a closed ring.
func ringArea(ring clipRing) float64 {
	var area float64
	for _, c := range ring.segs {
		area += segmentArea(c, SegLineTo)
	}
	return area
}
