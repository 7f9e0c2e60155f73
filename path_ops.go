package geom

import (
	"fmt"
	"math"
	"strings"
)

// Path operations for containment testing, area, flattening, arc length
// and reversal.

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns "nonzero" or "evenodd".
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return unknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r FillRule) MarshalText() ([]byte, error) {
	switch r {
	case FillRuleNonZero, FillRuleEvenOdd:
		return []byte(r.String()), nil
	}
	return nil, fmt.Errorf("%w: fill rule %d", ErrInvalidArgument, int(r))
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "nonzero"
// and "evenodd" in any case, with or without a hyphen.
func (r *FillRule) UnmarshalText(text []byte) error {
	switch strings.ReplaceAll(strings.ToLower(string(text)), "-", "") {
	case "nonzero":
		*r = FillRuleNonZero
	case "evenodd":
		*r = FillRuleEvenOdd
	default:
		return fmt.Errorf("%w: fill rule %q", ErrInvalidArgument, text)
	}
	return nil
}

// walkSeg is a drawing segment resolved to absolute control points.
// pts[0] is the start point. Close segments carry the closing line.
type walkSeg struct {
	kind SegmentKind
	pts  [4]Point
}

// curve returns the segment as a Bézier curve. Lines and closes become
// linear curves.
func (s walkSeg) curve() BezierCurve {
	switch s.kind {
	case SegQuadTo:
		return QuadraticCurve(s.pts[0], s.pts[1], s.pts[2])
	case SegCubicTo:
		return CubicCurve(s.pts[0], s.pts[1], s.pts[2], s.pts[3])
	default:
		return linearCurve(s.pts[0], s.pts[1])
	}
}

// walk calls fn for every segment. When closeOpen is set, subpaths left
// open get a synthetic Close before the next MoveTo and at the end, which
// is how fill operations treat them.
func (p *Path) walk(closeOpen bool, fn func(s walkSeg)) {
	var cur, start Point
	open := false
	closeSubpath := func() {
		if open && closeOpen {
			fn(walkSeg{kind: SegClose, pts: [4]Point{cur, start}})
		}
		open = false
	}

	i := 0
	for _, k := range p.kinds {
		c := p.coords[i : i+k.CoordCount()]
		i += len(c)
		switch k {
		case SegMoveTo:
			closeSubpath()
			start = Point{X: c[0], Y: c[1]}
			cur = start
			fn(walkSeg{kind: SegMoveTo, pts: [4]Point{start}})
		case SegLineTo:
			end := Point{X: c[0], Y: c[1]}
			fn(walkSeg{kind: SegLineTo, pts: [4]Point{cur, end}})
			cur = end
			open = true
		case SegQuadTo:
			end := Point{X: c[2], Y: c[3]}
			fn(walkSeg{kind: SegQuadTo, pts: [4]Point{cur, {X: c[0], Y: c[1]}, end}})
			cur = end
			open = true
		case SegCubicTo:
			end := Point{X: c[4], Y: c[5]}
			fn(walkSeg{kind: SegCubicTo, pts: [4]Point{cur, {X: c[0], Y: c[1]}, {X: c[2], Y: c[3]}, end}})
			cur = end
			open = true
		case SegClose:
			fn(walkSeg{kind: SegClose, pts: [4]Point{cur, start}})
			cur = start
			open = false
		}
	}
	closeSubpath()
}

// Contains reports whether (x, y) is inside the path under its fill rule.
// Open subpaths are treated as closed. Points exactly on a left or top
// edge are inside, points on a right or bottom edge are outside, matching
// Rect.Contains.
func (p *Path) Contains(x, y float64) bool {
	b := p.Bounds()
	if p.shape == ShapeAxisRect {
		return b.Contains(x, y)
	}
	if len(p.kinds) == 0 || x < b.X || x > b.Right() || y < b.Y || y > b.Bottom() {
		return false
	}

	w := p.Winding(x, y)
	if p.rule == FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Winding returns the winding number of (x, y) relative to the path.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right.
func (p *Path) Winding(x, y float64) int {
	pt := Point{X: x, Y: y}
	var winding int
	p.walk(true, func(s walkSeg) {
		switch s.kind {
		case SegLineTo, SegClose:
			winding += lineWinding(s.pts[0], s.pts[1], pt)
		case SegQuadTo, SegCubicTo:
			c := s.curve()
			if !windingCandidate(c, pt) {
				return
			}
			flattenCurve(c, p.tolerance, func(a, b Point) {
				winding += lineWinding(a, b, pt)
			})
		}
	})
	return winding
}

// windingCandidate rejects curves whose control hull cannot cross the
// ray from pt.
func windingCandidate(c BezierCurve, pt Point) bool {
	b := c.controlBounds()
	return pt.Y >= b.Y && pt.Y <= b.Bottom() && pt.X <= b.Right()
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// maxFlattenDepth bounds recursive subdivision for degenerate input.
const maxFlattenDepth = 16

// flattenCurve approximates c by chords no further than tol from the
// curve and calls fn for each chord in order.
func flattenCurve(c BezierCurve, tol float64, fn func(a, b Point)) {
	flattenRecursive(c, tol*tol, 0, fn)
}

func flattenRecursive(c BezierCurve, tolSq float64, depth int, fn func(a, b Point)) {
	if depth >= maxFlattenDepth || flatnessSq(c) <= tolSq {
		fn(c.Start(), c.End())
		return
	}
	left, right := c.Split(0.5)
	flattenRecursive(left, tolSq, depth+1, fn)
	flattenRecursive(right, tolSq, depth+1, fn)
}

// flatnessSq returns the squared maximum distance from the interior
// control points to the chord.
func flatnessSq(c BezierCurve) float64 {
	p0, pn := c.Start(), c.End()
	chord := pn.Sub(p0)
	lenSq := chord.Dot(chord)
	var worst float64
	for _, q := range c.p[1:c.degree] {
		d := q.Sub(p0)
		var distSq float64
		if lenSq == 0 {
			distSq = d.Dot(d)
		} else {
			cross := chord.Cross(d)
			distSq = cross * cross / lenSq
		}
		worst = math.Max(worst, distSq)
	}
	return worst
}

// Area returns the signed area enclosed by the path, treating open
// subpaths as closed. The sign follows the orientation: positive for
// counter-clockwise in y-up coordinates (clockwise on screen).
// Uses the shoelace formula extended for curves (Green's theorem).
func (p *Path) Area() float64 {
	var area float64
	p.walk(true, func(s walkSeg) {
		area += segmentArea(s.curve(), s.kind)
	})
	return area
}

// segmentArea is the signed area contribution of one segment.
func segmentArea(c BezierCurve, kind SegmentKind) float64 {
	if kind == SegMoveTo {
		return 0
	}
	p := c.p
	switch c.degree {
	case Quadratic:
		return quadArea(p[0], p[1], p[2])
	case Cubic:
		return cubicArea(p[0], p[1], p[2], p[3])
	default:
		return lineArea(p[0], p[1])
	}
}

// lineArea computes the contribution of a line segment to the signed area.
// Uses the shoelace formula: 0.5 * (x0*y1 - x1*y0)
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea integrates x·dy over a quadratic Bézier.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + p1.X*(-p0.Y+p2.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

// cubicArea integrates x·dy over a cubic Bézier (formula from kurbo).
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Length returns the approximate arc length of the drawn segments,
// including explicit Close lines.
func (p *Path) Length() float64 {
	var length float64
	p.walk(false, func(s walkSeg) {
		switch s.kind {
		case SegLineTo, SegClose:
			length += s.pts[0].Distance(s.pts[1])
		case SegQuadTo, SegCubicTo:
			flattenCurve(s.curve(), p.tolerance*0.1, func(a, b Point) {
				length += a.Distance(b)
			})
		}
	})
	return length
}

// Flatten converts the path to polylines, one per subpath, with curves
// replaced by chords within tolerance. A closed subpath ends with its start
// point repeated. Non-positive tolerance uses the path's configured value.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = p.tolerance
	}
	var out [][]Point
	var line []Point
	p.walk(false, func(s walkSeg) {
		switch s.kind {
		case SegMoveTo:
			if len(line) > 0 {
				out = append(out, line)
			}
			line = []Point{s.pts[0]}
		case SegLineTo, SegClose:
			line = append(line, s.pts[1])
		case SegQuadTo, SegCubicTo:
			flattenCurve(s.curve(), tolerance, func(_, b Point) {
				line = append(line, b)
			})
		}
	})
	if len(line) > 0 {
		out = append(out, line)
	}
	return out
}

// Reversed returns a new path with every subpath traced backwards.
// Subpath order is kept, closed subpaths stay closed.
func (p *Path) Reversed() *Path {
	result := NewPath(WithFillRule(p.rule), WithTolerance(p.tolerance))

	var segs []walkSeg
	var closed bool
	flush := func() {
		if len(segs) == 0 {
			return
		}
		reverseSubpath(result, segs, closed)
		segs = segs[:0]
		closed = false
	}

	p.walk(false, func(s walkSeg) {
		switch s.kind {
		case SegMoveTo:
			flush()
			segs = append(segs, s)
		case SegClose:
			segs = append(segs, s)
			closed = true
			flush()
		default:
			segs = append(segs, s)
		}
	})
	flush()
	return result
}

// reverseSubpath appends one subpath, given as MoveTo followed by its
// segments, in reverse order.
func reverseSubpath(result *Path, segs []walkSeg, closed bool) {
	last := segs[len(segs)-1]
	end := last.pts[0]
	switch last.kind {
	case SegMoveTo, SegClose:
		// a Close returns to the start; the drawn part ends at its pts[0]
	case SegLineTo:
		end = last.pts[1]
	case SegQuadTo:
		end = last.pts[2]
	case SegCubicTo:
		end = last.pts[3]
	}
	if closed {
		// Closing line first, so the reversed path retraces it last.
		end = segs[0].pts[0]
	}
	result.MoveTo(end.X, end.Y)

	for i := len(segs) - 1; i >= 1; i-- {
		s := segs[i]
		switch s.kind {
		case SegLineTo:
			result.LineTo(s.pts[0].X, s.pts[0].Y)
		case SegQuadTo:
			result.QuadTo(s.pts[1].X, s.pts[1].Y, s.pts[0].X, s.pts[0].Y)
		case SegCubicTo:
			result.CubicTo(s.pts[2].X, s.pts[2].Y, s.pts[1].X, s.pts[1].Y, s.pts[0].X, s.pts[0].Y)
		case SegClose:
			if s.pts[0] != s.pts[1] {
				result.LineTo(s.pts[0].X, s.pts[0].Y)
			}
		}
	}
	if closed {
		result.Close()
	}
}
