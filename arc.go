package geom

import (
	"log/slog"
	"math"
)

// Arc angles in Arc and ArcTo follow the screen convention of a y-down
// canvas: 0 points at 3 o'clock and positive sweeps turn counter-clockwise
// as seen on screen.

// arcJoinEpsilon is the distance below which a joined arc starts at the
// current point instead of drawing a connecting line.
const arcJoinEpsilon = 1e-9

// EllipticalArc splits the arc of the ellipse centered at c into cubic
// Bézier curves spanning at most a quarter turn each and passes them to
// cubic in order. The ellipse has radii rx, ry and is rotated by rot
// radians; the arc runs from parametric angle theta through delta, both
// measured in the ellipse's own y-down frame. The last curve ends exactly
// at end.
func EllipticalArc(c Point, rx, ry, rot, theta, delta float64, end Point, cubic func(c1, c2, to Point)) {
	n := max(int(math.Ceil(math.Abs(delta)/(math.Pi/2)-1e-9)), 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	sin, cos := math.Sincos(rot)

	at := func(t float64) (pt, d Point) {
		st, ct := math.Sincos(t)
		pt = Pt(c.X+rx*cos*ct-ry*sin*st, c.Y+rx*sin*ct+ry*cos*st)
		d = Pt(-rx*cos*st-ry*sin*ct, -rx*sin*st+ry*cos*ct)
		return pt, d
	}

	from, d0 := at(theta)
	for i := 1; i <= n; i++ {
		to, d1 := at(theta + float64(i)*step)
		if i == n {
			to = end
		}
		cubic(from.Add(d0.Mul(k)), to.Sub(d1.Mul(k)), to)
		from, d0 = to, d1
	}
}

// ellipsePoint returns the point at screen angle a on the axis-aligned
// ellipse centered at c.
func ellipsePoint(c Point, rx, ry, a float64) Point {
	s, co := math.Sincos(a)
	return Pt(c.X+rx*co, c.Y-ry*s)
}

// Arc adds an arc of the ellipse inscribed in the rectangle (x, y, w, h),
// starting at angle start and turning through sweep, in radians. A sweep
// beyond a full turn is clamped to one turn.
//
// With join set and a current point, the arc is connected to the path by a
// line; otherwise it begins a new subpath.
func (p *Path) Arc(x, y, w, h, start, sweep float64, join bool) *Path {
	sweep = math.Max(-2*math.Pi, math.Min(sweep, 2*math.Pi))
	c := Pt(x+w/2, y+h/2)
	rx, ry := w/2, h/2

	from := ellipsePoint(c, rx, ry, start)
	switch {
	case !join || !p.hasCursor:
		p.MoveTo(from.X, from.Y)
	case !p.cursor.ApproxEqual(from, arcJoinEpsilon):
		p.LineTo(from.X, from.Y)
	}
	if sweep == 0 {
		return p
	}

	end := ellipsePoint(c, rx, ry, start+sweep)
	if math.Abs(sweep) == 2*math.Pi {
		end = p.cursor
	}
	// Screen angles run opposite to the y-down parametric angle.
	EllipticalArc(c, rx, ry, 0, -start, -sweep, end, func(c1, c2, to Point) {
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	})
	return p
}

// ArcTo draws a circular arc around (cx, cy) from the current point to
// (x, y), counter-clockwise on screen unless clockwise is set. The radius
// is the distance from the center to (x, y); when the current point lies
// on a different radius, a line joins it to the arc. An arc ending where
// it starts adds nothing.
//
// It panics with an error wrapping ErrNoCurrentPoint if the path has no
// current point.
func (p *Path) ArcTo(cx, cy, x, y float64, clockwise bool) *Path {
	p.requireCursor("ArcTo")
	c := Pt(cx, cy)
	from, end := p.cursor, Pt(x, y)
	if from == end {
		return p
	}

	r := c.Distance(end)
	if r == 0 {
		return p.LineTo(x, y)
	}
	if d := math.Abs(c.Distance(from) - r); d > 1e-6*r {
		Logger().Debug("geom: ArcTo endpoints on different radii",
			slog.String("center", c.String()), slog.Float64("mismatch", d))
	}

	a0 := math.Atan2(c.Y-from.Y, from.X-c.X)
	a1 := math.Atan2(c.Y-end.Y, end.X-c.X)
	sweep := a1 - a0
	if clockwise {
		for sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	}

	start := ellipsePoint(c, r, r, a0)
	if !from.ApproxEqual(start, arcJoinEpsilon) {
		p.LineTo(start.X, start.Y)
	}
	EllipticalArc(c, r, r, 0, -a0, -sweep, end, func(c1, c2, to Point) {
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	})
	return p
}

// RoundedRectangle adds a closed rectangle with corners rounded to radius
// r, drawn clockwise on screen like Rectangle. The radius is clamped to
// half the smaller side; a non-positive radius gives a plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) *Path {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return p.Rectangle(x, y, w, h)
	}
	d := 2 * r
	const quarter = math.Pi / 2

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-d, y, d, d, quarter, -quarter, true)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-d, y+h-d, d, d, 0, -quarter, true)
	p.LineTo(x+r, y+h)
	p.Arc(x, y+h-d, d, d, -quarter, -quarter, true)
	p.LineTo(x, y+r)
	p.Arc(x, y, d, d, math.Pi, -quarter, true)
	return p.Close()
}
