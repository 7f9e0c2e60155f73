package geom

import (
	"fmt"
	"math"
	"slices"
)

// Degree is the polynomial degree of a BezierCurve.
type Degree int

const (
	// Linear is a straight segment with two control points. Only produced
	// internally, e.g. while clipping lines.
	Linear Degree = 1

	// Quadratic has three control points.
	Quadratic Degree = 2

	// Cubic has four control points.
	Cubic Degree = 3
)

// String returns a human-readable name for the degree.
func (d Degree) String() string {
	switch d {
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	default:
		return unknownStr
	}
}

func (d Degree) valid() bool {
	return d >= Linear && d <= Cubic
}

// segmentEpsilon is the parameter distance under which rectangle crossings
// are merged, and within which a crossing near an endpoint is ignored.
const segmentEpsilon = 0.01

// edgeTolerance widens edge extents so crossings exactly at a corner count.
const edgeTolerance = 1e-9

// BezierCurve is an immutable Bézier curve of degree 1 to 3.
//
// The zero value has no valid degree; operations that need the degree
// either report ErrUnsupportedDegree or treat it as a single point.
type BezierCurve struct {
	degree Degree
	p      [4]Point
}

// NewBezierCurve builds a curve from alternating x,y coordinates.
// Six coordinates make a quadratic curve, eight a cubic one; any other
// count is rejected with an error wrapping ErrCoordinateCount.
func NewBezierCurve(coords ...float64) (BezierCurve, error) {
	var c BezierCurve
	switch len(coords) {
	case 6:
		c.degree = Quadratic
	case 8:
		c.degree = Cubic
	default:
		return BezierCurve{}, fmt.Errorf("%w: got %d, want 6 or 8", ErrCoordinateCount, len(coords))
	}
	for i := 0; i <= int(c.degree); i++ {
		c.p[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return c, nil
}

// QuadraticCurve returns the quadratic curve p0, p1, p2.
func QuadraticCurve(p0, p1, p2 Point) BezierCurve {
	return BezierCurve{degree: Quadratic, p: [4]Point{p0, p1, p2}}
}

// CubicCurve returns the cubic curve p0, p1, p2, p3.
func CubicCurve(p0, p1, p2, p3 Point) BezierCurve {
	return BezierCurve{degree: Cubic, p: [4]Point{p0, p1, p2, p3}}
}

func linearCurve(p0, p1 Point) BezierCurve {
	return BezierCurve{degree: Linear, p: [4]Point{p0, p1}}
}

// Degree returns the curve's degree.
func (c BezierCurve) Degree() Degree { return c.degree }

// Points returns a copy of the control points, start first.
func (c BezierCurve) Points() []Point {
	if !c.degree.valid() {
		return nil
	}
	return slices.Clone(c.p[:c.degree+1])
}

// Start returns control point 0.
func (c BezierCurve) Start() Point { return c.p[0] }

// End returns the last control point.
func (c BezierCurve) End() Point {
	if !c.degree.valid() {
		return c.p[0]
	}
	return c.p[c.degree]
}

// Control point coordinate selectors.
const (
	axisX = 0
	axisY = 1
)

// poly holds power-basis coefficients c[0] + c[1]·t + ... + c[n]·tⁿ.
type poly struct {
	c [4]float64
	n int
}

func (p poly) eval(t float64) float64 {
	v := p.c[p.n]
	for i := p.n - 1; i >= 0; i-- {
		v = v*t + p.c[i]
	}
	return v
}

func (p poly) coeffs() []float64 {
	return p.c[:p.n+1]
}

// poly converts one axis of the control polygon to power basis.
func (c BezierCurve) poly(axis int) poly {
	var v [4]float64
	for i := range v {
		if axis == axisX {
			v[i] = c.p[i].X
		} else {
			v[i] = c.p[i].Y
		}
	}
	switch c.degree {
	case Linear:
		return poly{c: [4]float64{v[0], v[1] - v[0]}, n: 1}
	case Quadratic:
		return poly{c: [4]float64{v[0], 2 * (v[1] - v[0]), v[2] - 2*v[1] + v[0]}, n: 2}
	case Cubic:
		return poly{c: [4]float64{
			v[0],
			3 * (v[1] - v[0]),
			3 * (v[2] - 2*v[1] + v[0]),
			v[3] - 3*v[2] + 3*v[1] - v[0],
		}, n: 3}
	}
	return poly{c: [4]float64{v[0]}}
}

// X evaluates the x coordinate at t. Any t is accepted; values outside
// [0, 1] extend the polynomial.
func (c BezierCurve) X(t float64) float64 { return c.poly(axisX).eval(t) }

// Y evaluates the y coordinate at t.
func (c BezierCurve) Y(t float64) float64 { return c.poly(axisY).eval(t) }

// Eval evaluates the curve at t.
func (c BezierCurve) Eval(t float64) Point {
	return Point{X: c.X(t), Y: c.Y(t)}
}

// DerivativeCoefficientsX returns the coefficients of dx/dt in increasing
// powers of t. For a cubic they are 3(P1−P0), 6(P2−2P1+P0) and
// 3(P3−3P2+3P1−P0).
func (c BezierCurve) DerivativeCoefficientsX() ([]float64, error) {
	return c.derivative(axisX)
}

// DerivativeCoefficientsY is DerivativeCoefficientsX for the y axis.
func (c BezierCurve) DerivativeCoefficientsY() ([]float64, error) {
	return c.derivative(axisY)
}

func (c BezierCurve) derivative(axis int) ([]float64, error) {
	if !c.degree.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDegree, int(c.degree))
	}
	p := c.poly(axis)
	out := make([]float64, p.n)
	for i := range out {
		out[i] = float64(i+1) * p.c[i+1]
	}
	return out, nil
}

// Tangent returns the first derivative at t. It is the zero vector for the
// zero-value curve.
func (c BezierCurve) Tangent(t float64) Point {
	dx, err := c.DerivativeCoefficientsX()
	if err != nil {
		return Point{}
	}
	dy, _ := c.DerivativeCoefficientsY()
	return Point{X: evalCoeffs(dx, t), Y: evalCoeffs(dy, t)}
}

func evalCoeffs(c []float64, t float64) float64 {
	var v float64
	for i := len(c) - 1; i >= 0; i-- {
		v = v*t + c[i]
	}
	return v
}

// FindTValuesForY writes the parameters t in [tMin, tMax] where y(t) == y
// into out, in ascending order, and returns how many were written. A
// tangential (double) root is reported once. Zero is a normal result.
func (c BezierCurve) FindTValuesForY(y, tMin, tMax float64, out []float64) int {
	return c.findTValues(axisY, y, tMin, tMax, out)
}

// FindTValuesForX is FindTValuesForY for vertical lines x == const.
func (c BezierCurve) FindTValuesForX(x, tMin, tMax float64, out []float64) int {
	return c.findTValues(axisX, x, tMin, tMax, out)
}

func (c BezierCurve) findTValues(axis int, v, tMin, tMax float64, out []float64) int {
	n := 0
	for _, t := range rootsInRange(c.crossings(axis, v), tMin, tMax) {
		if n == len(out) {
			break
		}
		out[n] = t
		n++
	}
	return n
}

// crossings returns every real t with coordinate(axis, t) == v, sorted.
// A curve lying on the line everywhere has no isolated crossings.
func (c BezierCurve) crossings(axis int, v float64) []float64 {
	p := c.poly(axis)
	p.c[0] -= v
	coeffs := p.coeffs()
	for len(coeffs) > 1 && coeffs[len(coeffs)-1] == 0 {
		coeffs = coeffs[:len(coeffs)-1]
	}
	if len(coeffs) < 2 {
		return nil
	}
	return solvePolynomial(coeffs)
}

// Split cuts the curve at t with de Casteljau's construction. Both halves
// have the curve's degree and share the exact same split point; left starts
// at c.Start() and right ends at c.End().
func (c BezierCurve) Split(t float64) (left, right BezierCurve) {
	left.degree, right.degree = c.degree, c.degree
	p := c.p
	switch c.degree {
	case Linear:
		m := p[0].Lerp(p[1], t)
		left.p = [4]Point{p[0], m}
		right.p = [4]Point{m, p[1]}
	case Quadratic:
		a := p[0].Lerp(p[1], t)
		b := p[1].Lerp(p[2], t)
		m := a.Lerp(b, t)
		left.p = [4]Point{p[0], a, m}
		right.p = [4]Point{m, b, p[2]}
	case Cubic:
		a := p[0].Lerp(p[1], t)
		b := p[1].Lerp(p[2], t)
		e := p[2].Lerp(p[3], t)
		ab := a.Lerp(b, t)
		be := b.Lerp(e, t)
		m := ab.Lerp(be, t)
		left.p = [4]Point{p[0], a, ab, m}
		right.p = [4]Point{m, be, e, p[3]}
	default:
		left.p, right.p = p, p
	}
	return left, right
}

// Segment splits the curve at t and appends both halves to out.
func (c BezierCurve) Segment(t float64, out []BezierCurve) []BezierCurve {
	left, right := c.Split(t)
	return append(out, left, right)
}

// SegmentRect cuts the curve wherever it crosses an edge of r and appends
// the pieces to out in order, so that every piece lies either inside or
// outside r. Crossings closer than 0.01 in t are merged and crossings
// within 0.01 of either end are ignored. A curve that never crosses an
// edge is appended unchanged as the only piece.
func (c BezierCurve) SegmentRect(r Rect, out []BezierCurve) []BezierCurve {
	ts := c.rectCrossings(r)
	if len(ts) == 0 {
		return append(out, c)
	}

	rest := c
	prev := 0.0
	for _, t := range ts {
		var piece BezierCurve
		piece, rest = rest.Split((t - prev) / (1 - prev))
		out = append(out, piece)
		prev = t
	}
	return append(out, rest)
}

// rectCrossings returns the sorted, merged parameters where the curve
// crosses one of r's edges within the edge's extent.
func (c BezierCurve) rectCrossings(r Rect) []float64 {
	var buf [3]float64
	ts := make([]float64, 0, 12)

	for _, x := range [2]float64{r.X, r.Right()} {
		n := c.FindTValuesForX(x, 0, 1, buf[:])
		for _, t := range buf[:n] {
			if y := c.Y(t); y >= r.Y-edgeTolerance && y <= r.Bottom()+edgeTolerance {
				ts = append(ts, t)
			}
		}
	}
	for _, y := range [2]float64{r.Y, r.Bottom()} {
		n := c.FindTValuesForY(y, 0, 1, buf[:])
		for _, t := range buf[:n] {
			if x := c.X(t); x >= r.X-edgeTolerance && x <= r.Right()+edgeTolerance {
				ts = append(ts, t)
			}
		}
	}

	slices.Sort(ts)
	out := ts[:0]
	for _, t := range ts {
		if t <= segmentEpsilon || t >= 1-segmentEpsilon {
			continue
		}
		if len(out) > 0 && t-out[len(out)-1] < segmentEpsilon {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Reverse returns the same curve traversed from end to start.
func (c BezierCurve) Reverse() BezierCurve {
	r := BezierCurve{degree: c.degree}
	if !c.degree.valid() {
		r.p = c.p
		return r
	}
	n := int(c.degree)
	for i := 0; i <= n; i++ {
		r.p[i] = c.p[n-i]
	}
	return r
}

// BoundingRect returns the tight axis-aligned bounds of the curve over
// t in [0, 1], including interior extrema.
func (c BezierCurve) BoundingRect() Rect {
	start, end := c.Start(), c.End()
	minX, maxX := math.Min(start.X, end.X), math.Max(start.X, end.X)
	minY, maxY := math.Min(start.Y, end.Y), math.Max(start.Y, end.Y)

	if dx, err := c.DerivativeCoefficientsX(); err == nil {
		for _, t := range rootsInRange(solvePolynomial(dx), 0, 1) {
			x := c.X(t)
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		}
	}
	if dy, err := c.DerivativeCoefficientsY(); err == nil {
		for _, t := range rootsInRange(solvePolynomial(dy), 0, 1) {
			y := c.Y(t)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// controlBounds returns the bounds of the control polygon.
func (c BezierCurve) controlBounds() Rect {
	minX, minY := c.p[0].X, c.p[0].Y
	maxX, maxY := minX, minY
	for _, p := range c.p[1 : c.degree+1] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (c BezierCurve) String() string {
	return fmt.Sprintf("%s%v", c.degree, c.Points())
}

// ApproxEqual reports whether o has the same degree and every control
// point within eps of the corresponding point of c.
func (c BezierCurve) ApproxEqual(o BezierCurve, eps float64) bool {
	if c.degree != o.degree {
		return false
	}
	for i := 0; i <= int(c.degree); i++ {
		if !c.p[i].ApproxEqual(o.p[i], eps) {
			return false
		}
	}
	return true
}

// AddToPath draws c on p. Without join, or when p has no current point,
// the curve starts a new subpath at its start point; with join, a line
// connects the current point to the start when they differ. A curve
// without a valid degree adds nothing.
func (c BezierCurve) AddToPath(p *Path, join bool) *Path {
	if !c.degree.valid() {
		return p
	}
	s := c.p[0]
	if cur, ok := p.CurrentPoint(); !join || !ok {
		p.MoveTo(s.X, s.Y)
	} else if cur != s {
		p.LineTo(s.X, s.Y)
	}
	q := c.p
	switch c.degree {
	case Quadratic:
		return p.QuadTo(q[1].X, q[1].Y, q[2].X, q[2].Y)
	case Cubic:
		return p.CubicTo(q[1].X, q[1].Y, q[2].X, q[2].Y, q[3].X, q[3].Y)
	default:
		return p.LineTo(q[1].X, q[1].Y)
	}
}

// ExtractBezierCurvesFromPath appends one curve per QuadTo or CubicTo
// segment of p to out. Each curve starts at the previous segment's end
// point. MoveTo, LineTo and Close carry no curvature and are skipped, so a
// path of lines yields nothing.
func ExtractBezierCurvesFromPath(p *Path, out []BezierCurve) []BezierCurve {
	var cur, start Point
	i := 0
	for _, k := range p.kinds {
		c := p.coords[i : i+k.CoordCount()]
		switch k {
		case SegMoveTo:
			start = Point{X: c[0], Y: c[1]}
			cur = start
		case SegLineTo:
			cur = Point{X: c[0], Y: c[1]}
		case SegQuadTo:
			end := Point{X: c[2], Y: c[3]}
			out = append(out, QuadraticCurve(cur, Point{X: c[0], Y: c[1]}, end))
			cur = end
		case SegCubicTo:
			end := Point{X: c[4], Y: c[5]}
			out = append(out, CubicCurve(cur, Point{X: c[0], Y: c[1]}, Point{X: c[2], Y: c[3]}, end))
			cur = end
		case SegClose:
			cur = start
		}
		i += k.CoordCount()
	}
	return out
}
