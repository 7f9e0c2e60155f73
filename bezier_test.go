package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuad(t *testing.T) BezierCurve {
	t.Helper()
	c, err := NewBezierCurve(0, 0, 1, 1, 2, 0)
	require.NoError(t, err)
	return c
}

func TestNewBezierCurve(t *testing.T) {
	c := testQuad(t)
	assert.Equal(t, Quadratic, c.Degree())
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 0}}, c.Points())

	c, err := NewBezierCurve(0, 0, 1, 2, 3, 3, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, Cubic, c.Degree())
	assert.Equal(t, Pt(4, 0), c.End())

	for _, n := range []int{0, 2, 4, 5, 7, 10} {
		_, err := NewBezierCurve(make([]float64, n)...)
		assert.ErrorIs(t, err, ErrCoordinateCount, "n=%d", n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}

func TestBezierEval(t *testing.T) {
	c := testQuad(t)
	assert.Equal(t, 0.0, c.X(0))
	assert.Equal(t, 2.0, c.X(1))
	assert.Equal(t, 1.0, c.X(0.5))
	assert.Equal(t, 0.5, c.Y(0.5))
	assert.Equal(t, Pt(1, 0.5), c.Eval(0.5))
	assert.Equal(t, Pt(2, 2), c.Tangent(0))

	// Outside [0, 1] the polynomial extends.
	assert.Equal(t, -2.0, c.X(-1))
}

func TestBezierDerivative(t *testing.T) {
	c := CubicCurve(Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0))
	dx, err := c.DerivativeCoefficientsX()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, -6}, dx)

	dy, err := c.DerivativeCoefficientsY()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, -6, -9}, dy)

	var zero BezierCurve
	_, err = zero.DerivativeCoefficientsX()
	assert.ErrorIs(t, err, ErrUnsupportedDegree)
	_, err = zero.DerivativeCoefficientsY()
	assert.ErrorIs(t, err, ErrUnsupportedDegree)
	assert.Equal(t, Point{}, zero.Tangent(0.5))
	assert.Nil(t, zero.Points())
}

func TestFindTValuesForY(t *testing.T) {
	c := testQuad(t)
	out := make([]float64, 3)

	// Tangential root at the apex is reported once.
	n := c.FindTValuesForY(0.5, 0, 1, out)
	require.Equal(t, 1, n)
	assert.Equal(t, 0.5, out[0])

	n = c.FindTValuesForY(0.25, 0, 1, out)
	require.Equal(t, 2, n)
	assert.Less(t, out[0], out[1])
	assert.InDelta(t, 0.25, c.Y(out[0]), 1e-12)
	assert.InDelta(t, 0.25, c.Y(out[1]), 1e-12)

	// Restricted range.
	n = c.FindTValuesForY(0.25, 0.5, 1, out)
	require.Equal(t, 1, n)
	assert.Greater(t, out[0], 0.5)

	// Short output buffer keeps the smallest.
	n = c.FindTValuesForY(0.25, 0, 1, out[:1])
	assert.Equal(t, 1, n)
	assert.Less(t, out[0], 0.5)

	assert.Equal(t, 0, c.FindTValuesForY(2, 0, 1, out))
	assert.Equal(t, 0, c.FindTValuesForY(-1, 0, 1, out))
}

func TestFindTValuesForX(t *testing.T) {
	c := testQuad(t)
	out := make([]float64, 3)
	n := c.FindTValuesForX(1.5, 0, 1, out)
	require.Equal(t, 1, n)
	assert.Equal(t, 0.75, out[0])

	// Endpoints are within range.
	n = c.FindTValuesForX(2, 0, 1, out)
	require.Equal(t, 1, n)
	assert.Equal(t, 1.0, out[0])
}

func TestBezierSplit(t *testing.T) {
	c := testQuad(t)
	left, right := c.Split(0.5)
	assert.Equal(t, []Point{{0, 0}, {0.5, 0.5}, {1, 0.5}}, left.Points())
	assert.Equal(t, []Point{{1, 0.5}, {1.5, 0.5}, {2, 0}}, right.Points())

	cubic := CubicCurve(Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0))
	for _, tt := range []float64{0.1, 0.3, 0.5, 0.9} {
		left, right := cubic.Split(tt)
		assert.Equal(t, Cubic, left.Degree())
		assert.Equal(t, cubic.Start(), left.Start())
		assert.Equal(t, cubic.End(), right.End())
		assert.Equal(t, left.End(), right.Start(), "halves share the split point")
		assert.True(t, left.End().ApproxEqual(cubic.Eval(tt), 1e-12))

		// Each half retraces its part of the whole curve.
		assert.True(t, left.Eval(0.5).ApproxEqual(cubic.Eval(tt/2), 1e-12))
		assert.True(t, right.Eval(0.5).ApproxEqual(cubic.Eval(tt+(1-tt)/2), 1e-12))
	}

	pieces := cubic.Segment(0.3, nil)
	require.Len(t, pieces, 2)
	assert.Equal(t, pieces[0].End(), pieces[1].Start())
}

func TestBezierSegmentRect(t *testing.T) {
	c := testQuad(t)

	pieces := c.SegmentRect(NewRect(0.5, -1, 1, 2), nil)
	require.Len(t, pieces, 3)
	assert.Equal(t, c.Start(), pieces[0].Start())
	assert.Equal(t, c.End(), pieces[2].End())
	assert.InDelta(t, 0.5, pieces[0].End().X, 1e-12)
	assert.InDelta(t, 1.5, pieces[1].End().X, 1e-12)
	for i := 1; i < len(pieces); i++ {
		assert.Equal(t, pieces[i-1].End(), pieces[i].Start())
	}

	// No crossing: the curve is the single piece.
	pieces = c.SegmentRect(NewRect(-10, -10, 20, 20), nil)
	require.Len(t, pieces, 1)
	assert.Equal(t, c, pieces[0])

	// A crossing within 0.01 of an endpoint is ignored.
	pieces = c.SegmentRect(NewRect(0.01, -1, 10, 10), nil)
	assert.Len(t, pieces, 1)

	// Appends to out.
	out := c.SegmentRect(NewRect(0.5, -1, 1, 2), make([]BezierCurve, 1))
	assert.Len(t, out, 4)
}

func TestBezierReverse(t *testing.T) {
	c := CubicCurve(Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0))
	r := c.Reverse()
	assert.Equal(t, []Point{{4, 0}, {3, 3}, {1, 2}, {0, 0}}, r.Points())
	assert.Equal(t, c, r.Reverse())
	for _, tt := range []float64{0, 0.2, 0.5, 1} {
		assert.True(t, r.Eval(tt).ApproxEqual(c.Eval(1-tt), 1e-12))
	}
}

func TestBezierBoundingRect(t *testing.T) {
	c := testQuad(t)
	assert.Equal(t, NewRect(0, 0, 2, 0.5), c.BoundingRect())
	assert.Equal(t, NewRect(0, 0, 2, 1), c.controlBounds())

	cubic := CubicCurve(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	b := cubic.BoundingRect()
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 10.0, b.W)
	assert.InDelta(t, 7.5, b.H, 1e-12)

	// Every sampled point lies inside.
	for i := 0; i <= 100; i++ {
		p := cubic.Eval(float64(i) / 100)
		assert.True(t, p.X >= b.X-1e-9 && p.X <= b.Right()+1e-9 && p.Y >= b.Y-1e-9 && p.Y <= b.Bottom()+1e-9)
	}
}

func TestExtractBezierCurvesFromPath(t *testing.T) {
	p := NewPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		QuadTo(15, 5, 10, 10).
		Close().
		MoveTo(20, 20).
		CubicTo(21, 21, 22, 22, 23, 20)

	curves := ExtractBezierCurvesFromPath(p, nil)
	require.Len(t, curves, 2)
	assert.Equal(t, QuadraticCurve(Pt(10, 0), Pt(15, 5), Pt(10, 10)), curves[0])
	assert.Equal(t, CubicCurve(Pt(20, 20), Pt(21, 21), Pt(22, 22), Pt(23, 20)), curves[1])

	assert.Empty(t, ExtractBezierCurvesFromPath(NewPath().Rectangle(0, 0, 1, 1), nil))
}

func TestDegreeString(t *testing.T) {
	assert.Equal(t, "Quadratic", Quadratic.String())
	assert.Equal(t, "Cubic", Cubic.String())
	assert.Equal(t, "Linear", Linear.String())
	assert.Equal(t, "Unknown", Degree(7).String())
	assert.Equal(t, "Quadratic[(0,0) (1,1) (2,0)]", QuadraticCurve(Pt(0, 0), Pt(1, 1), Pt(2, 0)).String())
}

func TestBezierApproxEqual(t *testing.T) {
	c := QuadraticCurve(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	assert.True(t, c.ApproxEqual(c, 0))
	assert.True(t, c.ApproxEqual(QuadraticCurve(Pt(0, 0), Pt(1, 1.05), Pt(2, 0)), 0.1))
	assert.False(t, c.ApproxEqual(QuadraticCurve(Pt(0, 0), Pt(1, 1.5), Pt(2, 0)), 0.1))
	assert.False(t, c.ApproxEqual(CubicCurve(Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 0)), 10))
}

func TestBezierAddToPath(t *testing.T) {
	q := QuadraticCurve(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	c := CubicCurve(Pt(2, 0), Pt(3, 1), Pt(4, 1), Pt(5, 0))

	p := q.AddToPath(NewPath(), true)
	assert.Equal(t, "M0 0Q1 1 2 0", p.String(), "join without a current point moves")

	c.AddToPath(p, true)
	assert.Equal(t, "M0 0Q1 1 2 0C3 1 4 1 5 0", p.String(), "continuous join adds no line")

	q.AddToPath(p, true)
	assert.Equal(t, "M0 0Q1 1 2 0C3 1 4 1 5 0L0 0Q1 1 2 0", p.String())

	p = NewPath().MoveTo(9, 9).LineTo(9, 0)
	c.AddToPath(p, false)
	assert.Equal(t, "M9 9L9 0M2 0C3 1 4 1 5 0", p.String())

	before := p.Clone()
	BezierCurve{}.AddToPath(p, false)
	assert.True(t, before.Equal(p))

	// Curves extracted from a path rebuild it.
	src := NewPath().MoveTo(0, 0).QuadTo(1, 1, 2, 0).CubicTo(3, 1, 4, 1, 5, 0)
	rebuilt := NewPath()
	for _, bc := range ExtractBezierCurvesFromPath(src, nil) {
		bc.AddToPath(rebuilt, true)
	}
	assert.True(t, src.Equal(rebuilt))
}
