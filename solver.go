package geom

import (
	"math"
	"slices"
)

// Polynomial root solvers for quadratic and cubic equations. Curve code
// uses them to find extrema and axis crossings.
//
// Based on the kurbo solvers (https://github.com/linebender/kurbo).

// SolveQuadratic finds real roots of a·x² + b·x + c = 0 in ascending order.
//
// If a is zero or nearly zero the equation is solved as linear. If every
// coefficient is zero a single 0 is returned. A double root is reported
// once.
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale first so the discriminant cannot overflow.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4*sc0
	var root1 float64
	switch {
	case !isFinite(arg):
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		root1, root2 = root2, root1
	}
	return []float64{root1, root2}
}

// SolveCubic finds real roots of a·x³ + b·x² + c·x + d = 0 in ascending
// order, falling back to SolveQuadratic when a is negligible.
//
// Uses the method from https://momentsingraphics.de/CubicRoots.html,
// after Jim Blinn's "How to Solve a Cubic Equation".
func SolveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	aRecip := 1 / a
	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip
	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		return SolveQuadratic(b, c, d)
	}

	// (d0, d1, d2) is "Delta" in the article.
	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	if disc < 0 {
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	}
	if disc == 0 {
		t1 := math.Copysign(math.Sqrt(-d0), de)
		roots := []float64{t1 - c2, -2*t1 - c2}
		slices.Sort(roots)
		return roots
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	ss3 := thSin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	roots := []float64{
		t*thCos - c2,
		t*0.5*(-thCos+ss3) - c2,
		t*0.5*(-thCos-ss3) - c2,
	}
	slices.Sort(roots)
	return roots
}

// SolveQuadraticInUnitInterval returns roots of a·x² + b·x + c = 0 in [0, 1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return rootsInRange(SolveQuadratic(a, b, c), 0, 1)
}

// SolveCubicInUnitInterval returns roots of a·x³ + b·x² + c·x + d = 0 in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return rootsInRange(SolveCubic(a, b, c, d), 0, 1)
}

// rootEpsilon absorbs rounding at interval boundaries.
const rootEpsilon = 1e-12

// rootsInRange keeps roots in [lo, hi], snapping values within rootEpsilon
// of a bound onto it and merging duplicates. The input must be sorted.
func rootsInRange(roots []float64, lo, hi float64) []float64 {
	out := roots[:0]
	for _, r := range roots {
		if r < lo-rootEpsilon || r > hi+rootEpsilon {
			continue
		}
		r = math.Min(math.Max(r, lo), hi)
		if len(out) > 0 && math.Abs(out[len(out)-1]-r) <= rootEpsilon {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// solvePolynomial returns the real roots of c[0] + c[1]·t + ... + c[n]·tⁿ
// for n = len(c)-1 ≤ 3, sorted ascending. A constant polynomial has no
// roots.
func solvePolynomial(c []float64) []float64 {
	switch len(c) {
	case 2:
		root := -c[0] / c[1]
		if !isFinite(root) {
			return nil
		}
		return []float64{root}
	case 3:
		return SolveQuadratic(c[2], c[1], c[0])
	case 4:
		return SolveCubic(c[3], c[2], c[1], c[0])
	}
	return nil
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
