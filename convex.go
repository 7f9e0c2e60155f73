package geom

import "math"

// IsConvexPolygon reports whether the vertices (xs[i], ys[i]) trace a
// simple convex polygon in either orientation. A repeated closing vertex
// is allowed. Collinear vertices are tolerated as long as the polygon
// still turns; concave or self-intersecting polygons are rejected, as are
// fewer than three distinct vertices, mismatched slices and repeated
// consecutive vertices.
func IsConvexPolygon[T number](xs, ys []T) bool {
	n := len(xs)
	if n != len(ys) {
		return false
	}
	if n > 1 && xs[0] == xs[n-1] && ys[0] == ys[n-1] {
		n--
	}
	if n < 3 {
		return false
	}

	vertex := func(i int) Point {
		i %= n
		return Point{X: float64(xs[i]), Y: float64(ys[i])}
	}

	sign := 0
	var turning float64
	for i := 0; i < n; i++ {
		a, b, c := vertex(i), vertex(i+1), vertex(i+2)
		e1, e2 := b.Sub(a), c.Sub(b)
		if e1 == (Point{}) || e2 == (Point{}) {
			return false
		}
		cross := e1.Cross(e2)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
		turning += math.Atan2(cross, e1.Dot(e2))
	}

	// A convex polygon turns exactly once; a star with consistent turns
	// winds twice or more.
	return sign != 0 && math.Abs(math.Abs(turning)-2*math.Pi) < 1e-6
}
