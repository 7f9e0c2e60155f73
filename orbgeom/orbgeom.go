// Package orbgeom converts between geom paths and github.com/paulmach/orb
// polygons.
//
// Curves are flattened on the way out, so a round trip through orb turns
// every curve into line segments.
package orbgeom

import (
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/gogpu/geom"
)

// ToMultiPolygon flattens p with the given tolerance (non-positive uses the
// path's own) and returns one closed ring per subpath. A ring whose
// orientation matches the first ring starts a new polygon; a ring turning
// the other way becomes a hole of the polygon before it. Subpaths without
// area are skipped.
func ToMultiPolygon(p *geom.Path, tolerance float64) orb.MultiPolygon {
	var mp orb.MultiPolygon
	var outer orb.Orientation
	for _, line := range p.Flatten(tolerance) {
		ring := toRing(line)
		if len(ring) < 4 {
			continue
		}
		if planar.Area(ring) == 0 {
			continue
		}
		o := ring.Orientation()
		switch {
		case len(mp) == 0:
			outer = o
			mp = append(mp, orb.Polygon{ring})
		case o == outer:
			mp = append(mp, orb.Polygon{ring})
		default:
			last := len(mp) - 1
			mp[last] = append(mp[last], ring)
		}
	}
	if len(mp) == 0 && !p.IsEmpty() {
		geom.Logger().Debug("orbgeom: path has no area", slog.Int("segments", p.Len()))
	}
	return mp
}

func toRing(line []geom.Point) orb.Ring {
	ring := make(orb.Ring, 0, len(line)+1)
	for _, pt := range line {
		op := orb.Point{pt.X, pt.Y}
		if n := len(ring); n > 0 && ring[n-1] == op {
			continue
		}
		ring = append(ring, op)
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// FromPolygon builds a path with one closed subpath per ring.
func FromPolygon(poly orb.Polygon, opts ...geom.PathOption) *geom.Path {
	p := geom.NewPath(opts...)
	appendPolygon(p, poly)
	return p
}

// FromMultiPolygon builds a path holding every ring of every polygon.
func FromMultiPolygon(mp orb.MultiPolygon, opts ...geom.PathOption) *geom.Path {
	p := geom.NewPath(opts...)
	for _, poly := range mp {
		appendPolygon(p, poly)
	}
	return p
}

func appendPolygon(p *geom.Path, poly orb.Polygon) {
	for _, ring := range poly {
		if len(ring) == 0 {
			continue
		}
		if ring.Closed() {
			ring = ring[:len(ring)-1]
		}
		p.MoveTo(ring[0][0], ring[0][1])
		for _, pt := range ring[1:] {
			p.LineTo(pt[0], pt[1])
		}
		p.Close()
	}
}

// Contains reports whether (x, y) lies inside mp, holes excluded.
func Contains(mp orb.MultiPolygon, x, y float64) bool {
	return planar.MultiPolygonContains(mp, orb.Point{x, y})
}

// Area returns the area covered by mp.
func Area(mp orb.MultiPolygon) float64 {
	return planar.Area(mp)
}

// BoundToRect converts an orb bound.
func BoundToRect(b orb.Bound) geom.Rect {
	return geom.RectFromPoints(geom.Pt(b.Min[0], b.Min[1]), geom.Pt(b.Max[0], b.Max[1]))
}

// RectToBound converts a rectangle to an orb bound.
func RectToBound(r geom.Rect) orb.Bound {
	return orb.Bound{Min: orb.Point{r.X, r.Y}, Max: orb.Point{r.Right(), r.Bottom()}}
}
