package geom

import (
	"iter"
	"math"
)

// Shape is anything that can describe its outline as path segments:
// *Path, Rect and IntRect.
type Shape interface {
	Bounds() Rect
	Segments() iter.Seq2[SegmentKind, []float64]
}

// Segments yields the rectangle's outline: MoveTo, three LineTo, Close.
func (r Rect) Segments() iter.Seq2[SegmentKind, []float64] {
	return func(yield func(SegmentKind, []float64) bool) {
		_ = yield(SegMoveTo, []float64{r.X, r.Y}) &&
			yield(SegLineTo, []float64{r.Right(), r.Y}) &&
			yield(SegLineTo, []float64{r.Right(), r.Bottom()}) &&
			yield(SegLineTo, []float64{r.X, r.Bottom()}) &&
			yield(SegClose, nil)
	}
}

// Segments yields the rectangle's outline.
func (r IntRect) Segments() iter.Seq2[SegmentKind, []float64] {
	return r.Float().Segments()
}

// SetShape replaces the contents of p with s transformed by m (nil for
// none). Rectangles go through SetRect and paths through SetPath, so the
// ShapeAxisRect tag is only set when s really is a rectangle.
func (p *Path) SetShape(s Shape, m *Matrix) *Path {
	switch v := s.(type) {
	case *Path:
		return p.SetPath(v, m)
	case Rect:
		return p.SetRect(v, m)
	case IntRect:
		return p.SetRect(v.Float(), m)
	}

	p.Reset()
	var buf [6]float64
	for k, c := range s.Segments() {
		n := copy(buf[:], c)
		if m != nil {
			m.transformCoords(buf[:n])
		}
		p.appendSegment(k, buf[:n])
	}
	return p
}

// IsRectangle reports whether the path geometrically traces an
// axis-aligned rectangle: a single subpath of MoveTo, LineTo and Close
// segments, no diagonal lines, every point on the bounding box perimeter
// and every corner visited. Unlike Shape it inspects the coordinates.
func (p *Path) IsRectangle() bool {
	if p.shape == ShapeAxisRect {
		return true
	}
	if len(p.kinds) == 0 {
		return false
	}
	b := p.Bounds()
	if b.IsEmpty() {
		return false
	}
	corners := [4]Point{b.Min(), {X: b.Right(), Y: b.Y}, b.Max(), {X: b.X, Y: b.Bottom()}}
	var seen [4]bool
	var prev Point
	moves, closed := 0, false

	for k, c := range p.Segments() {
		if closed && k != SegClose {
			return false // a second ring
		}
		switch k {
		case SegMoveTo:
			if moves++; moves > 1 {
				return false
			}
		case SegLineTo:
		case SegClose:
			closed = true
			continue
		default:
			return false
		}
		pt := Point{X: c[0], Y: c[1]}
		if k == SegLineTo && pt.X != prev.X && pt.Y != prev.Y {
			return false
		}
		if pt.X != b.X && pt.X != b.Right() && pt.Y != b.Y && pt.Y != b.Bottom() {
			return false
		}
		for i, corner := range corners {
			seen[i] = seen[i] || pt == corner
		}
		prev = pt
	}
	return seen[0] && seen[1] && seen[2] && seen[3]
}

// IsPolygon reports whether the path is a single subpath of straight
// lines that is closed, either by Close or by ending on its start point.
func (p *Path) IsPolygon() bool {
	if p.IsRectangle() {
		return true
	}
	var first, last Point
	var lastKind SegmentKind
	moves := 0
	for k, c := range p.Segments() {
		switch k {
		case SegMoveTo:
			moves++
			if moves > 1 {
				return false
			}
			first = Point{X: c[0], Y: c[1]}
			last = first
		case SegLineTo:
			last = Point{X: c[0], Y: c[1]}
		case SegQuadTo, SegCubicTo:
			return false
		}
		lastKind = k
	}
	return moves == 1 && (lastKind == SegClose || last == first)
}

// Primitive identifies a recognized geometric primitive.
type Primitive int

const (
	// PrimitiveUnknown indicates the path is not a recognized primitive.
	PrimitiveUnknown Primitive = iota

	// PrimitiveRect indicates an axis-aligned rectangle.
	PrimitiveRect

	// PrimitiveCircle indicates a circle drawn with four cubic arcs.
	PrimitiveCircle

	// PrimitiveEllipse indicates an axis-aligned ellipse drawn with four
	// cubic arcs.
	PrimitiveEllipse
)

func (k Primitive) String() string {
	switch k {
	case PrimitiveUnknown:
		return unknownStr
	case PrimitiveRect:
		return "Rect"
	case PrimitiveCircle:
		return "Circle"
	case PrimitiveEllipse:
		return "Ellipse"
	default:
		return unknownStr
	}
}

// DetectedPrimitive holds parameters of a recognized primitive.
// Kind tells which fields are meaningful.
type DetectedPrimitive struct {
	Kind    Primitive
	Bounds  Rect    // Rectangle, or the box around the ellipse.
	Center  Point   // Circle and ellipse center.
	RadiusX float64 // For circle: RadiusX == RadiusY.
	RadiusY float64
}

// detectTolerance is the maximum allowed error for primitive detection.
const detectTolerance = 1e-3

// DetectPrimitive recognizes rectangles and the four-arc circles and
// ellipses produced by Circle and Ellipse.
func DetectPrimitive(p *Path) DetectedPrimitive {
	if p == nil || len(p.kinds) == 0 {
		return DetectedPrimitive{}
	}
	if p.IsRectangle() {
		return DetectedPrimitive{Kind: PrimitiveRect, Bounds: p.Bounds()}
	}
	if d, ok := detectEllipse(p); ok {
		return d
	}
	return DetectedPrimitive{}
}

// detectEllipse expects MoveTo, four CubicTo and Close.
func detectEllipse(p *Path) (DetectedPrimitive, bool) {
	want := [6]SegmentKind{SegMoveTo, SegCubicTo, SegCubicTo, SegCubicTo, SegCubicTo, SegClose}
	if len(p.kinds) != len(want) || [6]SegmentKind(p.kinds) != want {
		return DetectedPrimitive{}, false
	}

	curves := ExtractBezierCurvesFromPath(p, make([]BezierCurve, 0, 4))
	// Arc endpoints: right, bottom, left, top, back to right.
	pts := [5]Point{curves[0].Start(), curves[0].End(), curves[1].End(), curves[2].End(), curves[3].End()}
	if !pts[4].ApproxEqual(pts[0], detectTolerance) {
		return DetectedPrimitive{}, false
	}

	center := pts[0].Lerp(pts[2], 0.5)
	if !center.ApproxEqual(pts[1].Lerp(pts[3], 0.5), detectTolerance) {
		return DetectedPrimitive{}, false
	}
	rx := math.Abs(pts[0].X - center.X)
	ry := math.Abs(pts[1].Y - center.Y)
	if rx < detectTolerance || ry < detectTolerance {
		return DetectedPrimitive{}, false
	}

	kx, ky := kappa*rx, kappa*ry
	cx, cy := center.X, center.Y
	wantCtrl := [4][2]Point{
		{{X: cx + rx, Y: cy + ky}, {X: cx + kx, Y: cy + ry}},
		{{X: cx - kx, Y: cy + ry}, {X: cx - rx, Y: cy + ky}},
		{{X: cx - rx, Y: cy - ky}, {X: cx - kx, Y: cy - ry}},
		{{X: cx + kx, Y: cy - ry}, {X: cx + rx, Y: cy - ky}},
	}
	for i, c := range curves {
		if !c.p[1].ApproxEqual(wantCtrl[i][0], detectTolerance) ||
			!c.p[2].ApproxEqual(wantCtrl[i][1], detectTolerance) {
			return DetectedPrimitive{}, false
		}
	}

	d := DetectedPrimitive{
		Kind:    PrimitiveEllipse,
		Bounds:  Rect{X: cx - rx, Y: cy - ry, W: 2 * rx, H: 2 * ry},
		Center:  center,
		RadiusX: rx,
		RadiusY: ry,
	}
	if math.Abs(rx-ry) < detectTolerance {
		d.Kind = PrimitiveCircle
	}
	return d, true
}
