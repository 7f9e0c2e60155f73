package geom

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// SegmentKind identifies a path segment.
type SegmentKind uint8

// Segment kinds.
const (
	// SegMoveTo starts a new subpath.
	SegMoveTo SegmentKind = iota
	// SegLineTo draws a straight line.
	SegLineTo
	// SegQuadTo draws a quadratic Bézier curve.
	SegQuadTo
	// SegCubicTo draws a cubic Bézier curve.
	SegCubicTo
	// SegClose closes the current subpath.
	SegClose
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// String returns a human-readable name for the kind.
func (k SegmentKind) String() string {
	switch k {
	case SegMoveTo:
		return "MoveTo"
	case SegLineTo:
		return "LineTo"
	case SegQuadTo:
		return "QuadTo"
	case SegCubicTo:
		return "CubicTo"
	case SegClose:
		return "Close"
	default:
		return unknownStr
	}
}

// CoordCount returns the number of float64 values the kind consumes.
func (k SegmentKind) CoordCount() int {
	switch k {
	case SegMoveTo, SegLineTo:
		return 2 // x, y
	case SegQuadTo:
		return 4 // cx, cy, x, y
	case SegCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// PathShape tags what is known about a path's geometry.
type PathShape uint8

const (
	// ShapeGeneral is any path.
	ShapeGeneral PathShape = iota

	// ShapeAxisRect is a path built by SetRect (or derived from one through
	// axis-aligned transforms). Its bounds are exactly the rectangle and
	// Contains and Intersect take rectangle shortcuts.
	ShapeAxisRect
)

func (s PathShape) String() string {
	switch s {
	case ShapeGeneral:
		return "General"
	case ShapeAxisRect:
		return "AxisRect"
	default:
		return unknownStr
	}
}

// defaultTolerance is the curve flattening tolerance used by Contains and
// Flatten when none is configured.
const defaultTolerance = 0.1

// defaultEmptyEpsilon is the area under which Intersect treats its result
// as empty.
const defaultEmptyEpsilon = 1e-9

// Path is a mutable vector path. Segment kinds and coordinates are stored
// in two flat streams, in drawing order.
//
// A Path is not safe for concurrent use.
type Path struct {
	kinds  []SegmentKind
	coords []float64
	rule   FillRule
	shape  PathShape

	start     Point // Start of current subpath, target of Close
	cursor    Point // Current point
	hasCursor bool

	bounds      Rect
	boundsValid bool

	// version changes on every mutation; iterators compare it.
	version uint64
	pooled  bool

	tolerance    float64
	emptyEpsilon float64
}

// NewPath creates a new empty path.
func NewPath(opts ...PathOption) *Path {
	p := &Path{
		kinds:        make([]SegmentKind, 0, 16),
		coords:       make([]float64, 0, 64),
		boundsValid:  true,
		tolerance:    defaultTolerance,
		emptyEpsilon: defaultEmptyEpsilon,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// touch records a geometry change.
func (p *Path) touch() {
	p.version++
	p.boundsValid = false
	p.shape = ShapeGeneral
}

// Reset empties the path without releasing its storage. The fill rule and
// options are kept; the bounds become the zero rectangle.
func (p *Path) Reset() {
	p.kinds = p.kinds[:0]
	p.coords = p.coords[:0]
	p.start = Point{}
	p.cursor = Point{}
	p.hasCursor = false
	p.bounds = Rect{}
	p.boundsValid = true
	p.shape = ShapeGeneral
	p.version++
}

// MoveTo begins a new subpath at (x, y). A MoveTo directly following
// another MoveTo replaces it.
func (p *Path) MoveTo(x, y float64) *Path {
	if n := len(p.kinds); n > 0 && p.kinds[n-1] == SegMoveTo {
		p.coords[len(p.coords)-2] = x
		p.coords[len(p.coords)-1] = y
	} else {
		p.kinds = append(p.kinds, SegMoveTo)
		p.coords = append(p.coords, x, y)
	}
	p.touch()
	p.start = Point{X: x, Y: y}
	p.cursor = p.start
	p.hasCursor = true
	return p
}

// LineTo draws a line from the current point to (x, y).
//
// It panics with an error wrapping ErrNoCurrentPoint if the path has no
// current point.
func (p *Path) LineTo(x, y float64) *Path {
	p.requireCursor("LineTo")
	p.kinds = append(p.kinds, SegLineTo)
	p.coords = append(p.coords, x, y)
	p.touch()
	p.cursor = Point{X: x, Y: y}
	return p
}

// QuadTo draws a quadratic Bézier curve from the current point to (x, y)
// with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.requireCursor("QuadTo")
	p.kinds = append(p.kinds, SegQuadTo)
	p.coords = append(p.coords, cx, cy, x, y)
	p.touch()
	p.cursor = Point{X: x, Y: y}
	return p
}

// CubicTo draws a cubic Bézier curve from the current point to (x, y)
// with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.requireCursor("CubicTo")
	p.kinds = append(p.kinds, SegCubicTo)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
	p.touch()
	p.cursor = Point{X: x, Y: y}
	return p
}

// Close closes the current subpath. The current point moves back to the
// subpath's MoveTo point. Closing an empty or already closed subpath does
// nothing.
func (p *Path) Close() *Path {
	n := len(p.kinds)
	if n == 0 || p.kinds[n-1] == SegClose {
		return p
	}
	p.kinds = append(p.kinds, SegClose)
	p.version++
	p.cursor = p.start
	return p
}

func (p *Path) requireCursor(op string) {
	if !p.hasCursor {
		panic(fmt.Errorf("geom: %s: %w", op, ErrNoCurrentPoint))
	}
}

// CurrentPoint returns the current point. ok is false for an empty path.
func (p *Path) CurrentPoint() (pt Point, ok bool) {
	return p.cursor, p.hasCursor
}

// FillRule returns the rule used by Contains.
func (p *Path) FillRule() FillRule { return p.rule }

// SetFillRule changes the rule used by Contains. Geometry is unaffected.
func (p *Path) SetFillRule(r FillRule) *Path {
	p.rule = r
	return p
}

// Shape reports whether the path is known to be an axis-aligned rectangle.
func (p *Path) Shape() PathShape { return p.shape }

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool { return len(p.kinds) == 0 }

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.kinds) }

// Kinds returns the segment kind stream. The slice must not be modified.
func (p *Path) Kinds() []SegmentKind { return p.kinds }

// Coords returns the coordinate stream. The slice must not be modified.
func (p *Path) Coords() []float64 { return p.coords }

// Bounds returns the bounding box of every coordinate in the path,
// control points included. This is the control-point hull: cheap and never
// smaller than the true bounds. Use BezierCurve.BoundingRect for tight
// curve bounds. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	if !p.boundsValid {
		p.bounds = hullBounds(p.coords)
		p.boundsValid = true
	}
	return p.bounds
}

// TightBounds returns the exact bounding box of the drawn outline, taking
// curve extrema instead of control points. An empty path has zero bounds.
func (p *Path) TightBounds() Rect {
	if len(p.kinds) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(b Rect) {
		minX, minY = math.Min(minX, b.X), math.Min(minY, b.Y)
		maxX, maxY = math.Max(maxX, b.Right()), math.Max(maxY, b.Bottom())
	}
	p.walk(false, func(s walkSeg) {
		switch s.kind {
		case SegMoveTo:
			add(Rect{X: s.pts[0].X, Y: s.pts[0].Y})
		case SegQuadTo, SegCubicTo:
			add(s.curve().BoundingRect())
		default:
			add(RectFromPoints(s.pts[0], s.pts[1]))
		}
	})
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// IntBounds returns the smallest integer rectangle enclosing Bounds.
func (p *Path) IntBounds() IntRect {
	return p.Bounds().Int()
}

func hullBounds(coords []float64) Rect {
	if len(coords) < 2 {
		return Rect{}
	}
	minX, minY := coords[0], coords[1]
	maxX, maxY := minX, minY
	for i := 2; i+1 < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := *p
	result.kinds = slices.Clone(p.kinds)
	result.coords = slices.Clone(p.coords)
	result.version = 0
	result.pooled = false
	return &result
}

// Append adds the segments of other to the end of p. The fill rule of
// other is ignored.
//
// With connect set and p non-empty, the leading MoveTo of other becomes a
// LineTo from the current point, so both paths form one subpath. The line
// is omitted when it would be zero length. Without connect, other starts a
// new subpath.
func (p *Path) Append(other *Path, connect bool) *Path {
	if other == nil || len(other.kinds) == 0 {
		return p
	}
	kinds, coords := other.kinds, other.coords
	if other == p {
		kinds, coords = slices.Clone(kinds), slices.Clone(coords)
	}

	i := 0
	for j, k := range kinds {
		c := coords[i : i+k.CoordCount()]
		i += len(c)
		if j == 0 && k == SegMoveTo && connect && len(p.kinds) > 0 {
			pt := Point{X: c[0], Y: c[1]}
			if p.kinds[len(p.kinds)-1] != SegClose && p.cursor == pt {
				continue
			}
			p.LineTo(pt.X, pt.Y)
			continue
		}
		p.appendSegment(k, c)
	}
	return p
}

// appendSegment adds one segment given its coordinates.
func (p *Path) appendSegment(k SegmentKind, c []float64) {
	switch k {
	case SegMoveTo:
		p.MoveTo(c[0], c[1])
	case SegLineTo:
		p.LineTo(c[0], c[1])
	case SegQuadTo:
		p.QuadTo(c[0], c[1], c[2], c[3])
	case SegCubicTo:
		p.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
	case SegClose:
		p.Close()
	}
}

// SetRect replaces the contents of p with the outline of r: a MoveTo,
// three LineTo and a Close tracing the four edges clockwise in screen
// coordinates. A nil m means no transform.
//
// This is the only way a path becomes ShapeAxisRect; the tag is kept when
// m is nil or axis aligned. Without a transform Bounds returns r exactly.
func (p *Path) SetRect(r Rect, m *Matrix) *Path {
	p.Reset()
	pts := [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
	if m != nil {
		for i := range pts {
			pts[i] = m.TransformPoint(pts[i])
		}
	}
	p.MoveTo(pts[0].X, pts[0].Y).
		LineTo(pts[1].X, pts[1].Y).
		LineTo(pts[2].X, pts[2].Y).
		LineTo(pts[3].X, pts[3].Y).
		Close()

	switch {
	case m == nil && r.W >= 0 && r.H >= 0:
		p.bounds = r
	case m == nil || m.IsAxisAligned():
		p.bounds = RectFromPoints(pts[0], pts[2])
	default:
		return p
	}
	p.boundsValid = true
	p.shape = ShapeAxisRect
	return p
}

// SetPath replaces the contents of p with a copy of src transformed by m.
// A nil m means no transform. The fill rule is copied.
func (p *Path) SetPath(src *Path, m *Matrix) *Path {
	if src == p {
		if m != nil {
			p.Transform(*m)
		}
		return p
	}
	p.kinds = append(p.kinds[:0], src.kinds...)
	p.coords = append(p.coords[:0], src.coords...)
	p.rule = src.rule
	p.shape = src.shape
	p.start, p.cursor, p.hasCursor = src.start, src.cursor, src.hasCursor
	p.bounds, p.boundsValid = src.bounds, src.boundsValid
	p.version++
	if m != nil {
		p.Transform(*m)
	}
	return p
}

// Transform applies m to every coordinate in place. The ShapeAxisRect tag
// survives only axis-aligned transforms; a rotation clears it.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p
	}
	m.transformCoords(p.coords)
	p.start = m.TransformPoint(p.start)
	p.cursor = m.TransformPoint(p.cursor)

	keepRect := p.shape == ShapeAxisRect && m.IsAxisAligned()
	p.touch()
	if keepRect {
		p.bounds = hullBounds(p.coords)
		p.boundsValid = true
		p.shape = ShapeAxisRect
	}
	return p
}

// Rectangle adds a closed rectangular subpath. Unlike SetRect it does not
// tag the path.
func (p *Path) Rectangle(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// kappa is the cubic Bézier control point distance for circle
// approximation, 4/3·(√2 − 1).
const kappa = 0.5522847498307936

// Circle adds a closed circular subpath.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed elliptical subpath made of four cubic arcs,
// starting at the rightmost point.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	kx := kappa * rx
	ky := kappa * ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry) // to bottom
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy) // to left
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry) // to top
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy) // to start
	return p.Close()
}

// Equal reports whether p and other hold the same segments, coordinates
// and fill rule.
func (p *Path) Equal(other *Path) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	return p.rule == other.rule &&
		slices.Equal(p.kinds, other.kinds) &&
		slices.Equal(p.coords, other.coords)
}

// String returns the path in SVG path data notation with absolute
// commands, e.g. "M0 0L10 0Z".
func (p *Path) String() string {
	var sb strings.Builder
	i := 0
	for _, k := range p.kinds {
		c := p.coords[i : i+k.CoordCount()]
		i += len(c)
		switch k {
		case SegMoveTo:
			sb.WriteByte('M')
		case SegLineTo:
			sb.WriteByte('L')
		case SegQuadTo:
			sb.WriteByte('Q')
		case SegCubicTo:
			sb.WriteByte('C')
		case SegClose:
			sb.WriteByte('Z')
		}
		for j, v := range c {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return sb.String()
}
