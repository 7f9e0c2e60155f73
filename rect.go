package geom

import (
	"fmt"
	"math"
)

// number is the coordinate type shared by Rect and IntRect.
type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Rect is an axis-aligned rectangle with float64 coordinates.
// W and H are expected to be non-negative; a zero W or H makes the
// rectangle empty for intersection purposes.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// IntRect is an axis-aligned rectangle with integer coordinates.
type IntRect struct {
	X, Y int
	W, H int
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints returns the rectangle spanned by two corners in any order.
func RectFromPoints(p1, p2 Point) Rect {
	x0, x1 := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	y0, y1 := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and other overlap with strictly positive
// area. Empty rectangles never intersect anything, themselves included.
func (r Rect) Intersects(other Rect) bool {
	return intersects(r.X, r.Y, r.W, r.H, other.X, other.Y, other.W, other.H)
}

// Intersection returns the overlapping part of r and other. Disjoint
// rectangles produce a zero width and/or height; use Intersects to tell an
// empty overlap from an empty input.
func (r Rect) Intersection(other Rect) Rect {
	x, y, w, h := intersection(r.X, r.Y, r.W, r.H, other.X, other.Y, other.W, other.H)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether (x, y) lies in the half-open box
// [X, X+W) × [Y, Y+H).
func (r Rect) Contains(x, y float64) bool {
	return contains(r.X, r.Y, r.W, r.H, x, y)
}

// ContainsRect reports whether inner lies entirely within r.
func (r Rect) ContainsRect(inner Rect) bool {
	return containsRect(r.X, r.Y, r.W, r.H, inner.X, inner.Y, inner.W, inner.H)
}

// Union returns the smallest rectangle containing both r and other.
// An empty operand is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Int returns the smallest integer rectangle enclosing r.
func (r Rect) Int() IntRect {
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.Right()))
	y1 := int(math.Ceil(r.Bottom()))
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Bounds returns r itself, so that Rect satisfies Shape.
func (r Rect) Bounds() Rect { return r }

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// Right returns the right edge x-coordinate.
func (r IntRect) Right() int { return r.X + r.W }

// Bottom returns the bottom edge y-coordinate.
func (r IntRect) Bottom() int { return r.Y + r.H }

// IsEmpty returns true if the rectangle has zero area.
func (r IntRect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and other overlap with strictly positive
// area. Empty rectangles never intersect anything, themselves included.
func (r IntRect) Intersects(other IntRect) bool {
	return intersects(r.X, r.Y, r.W, r.H, other.X, other.Y, other.W, other.H)
}

// Intersection returns the overlapping part of r and other, with width and
// height clamped to zero when they are disjoint.
func (r IntRect) Intersection(other IntRect) IntRect {
	x, y, w, h := intersection(r.X, r.Y, r.W, r.H, other.X, other.Y, other.W, other.H)
	return IntRect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether (x, y) lies in [X, X+W) × [Y, Y+H).
func (r IntRect) Contains(x, y int) bool {
	return contains(r.X, r.Y, r.W, r.H, x, y)
}

// ContainsRect reports whether inner lies entirely within r.
func (r IntRect) ContainsRect(inner IntRect) bool {
	return containsRect(r.X, r.Y, r.W, r.H, inner.X, inner.Y, inner.W, inner.H)
}

// Float converts r to a Rect.
func (r IntRect) Float() Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Bounds returns r as a Rect, so that IntRect satisfies Shape.
func (r IntRect) Bounds() Rect { return r.Float() }

func (r IntRect) String() string {
	return fmt.Sprintf("IntRect(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

func intersects[T number](x1, y1, w1, h1, x2, y2, w2, h2 T) bool {
	if w1 <= 0 || h1 <= 0 || w2 <= 0 || h2 <= 0 {
		return false
	}
	return x1 < x2+w2 && x2 < x1+w1 && y1 < y2+h2 && y2 < y1+h1
}

func intersection[T number](x1, y1, w1, h1, x2, y2, w2, h2 T) (x, y, w, h T) {
	x = max(x1, x2)
	y = max(y1, y2)
	w = max(min(x1+w1, x2+w2)-x, 0)
	h = max(min(y1+h1, y2+h2)-y, 0)
	return x, y, w, h
}

func contains[T number](rx, ry, rw, rh, x, y T) bool {
	return x >= rx && y >= ry && x < rx+rw && y < ry+rh
}

func containsRect[T number](x1, y1, w1, h1, x2, y2, w2, h2 T) bool {
	return x1 <= x2 && y1 <= y2 && x1+w1 >= x2+w2 && y1+h1 >= y2+h2
}
