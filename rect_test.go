package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 6.0, r.Bottom())
	assert.Equal(t, Pt(1, 2), r.Min())
	assert.Equal(t, Pt(4, 6), r.Max())
	assert.Equal(t, r, r.Bounds())
	assert.Equal(t, "Rect(1,2 3x4)", r.String())
}

func TestRectFromPoints(t *testing.T) {
	assert.Equal(t, NewRect(1, 2, 3, 4), RectFromPoints(Pt(4, 6), Pt(1, 2)))
	assert.Equal(t, NewRect(1, 2, 3, 4), RectFromPoints(Pt(1, 6), Pt(4, 2)))
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"zero width", NewRect(0, 0, 0, 5), true},
		{"negative height", NewRect(0, 0, 5, -1), true},
		{"unit", NewRect(0, 0, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.IsEmpty())
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 1, 1), true},
		{"touching edge", NewRect(10, 0, 5, 5), false},
		{"touching corner", NewRect(10, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"empty inside", NewRect(2, 2, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "symmetric")
		})
	}
	assert.False(t, Rect{}.Intersects(Rect{}))
}

func TestRectIntersection(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	assert.Equal(t, NewRect(5, 5, 5, 5), base.Intersection(NewRect(5, 5, 10, 10)))
	assert.Equal(t, NewRect(2, 3, 1, 1), base.Intersection(NewRect(2, 3, 1, 1)))

	// Disjoint rectangles clamp to zero size.
	got := base.Intersection(NewRect(20, 30, 5, 5))
	assert.Zero(t, got.W)
	assert.Zero(t, got.H)
	assert.True(t, got.IsEmpty())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"left edge", 0, 5, true},
		{"right edge", 10, 5, false},
		{"bottom edge", 5, 10, false},
		{"outside", -1, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.ContainsRect(r))
	assert.True(t, r.ContainsRect(NewRect(2, 2, 3, 3)))
	assert.True(t, r.ContainsRect(NewRect(0, 0, 10, 5)))
	assert.False(t, r.ContainsRect(NewRect(5, 5, 10, 10)))
	assert.False(t, r.ContainsRect(NewRect(-1, 0, 2, 2)))
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(5, 5, 1, 1)
	assert.Equal(t, NewRect(0, 0, 6, 6), a.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, b, Rect{}.Union(b))
}

func TestRectTranslateAndInt(t *testing.T) {
	assert.Equal(t, NewRect(3, 5, 3, 4), NewRect(1, 2, 3, 4).Translate(2, 3))
	assert.Equal(t, IntRect{X: 0, Y: -1, W: 3, H: 3}, NewRect(0.5, -0.5, 2, 2).Int())
	assert.Equal(t, IntRect{X: 1, Y: 2, W: 3, H: 4}, NewRect(1, 2, 3, 4).Int())
}

func TestIntRect(t *testing.T) {
	r := IntRect{X: 0, Y: 0, W: 10, H: 10}
	assert.Equal(t, 10, r.Right())
	assert.Equal(t, 10, r.Bottom())
	assert.False(t, r.IsEmpty())
	assert.True(t, IntRect{W: 0, H: 3}.IsEmpty())

	assert.True(t, r.Intersects(IntRect{X: 9, Y: 9, W: 2, H: 2}))
	assert.False(t, r.Intersects(IntRect{X: 10, Y: 0, W: 2, H: 2}))
	assert.Equal(t, IntRect{X: 5, Y: 5, W: 5, H: 5}, r.Intersection(IntRect{X: 5, Y: 5, W: 10, H: 10}))
	assert.Equal(t, 0, r.Intersection(IntRect{X: 20, Y: 20, W: 1, H: 1}).W)

	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(9, 9))
	assert.False(t, r.Contains(10, 9))
	assert.True(t, r.ContainsRect(IntRect{X: 1, Y: 1, W: 9, H: 9}))
	assert.False(t, r.ContainsRect(IntRect{X: 1, Y: 1, W: 10, H: 9}))

	assert.Equal(t, NewRect(0, 0, 10, 10), r.Float())
	assert.Equal(t, r.Float(), r.Bounds())
	assert.Equal(t, "IntRect(0,0 10x10)", r.String())
}

func TestRectSegments(t *testing.T) {
	var kinds []SegmentKind
	var coords []float64
	for k, c := range NewRect(1, 2, 3, 4).Segments() {
		kinds = append(kinds, k)
		coords = append(coords, c...)
	}
	assert.Equal(t, []SegmentKind{SegMoveTo, SegLineTo, SegLineTo, SegLineTo, SegClose}, kinds)
	assert.Equal(t, []float64{1, 2, 4, 2, 4, 6, 1, 6}, coords)

	// Early break stops iteration.
	n := 0
	for range (IntRect{W: 1, H: 1}).Segments() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
