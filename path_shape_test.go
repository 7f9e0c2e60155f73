package geom

import (
	"iter"
	"math"
	"testing"
)

// polygon is a Shape that is neither a Path nor a rectangle.
type polygon []Point

func (pg polygon) Bounds() Rect {
	b := RectFromPoints(pg[0], pg[0])
	for _, pt := range pg[1:] {
		b = RectFromPoints(
			Pt(math.Min(b.X, pt.X), math.Min(b.Y, pt.Y)),
			Pt(math.Max(b.Right(), pt.X), math.Max(b.Bottom(), pt.Y)),
		)
	}
	return b
}

func (pg polygon) Segments() iter.Seq2[SegmentKind, []float64] {
	return func(yield func(SegmentKind, []float64) bool) {
		for i, pt := range pg {
			k := SegLineTo
			if i == 0 {
				k = SegMoveTo
			}
			if !yield(k, []float64{pt.X, pt.Y}) {
				return
			}
		}
		yield(SegClose, nil)
	}
}

func TestDetectCircle(t *testing.T) {
	p := NewPath()
	p.Circle(100, 100, 50)

	shape := DetectPrimitive(p)
	if shape.Kind != PrimitiveCircle {
		t.Fatalf("expected PrimitiveCircle, got %v", shape.Kind)
	}
	if !shape.Center.ApproxEqual(Pt(100, 100), detectTolerance) {
		t.Errorf("Center = %v, want (100,100)", shape.Center)
	}
	if math.Abs(shape.RadiusX-50) > detectTolerance || math.Abs(shape.RadiusY-50) > detectTolerance {
		t.Errorf("radii = %f, %f, want 50", shape.RadiusX, shape.RadiusY)
	}
	if shape.Bounds != NewRect(50, 50, 100, 100) {
		t.Errorf("Bounds = %v", shape.Bounds)
	}
}

func TestDetectEllipse(t *testing.T) {
	p := NewPath()
	p.Ellipse(200, 150, 80, 40)

	shape := DetectPrimitive(p)
	if shape.Kind != PrimitiveEllipse {
		t.Fatalf("expected PrimitiveEllipse, got %v", shape.Kind)
	}
	if !shape.Center.ApproxEqual(Pt(200, 150), detectTolerance) {
		t.Errorf("Center = %v, want (200,150)", shape.Center)
	}
	if math.Abs(shape.RadiusX-80) > detectTolerance {
		t.Errorf("RadiusX = %f, want 80", shape.RadiusX)
	}
	if math.Abs(shape.RadiusY-40) > detectTolerance {
		t.Errorf("RadiusY = %f, want 40", shape.RadiusY)
	}
}

func TestDetectScaledCircleIsEllipse(t *testing.T) {
	p := NewPath().Circle(100, 100, 50).Transform(Scale(2, 1))
	shape := DetectPrimitive(p)
	if shape.Kind != PrimitiveEllipse {
		t.Fatalf("expected PrimitiveEllipse, got %v", shape.Kind)
	}
	if math.Abs(shape.RadiusX-100) > detectTolerance || math.Abs(shape.RadiusY-50) > detectTolerance {
		t.Errorf("radii = %f, %f, want 100, 50", shape.RadiusX, shape.RadiusY)
	}
}

func TestDetectRect(t *testing.T) {
	p := NewPath().Rectangle(10, 20, 30, 40)
	shape := DetectPrimitive(p)
	if shape.Kind != PrimitiveRect {
		t.Fatalf("expected PrimitiveRect, got %v", shape.Kind)
	}
	if shape.Bounds != NewRect(10, 20, 30, 40) {
		t.Errorf("Bounds = %v", shape.Bounds)
	}
}

func TestDetectUnknown(t *testing.T) {
	tests := []struct {
		name string
		p    *Path
	}{
		{"nil", nil},
		{"empty", NewPath()},
		{"triangle", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(5, 10).Close()},
		{"open circle", NewPath().MoveTo(150, 100).CubicTo(150, 127.6, 127.6, 150, 100, 150)},
		{"perturbed circle", NewPath().
			MoveTo(150, 100).
			CubicTo(150, 140, 127.6, 150, 100, 150).
			CubicTo(72.4, 150, 50, 127.6, 50, 100).
			CubicTo(50, 72.4, 72.4, 50, 100, 50).
			CubicTo(127.6, 50, 150, 72.4, 150, 100).
			Close()},
		{"rotated square", NewPath().Rectangle(0, 0, 10, 10).Transform(Rotate(math.Pi / 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPrimitive(tt.p); got.Kind != PrimitiveUnknown {
				t.Errorf("DetectPrimitive() = %v, want Unknown", got.Kind)
			}
		})
	}
}

func TestIsRectangle(t *testing.T) {
	tests := []struct {
		name string
		p    *Path
		want bool
	}{
		{"rectangle", NewPath().Rectangle(0, 0, 10, 10), true},
		{"set rect", NewPath().SetRect(NewRect(1, 1, 2, 2), nil), true},
		{"counter-clockwise", NewPath().MoveTo(0, 0).LineTo(0, 5).LineTo(5, 5).LineTo(5, 0).Close(), true},
		{"midpoint on edge", NewPath().MoveTo(0, 0).LineTo(5, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close(), true},
		{"missing corner", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close(), false},
		{"diagonal", NewPath().MoveTo(0, 0).LineTo(10, 10).LineTo(0, 10).Close(), false},
		{"curve", NewPath().MoveTo(0, 0).QuadTo(10, 0, 10, 10).LineTo(0, 10).Close(), false},
		{"flat line", NewPath().MoveTo(0, 0).LineTo(10, 0), false},
		{"extra ring on perimeter", NewPath().Rectangle(0, 0, 10, 10).MoveTo(0, 0).LineTo(10, 0).Close(), false},
		{"drawing after close", NewPath().Rectangle(0, 0, 10, 10).LineTo(10, 0), false},
		{"two rectangles", NewPath().Rectangle(0, 0, 10, 10).Rectangle(0, 0, 10, 10), false},
		{"empty", NewPath(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsRectangle(); got != tt.want {
				t.Errorf("IsRectangle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPolygon(t *testing.T) {
	tests := []struct {
		name string
		p    *Path
		want bool
	}{
		{"closed triangle", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(5, 10).Close(), true},
		{"ends on start", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(5, 10).LineTo(0, 0), true},
		{"open", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(5, 10), false},
		{"two subpaths", NewPath().Rectangle(0, 0, 1, 1).Rectangle(5, 5, 1, 1), false},
		{"curve", NewPath().MoveTo(0, 0).QuadTo(5, 5, 10, 0).Close(), false},
		{"rectangle", NewPath().Rectangle(0, 0, 3, 3), true},
		{"empty", NewPath(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsPolygon(); got != tt.want {
				t.Errorf("IsPolygon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetShape(t *testing.T) {
	p := NewPath()

	p.SetShape(NewRect(1, 2, 3, 4), nil)
	if p.Shape() != ShapeAxisRect || p.Bounds() != NewRect(1, 2, 3, 4) {
		t.Errorf("SetShape(Rect) = %v %v", p.Shape(), p.Bounds())
	}

	p.SetShape(IntRect{X: 1, Y: 1, W: 2, H: 2}, nil)
	if p.Shape() != ShapeAxisRect || p.Bounds() != NewRect(1, 1, 2, 2) {
		t.Errorf("SetShape(IntRect) = %v %v", p.Shape(), p.Bounds())
	}

	src := NewPath().MoveTo(0, 0).LineTo(1, 1)
	m := Translate(1, 0)
	p.SetShape(src, &m)
	if got := p.String(); got != "M1 0L2 1" {
		t.Errorf("SetShape(*Path) = %q", got)
	}

	tri := polygon{{0, 0}, {4, 0}, {0, 3}}
	p.SetShape(tri, nil)
	if got := p.String(); got != "M0 0L4 0L0 3Z" {
		t.Errorf("SetShape(polygon) = %q", got)
	}
	if p.Shape() != ShapeGeneral {
		t.Errorf("SetShape(polygon) shape = %v", p.Shape())
	}
	if p.Bounds() != tri.Bounds() {
		t.Errorf("Bounds() = %v, want %v", p.Bounds(), tri.Bounds())
	}

	scale := Scale(2, 2)
	p.SetShape(tri, &scale)
	if got := p.String(); got != "M0 0L8 0L0 6Z" {
		t.Errorf("SetShape(polygon, scale) = %q", got)
	}
}

func TestPrimitiveString(t *testing.T) {
	for k, want := range map[Primitive]string{
		PrimitiveUnknown: "Unknown",
		PrimitiveRect:    "Rect",
		PrimitiveCircle:  "Circle",
		PrimitiveEllipse: "Ellipse",
		Primitive(42):    "Unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
