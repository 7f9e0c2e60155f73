// Package svgpath reads and writes SVG path data ("M0 0L10 0Z").
//
// Parse understands the full command set of the SVG 1.1 path grammar,
// absolute and relative. Shorthand commands are expanded and elliptical
// arcs are approximated by cubic Bézier curves, so the resulting
// geom.Path only holds MoveTo, LineTo, QuadTo, CubicTo and Close.
package svgpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/geom"
)

// SyntaxError reports malformed path data. It wraps
// geom.ErrInvalidArgument.
type SyntaxError struct {
	Offset int // byte offset of the offending input
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return geom.ErrInvalidArgument }

// Parse converts SVG path data into a new path built with opts. An empty
// string yields an empty path.
func Parse(d string, opts ...geom.PathOption) (*geom.Path, error) {
	ps := &parser{d: []byte(d), p: geom.NewPath(opts...)}
	if err := ps.run(); err != nil {
		return nil, err
	}
	return ps.p, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// path data literals.
func MustParse(d string) *geom.Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	d   []byte
	pos int
	p   *geom.Path

	cur, start geom.Point
	ctrl       geom.Point // last control point, reflected by S and T
	prev       byte       // previous command, upper case
	closed     bool
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func isCommand(c byte) bool {
	switch c | 0x20 {
	case 'm', 'z', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a':
		return true
	}
	return false
}

func (ps *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: ps.pos, Msg: fmt.Sprintf(format, args...)}
}

func (ps *parser) skip() {
	for ps.pos < len(ps.d) && isSeparator(ps.d[ps.pos]) {
		ps.pos++
	}
}

func (ps *parser) num() (float64, error) {
	ps.skip()
	f, n := strconv.ParseFloat(ps.d[ps.pos:])
	if n == 0 {
		if ps.pos >= len(ps.d) {
			return 0, ps.errorf("unexpected end of path data")
		}
		return 0, ps.errorf("expected number, found %q", ps.d[ps.pos])
	}
	ps.pos += n
	return f, nil
}

func (ps *parser) nums(dst []float64) error {
	for i := range dst {
		v, err := ps.num()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// flag reads an arc flag. Flags are single characters and need no
// separator: "a1 1 0 01 5 5" is valid.
func (ps *parser) flag() (bool, error) {
	ps.skip()
	if ps.pos < len(ps.d) {
		switch ps.d[ps.pos] {
		case '0':
			ps.pos++
			return false, nil
		case '1':
			ps.pos++
			return true, nil
		}
	}
	return false, ps.errorf("expected arc flag")
}

func (ps *parser) run() error {
	var cmd byte
	for {
		ps.skip()
		if ps.pos >= len(ps.d) {
			return nil
		}
		if c := ps.d[ps.pos]; isCommand(c) {
			if ps.p.IsEmpty() && c|0x20 != 'm' {
				return ps.errorf("path data must begin with a moveto")
			}
			cmd = c
			ps.pos++
		} else if cmd == 0 || cmd|0x20 == 'z' {
			return ps.errorf("expected command, found %q", c)
		}
		if err := ps.segment(cmd); err != nil {
			return err
		}
		// Coordinates following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func (ps *parser) segment(cmd byte) error {
	var a [6]float64
	rel := cmd >= 'a'
	up := cmd &^ 0x20
	abs := func(x, y float64) geom.Point {
		if rel {
			return geom.Pt(ps.cur.X+x, ps.cur.Y+y)
		}
		return geom.Pt(x, y)
	}

	if up != 'M' && up != 'Z' && ps.closed {
		// Drawing after closepath starts a new subpath at the old start.
		ps.p.MoveTo(ps.start.X, ps.start.Y)
		ps.closed = false
	}

	switch up {
	case 'M':
		if err := ps.nums(a[:2]); err != nil {
			return err
		}
		ps.cur = abs(a[0], a[1])
		ps.start = ps.cur
		ps.p.MoveTo(ps.cur.X, ps.cur.Y)
		ps.closed = false
	case 'Z':
		ps.p.Close()
		ps.cur = ps.start
		ps.closed = true
	case 'L':
		if err := ps.nums(a[:2]); err != nil {
			return err
		}
		ps.lineTo(abs(a[0], a[1]))
	case 'H':
		if err := ps.nums(a[:1]); err != nil {
			return err
		}
		x := a[0]
		if rel {
			x += ps.cur.X
		}
		ps.lineTo(geom.Pt(x, ps.cur.Y))
	case 'V':
		if err := ps.nums(a[:1]); err != nil {
			return err
		}
		y := a[0]
		if rel {
			y += ps.cur.Y
		}
		ps.lineTo(geom.Pt(ps.cur.X, y))
	case 'C':
		if err := ps.nums(a[:6]); err != nil {
			return err
		}
		ps.cubicTo(abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5]))
	case 'S':
		if err := ps.nums(a[:4]); err != nil {
			return err
		}
		c1 := ps.cur
		if ps.prev == 'C' || ps.prev == 'S' {
			c1 = ps.cur.Mul(2).Sub(ps.ctrl)
		}
		ps.cubicTo(c1, abs(a[0], a[1]), abs(a[2], a[3]))
	case 'Q':
		if err := ps.nums(a[:4]); err != nil {
			return err
		}
		ps.quadTo(abs(a[0], a[1]), abs(a[2], a[3]))
	case 'T':
		if err := ps.nums(a[:2]); err != nil {
			return err
		}
		c := ps.cur
		if ps.prev == 'Q' || ps.prev == 'T' {
			c = ps.cur.Mul(2).Sub(ps.ctrl)
		}
		ps.quadTo(c, abs(a[0], a[1]))
	case 'A':
		if err := ps.nums(a[:3]); err != nil {
			return err
		}
		large, err := ps.flag()
		if err != nil {
			return err
		}
		sweep, err := ps.flag()
		if err != nil {
			return err
		}
		if err := ps.nums(a[3:5]); err != nil {
			return err
		}
		end := abs(a[3], a[4])
		arcToCubics(ps.cur, a[0], a[1], a[2], large, sweep, end, func(c1, c2, to geom.Point) {
			ps.p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
		}, ps.p.LineTo)
		ps.cur = end
	}
	ps.prev = up
	return nil
}

func (ps *parser) lineTo(to geom.Point) {
	ps.p.LineTo(to.X, to.Y)
	ps.cur = to
}

func (ps *parser) quadTo(c, to geom.Point) {
	ps.p.QuadTo(c.X, c.Y, to.X, to.Y)
	ps.ctrl = c
	ps.cur = to
}

func (ps *parser) cubicTo(c1, c2, to geom.Point) {
	ps.p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	ps.ctrl = c2
	ps.cur = to
}

// arcToCubics approximates the SVG elliptical arc from p0 to p1 with at
// most one cubic per quarter turn. Radii are made non-negative and scaled
// up when too small to reach p1. A zero radius degenerates to a line; an
// arc ending where it starts is dropped.
func arcToCubics(p0 geom.Point, rx, ry, rotDeg float64, large, sweep bool, p1 geom.Point,
	cubic func(c1, c2, to geom.Point), line func(x, y float64) *geom.Path) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		line(p1.X, p1.Y)
		return
	}

	sin, cos := math.Sincos(rotDeg * math.Pi / 180)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1p := cos*dx + sin*dy
	y1p := -sin*dx + cos*dy

	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(math.Max(num/den, 0))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cos*cxp - sin*cyp + (p0.X+p1.X)/2
	cy := sin*cxp + cos*cyp + (p0.Y+p1.Y)/2

	theta := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	delta := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx) - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	geom.EllipticalArc(geom.Pt(cx, cy), rx, ry, rotDeg*math.Pi/180, theta, delta, p1, cubic)
}
