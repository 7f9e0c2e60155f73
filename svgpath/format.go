package svgpath

import (
	"strconv"

	"github.com/gogpu/geom"
)

var commands = [...]byte{
	geom.SegMoveTo:  'M',
	geom.SegLineTo:  'L',
	geom.SegQuadTo:  'Q',
	geom.SegCubicTo: 'C',
	geom.SegClose:   'Z',
}

// Format writes p as compact SVG path data using absolute commands only.
// A minus sign doubles as the separator between numbers. Parse(Format(p))
// yields the same segments with coordinates equal up to float rounding.
func Format(p *geom.Path) string {
	return string(AppendFormat(nil, p))
}

// AppendFormat appends the formatted path to b.
func AppendFormat(b []byte, p *geom.Path) []byte {
	var c [6]float64
	for it := p.Iterator(); !it.IsDone(); it.Next() {
		k := it.CurrentSegment(c[:])
		b = append(b, commands[k])
		for i, v := range c[:k.CoordCount()] {
			if i > 0 && !(v < 0) {
				b = append(b, ' ')
			}
			b = strconv.AppendFloat(b, v, 'g', -1, 64)
		}
	}
	return b
}
