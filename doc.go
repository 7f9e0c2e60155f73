// Package geom provides a vector path buffer and the Bézier curve math
// underneath it.
//
// # Overview
//
// A Path is an ordered list of segments (MoveTo, LineTo, QuadTo, CubicTo,
// Close) stored as a kind stream plus a flat coordinate stream. Paths can be
// transformed in place, appended, clipped to rectangles, hit-tested under a
// fill rule and walked with a PathIterator by an external renderer.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	p := geom.NewPath()
//	p.MoveTo(0, 0).
//	    LineTo(100, 0).
//	    QuadTo(120, 50, 100, 100).
//	    Close()
//
//	if p.Contains(50, 10) {
//	    // hit
//	}
//
//	// Clip to a viewport; false means nothing is left.
//	visible := p.Intersect(geom.Rect{X: 0, Y: 0, W: 64, H: 64})
//
// # Curves
//
// BezierCurve is an immutable quadratic or cubic curve. It can be evaluated,
// differentiated, split with de Casteljau's construction, cut along the edges
// of a rectangle and bounded tightly. ExtractBezierCurvesFromPath pulls every
// curve segment out of a Path.
//
// # Pools
//
// PathPool and RectPool are explicit free lists. They are owned by the
// caller and are not safe for concurrent use.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Path, PathIterator, BezierCurve, Rect, IntRect, Matrix, Point
//   - raster: coverage rendering through golang.org/x/image/vector
//   - svgpath: SVG path data parsing and formatting
//   - orbgeom: conversion to and from github.com/paulmach/orb polygons
//   - cmd/pathtool: command line front end
//
// # Logging
//
// geom is silent by default. Call SetLogger to receive debug diagnostics.
package geom
