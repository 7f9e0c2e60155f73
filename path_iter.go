package geom

import (
	"fmt"
	"iter"
)

// PathIterator walks a path segment by segment in insertion order.
//
// The path must not be mutated while an iterator over it is in use; the
// next call after a mutation panics with an error wrapping
// ErrConcurrentModification.
//
//	it := p.Iterator()
//	var buf [6]float64
//	for ; !it.IsDone(); it.Next() {
//	    kind := it.CurrentSegment(buf[:])
//	    // buf[:kind.CoordCount()] holds the segment's coordinates
//	}
type PathIterator struct {
	path    *Path
	seg     int
	coord   int
	version uint64
}

// Iterator returns a new iterator positioned at the first segment.
func (p *Path) Iterator() *PathIterator {
	return &PathIterator{path: p, version: p.version}
}

func (it *PathIterator) check() {
	if it.path.version != it.version {
		panic(fmt.Errorf("geom: PathIterator: %w", ErrConcurrentModification))
	}
}

// IsDone reports whether every segment has been visited.
func (it *PathIterator) IsDone() bool {
	it.check()
	return it.seg >= len(it.path.kinds)
}

// Next advances to the following segment. It does nothing once the
// iterator is done.
func (it *PathIterator) Next() {
	it.check()
	if it.seg >= len(it.path.kinds) {
		return
	}
	it.coord += it.path.kinds[it.seg].CoordCount()
	it.seg++
}

// CurrentSegment copies the current segment's coordinates into coords and
// returns its kind. Exactly kind.CoordCount() values are written; a buffer
// of 6 values always suffices. A shorter buffer panics with ErrShortBuffer.
// Calling it on a done iterator panics.
func (it *PathIterator) CurrentSegment(coords []float64) SegmentKind {
	it.check()
	k := it.path.kinds[it.seg]
	n := k.CoordCount()
	if len(coords) < n {
		panic(fmt.Errorf("geom: PathIterator: %w: %s needs %d, got %d", ErrShortBuffer, k, n, len(coords)))
	}
	copy(coords, it.path.coords[it.coord:it.coord+n])
	return k
}

// Segments returns an iterator over segment kinds and their coordinates.
// The coordinate slice aliases the path and is only valid during the
// iteration step.
//
//	for kind, c := range p.Segments() {
//	    fmt.Println(kind, c)
//	}
func (p *Path) Segments() iter.Seq2[SegmentKind, []float64] {
	return func(yield func(SegmentKind, []float64) bool) {
		i := 0
		for _, k := range p.kinds {
			n := k.CoordCount()
			if !yield(k, p.coords[i:i+n:i+n]) {
				return
			}
			i += n
		}
	}
}
