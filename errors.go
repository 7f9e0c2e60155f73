package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports malformed input such as a wrong coordinate
// count. It is returned, never panicked.
var ErrInvalidArgument = errors.New("geom: invalid argument")

// ErrCoordinateCount reports a coordinate list whose length does not match
// any supported curve degree.
var ErrCoordinateCount = fmt.Errorf("%w: unsupported coordinate count", ErrInvalidArgument)

// ErrUnsupportedDegree reports curve algebra requested for a degree outside
// linear..cubic.
var ErrUnsupportedDegree = fmt.Errorf("%w: unsupported curve degree", ErrInvalidArgument)

// ErrNoCurrentPoint is the panic value (wrapped) when a drawing segment is
// emitted before any MoveTo.
var ErrNoCurrentPoint = errors.New("geom: no current point, path must start with MoveTo")

// ErrConcurrentModification is the panic value (wrapped) when a path is
// mutated while a PathIterator over it is still in use.
var ErrConcurrentModification = errors.New("geom: path modified during iteration")

// ErrShortBuffer is the panic value (wrapped) when a coordinate buffer is
// too small for the current segment.
var ErrShortBuffer = errors.New("geom: coordinate buffer too small")
