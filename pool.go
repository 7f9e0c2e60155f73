package geom

import (
	"log/slog"
	"slices"
)

// freeList is a bounded stack of released objects.
type freeList[T any] struct {
	items    []*T
	capacity int
}

func (f *freeList[T]) pop() *T {
	n := len(f.items)
	if n == 0 {
		return nil
	}
	x := f.items[n-1]
	f.items[n-1] = nil
	f.items = f.items[:n-1]
	return x
}

// push keeps x unless the list is full or already holds it.
func (f *freeList[T]) push(x *T) bool {
	if len(f.items) >= f.capacity || slices.Contains(f.items, x) {
		return false
	}
	f.items = append(f.items, x)
	return true
}

// PathPool manages a pool of reusable Path objects.
//
// A pool is an ordinary value owned by the caller; there is no global
// pool. It is not safe for concurrent use: give each goroutine its own
// pool or guard it with a lock.
//
// Usage:
//
//	pool := geom.NewPathPool()
//	p := pool.Acquire()
//	defer pool.Recycle(p)
//	// use p...
type PathPool struct {
	free     freeList[Path]
	pathOpts []PathOption
}

// NewPathPool creates an empty path pool.
func NewPathPool(opts ...PoolOption) *PathPool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PathPool{
		free:     freeList[Path]{items: make([]*Path, 0, o.capacity), capacity: o.capacity},
		pathOpts: o.pathOpts,
	}
}

// Acquire returns an empty path, reusing a recycled one when available.
func (pp *PathPool) Acquire() *Path {
	if p := pp.free.pop(); p != nil {
		p.pooled = false
		p.rule = FillRuleNonZero
		p.tolerance = defaultTolerance
		p.emptyEpsilon = defaultEmptyEpsilon
		for _, opt := range pp.pathOpts {
			opt(p)
		}
		return p
	}
	return NewPath(pp.pathOpts...)
}

// Recycle resets p and returns it to the pool. p must not be used again
// until it is handed out by Acquire. Recycling nil or an already recycled
// path does nothing.
func (pp *PathPool) Recycle(p *Path) {
	if p == nil || p.pooled {
		return
	}
	p.Reset()
	if !pp.free.push(p) {
		Logger().Debug("geom: path pool full, dropping path", slog.Int("capacity", pp.free.capacity))
		return
	}
	p.pooled = true
}

// Len returns the number of paths waiting to be reused.
func (pp *PathPool) Len() int { return len(pp.free.items) }

// RectPool is a free list of *Rect. Acquire may return the very instance
// passed to an earlier Release with its fields overwritten, so a handle
// must not be kept after releasing it. Not safe for concurrent use.
type RectPool struct {
	free freeList[Rect]
}

// NewRectPool creates an empty rectangle pool.
func NewRectPool(opts ...PoolOption) *RectPool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RectPool{free: freeList[Rect]{capacity: o.capacity}}
}

// Acquire returns a rectangle set to (x, y, w, h).
func (rp *RectPool) Acquire(x, y, w, h float64) *Rect {
	r := rp.free.pop()
	if r == nil {
		r = new(Rect)
	}
	*r = Rect{X: x, Y: y, W: w, H: h}
	return r
}

// Release returns r to the pool. Releasing a rectangle that is already
// waiting in the pool does nothing.
func (rp *RectPool) Release(r *Rect) {
	if r != nil {
		rp.free.push(r)
	}
}

// Len returns the number of rectangles waiting to be reused.
func (rp *RectPool) Len() int { return len(rp.free.items) }

// IntRectPool is RectPool for IntRect.
type IntRectPool struct {
	free freeList[IntRect]
}

// NewIntRectPool creates an empty integer rectangle pool.
func NewIntRectPool(opts ...PoolOption) *IntRectPool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &IntRectPool{free: freeList[IntRect]{capacity: o.capacity}}
}

// Acquire returns a rectangle set to (x, y, w, h).
func (rp *IntRectPool) Acquire(x, y, w, h int) *IntRect {
	r := rp.free.pop()
	if r == nil {
		r = new(IntRect)
	}
	*r = IntRect{X: x, Y: y, W: w, H: h}
	return r
}

// Release returns r to the pool. Releasing a rectangle that is already
// waiting in the pool does nothing.
func (rp *IntRectPool) Release(r *IntRect) {
	if r != nil {
		rp.free.push(r)
	}
}

// Len returns the number of rectangles waiting to be reused.
func (rp *IntRectPool) Len() int { return len(rp.free.items) }
