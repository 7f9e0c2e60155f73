package geom

// PathOption configures a Path during creation.
//
// Example:
//
//	p := geom.NewPath(geom.WithFillRule(geom.FillRuleEvenOdd))
type PathOption func(*Path)

// WithFillRule sets the initial fill rule.
func WithFillRule(r FillRule) PathOption {
	return func(p *Path) {
		p.rule = r
	}
}

// WithTolerance sets the curve flattening tolerance used by Contains,
// Winding and Flatten. Non-positive values keep the default of 0.1.
func WithTolerance(tol float64) PathOption {
	return func(p *Path) {
		if tol > 0 {
			p.tolerance = tol
		}
	}
}

// WithEmptyEpsilon sets the area under which Intersect reports an empty
// result. Negative values are ignored.
func WithEmptyEpsilon(eps float64) PathOption {
	return func(p *Path) {
		if eps >= 0 {
			p.emptyEpsilon = eps
		}
	}
}

// WithCapacity preallocates room for the given number of segments.
func WithCapacity(segments int) PathOption {
	return func(p *Path) {
		if segments > cap(p.kinds) {
			p.kinds = make([]SegmentKind, 0, segments)
			p.coords = make([]float64, 0, segments*4)
		}
	}
}

// PoolOption configures a PathPool, RectPool or IntRectPool.
type PoolOption func(*poolOptions)

type poolOptions struct {
	capacity int
	pathOpts []PathOption
}

// defaultPoolCapacity bounds how many released objects a pool keeps.
const defaultPoolCapacity = 20

func defaultPoolOptions() poolOptions {
	return poolOptions{capacity: defaultPoolCapacity}
}

// WithPoolCapacity bounds how many released objects the pool retains.
// Objects released beyond the bound are left to the garbage collector.
func WithPoolCapacity(n int) PoolOption {
	return func(o *poolOptions) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// WithPathOptions sets the options applied to every path a PathPool
// creates or hands out again.
func WithPathOptions(opts ...PathOption) PoolOption {
	return func(o *poolOptions) {
		o.pathOpts = append(o.pathOpts, opts...)
	}
}
