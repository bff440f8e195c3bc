package array

// Delayed is an array whose elements are produced by calling a stored
// accessor at access time rather than reading from a backing store.
//
// A Delayed value is an immutable, cheaply copyable handle: a shape plus
// captured closures. It carries no storage and performs no caching — every
// accessor call re-invokes the captured function chain. Materializing one
// into storage is the job of Force.
type Delayed[E any] struct {
	extent       Shape
	prefersCoord bool
	touch        func() error
	get          func(c Coord) (E, error)
	lget         func(i int) (E, error)
}

// Verify that Delayed implements Source.
var _ Source[int] = (*Delayed[int])(nil)

// NoTouch is the touch action of arrays with no visibility requirements.
func NoTouch() error { return nil }

// FromCoordFunc builds a delayed array whose natural computation is
// expressed in structured coordinates. The linear accessor is derived by
// converting the index to a coordinate first, and the array reports a
// preference for coordinate access.
func FromCoordFunc[E any](extent Shape, touch func() error, get func(c Coord) (E, error)) *Delayed[E] {
	if touch == nil {
		touch = NoTouch
	}
	return &Delayed[E]{
		extent:       extent,
		prefersCoord: true,
		touch:        touch,
		get:          get,
		lget: func(i int) (E, error) {
			return get(extent.FromIndex(i))
		},
	}
}

// FromLinearFunc builds a delayed array whose natural computation is
// expressed as a flat index. The coordinate accessor is derived by
// linearizing the coordinate first, and the array reports a preference for
// linear access.
func FromLinearFunc[E any](extent Shape, touch func() error, lget func(i int) (E, error)) *Delayed[E] {
	if touch == nil {
		touch = NoTouch
	}
	return &Delayed[E]{
		extent:       extent,
		prefersCoord: false,
		touch:        touch,
		get: func(c Coord) (E, error) {
			return lget(extent.ToIndex(c))
		},
		lget: lget,
	}
}

// Extent returns the shape of the array's index domain.
func (d *Delayed[E]) Extent() Shape {
	return d.extent
}

// PrefersCoord reports whether structured-coordinate access is the cheaper
// path for this array.
func (d *Delayed[E]) PrefersCoord() bool {
	return d.prefersCoord
}

// Touch runs the captured visibility barrier. Errors from the barrier
// propagate unchanged.
func (d *Delayed[E]) Touch() error {
	return d.touch()
}

// At computes the element at coordinate c. The coordinate is not
// bounds-checked, and the result is not memoized: each call re-runs the
// captured accessor chain.
func (d *Delayed[E]) At(c Coord) (E, error) {
	return d.get(c)
}

// AtLinear computes the element at flat index i. Same contract as At.
func (d *Delayed[E]) AtLinear(i int) (E, error) {
	return d.lget(i)
}
