package array

// Map fuses a per-element transform over a source array, producing a delayed
// array that applies f after every read. The result shares the source's
// extent, touch barrier, and indexing preference; no intermediate storage is
// created and no extra barrier is introduced.
//
// f may fail; its errors propagate unchanged to the caller of the accessor
// that triggered the read.
func Map[A, B any](src Source[A], f func(A) (B, error)) *Delayed[B] {
	return &Delayed[B]{
		extent:       src.Extent(),
		prefersCoord: src.PrefersCoord(),
		touch:        src.Touch,
		get: func(c Coord) (B, error) {
			a, err := src.At(c)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(a)
		},
		lget: func(i int) (B, error) {
			a, err := src.AtLinear(i)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(a)
		},
	}
}

// Zip fuses n source arrays of a common element type through an n-ary
// combiner. fun receives one element per source, in source order, as an
// n-length slice it must not retain.
//
// The result extent is the common extent when all sources agree, otherwise
// the component-wise minimum (Intersect) of all extents. When extents
// differ, linear indices are no longer comparable across sources, so the
// result prefers coordinate access; otherwise the preference is the OR of
// the sources' preferences.
//
// The result's touch runs every source's touch sequentially, in source
// order, stopping at the first error.
//
// Zip panics if srcs is empty: arity is a construction-time precondition,
// not a runtime error.
func Zip[A, B any](fun func(elems []A) (B, error), srcs []Source[A]) *Delayed[B] {
	if len(srcs) == 0 {
		panic("array: Zip requires at least one source")
	}

	extent := srcs[0].Extent()
	needReshape := false
	prefersCoord := false
	for _, s := range srcs {
		if !s.Extent().Equal(extent) {
			needReshape = true
		}
		if s.PrefersCoord() {
			prefersCoord = true
		}
	}
	if needReshape {
		shapes := make([]Shape, len(srcs))
		for k, s := range srcs {
			shapes[k] = s.Extent()
		}
		extent = Intersect(shapes...)
		prefersCoord = true
	}

	touch := func() error {
		for _, s := range srcs {
			if err := s.Touch(); err != nil {
				return err
			}
		}
		return nil
	}

	get := func(c Coord) (B, error) {
		elems := make([]A, len(srcs))
		for k, s := range srcs {
			a, err := s.At(c)
			if err != nil {
				var zero B
				return zero, err
			}
			elems[k] = a
		}
		return fun(elems)
	}

	var lget func(i int) (B, error)
	if needReshape {
		lget = func(i int) (B, error) {
			c := extent.FromIndex(i)
			elems := make([]A, len(srcs))
			for k, s := range srcs {
				// A source whose extent matches the result exactly keeps its
				// direct linear read; any other extent goes through the
				// coordinate path.
				var (
					a   A
					err error
				)
				if s.Extent().Equal(extent) {
					a, err = s.AtLinear(i)
				} else {
					a, err = s.At(c)
				}
				if err != nil {
					var zero B
					return zero, err
				}
				elems[k] = a
			}
			return fun(elems)
		}
	} else {
		lget = func(i int) (B, error) {
			elems := make([]A, len(srcs))
			for k, s := range srcs {
				a, err := s.AtLinear(i)
				if err != nil {
					var zero B
					return zero, err
				}
				elems[k] = a
			}
			return fun(elems)
		}
	}

	return &Delayed[B]{
		extent:       extent,
		prefersCoord: prefersCoord,
		touch:        touch,
		get:          get,
		lget:         lget,
	}
}

// Zip2 fuses two sources through a binary combiner. It is a convenience
// wrapper over the n-ary Zip.
func Zip2[A, B any](fun func(a, b A) (B, error), x, y Source[A]) *Delayed[B] {
	return Zip(func(elems []A) (B, error) {
		return fun(elems[0], elems[1])
	}, []Source[A]{x, y})
}
