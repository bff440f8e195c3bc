package array

// Source is the minimal read capability the fusion engine needs from an
// array representation. Both Delayed and Manifest implement it, and fusion
// accepts any implementation, so delayed and materialized arrays compose
// freely.
//
// Contract:
//   - Extent is fixed for the value's lifetime.
//   - Touch must complete before the first At/AtLinear call; it must be safe
//     to invoke more than once.
//   - At and AtLinear are two views of the same function: for any valid
//     coordinate c, At(c) and AtLinear(Extent().ToIndex(c)) produce the same
//     element and the same effects.
//   - Neither accessor bounds-checks; out-of-range access is undefined.
//   - Accessors must be safe to call concurrently on disjoint index ranges.
type Source[E any] interface {
	// Extent returns the shape of the array's index domain.
	Extent() Shape

	// Touch runs the array's visibility barrier. All prerequisite memory
	// effects are visible to any subsequent accessor call once it returns.
	Touch() error

	// PrefersCoord reports whether structured-coordinate access is cheaper
	// than flat-index access for this array.
	PrefersCoord() bool

	// At computes the element at a structured coordinate.
	At(c Coord) (E, error)

	// AtLinear computes the element at a flat row-major index.
	AtLinear(i int) (E, error)
}
