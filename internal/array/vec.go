package array

// Vec is a fixed-width vector of elements, used as the element type of
// arrays processed one SIMD-style lane at a time. The width is fixed at
// construction; all vectors flowing through one array share it.
type Vec[E any] []E

// MakeVec builds a vector from its lanes.
func MakeVec[E any](lanes ...E) Vec[E] {
	return Vec[E](lanes)
}

// GenerateVec builds a width-lane vector by calling f for each lane.
func GenerateVec[E any](width int, f func(lane int) E) Vec[E] {
	v := make(Vec[E], width)
	for j := range v {
		v[j] = f(j)
	}
	return v
}

// Width returns the number of lanes.
func (v Vec[E]) Width() int {
	return len(v)
}

// Lane returns the element at lane j. Not bounds-checked beyond the
// underlying slice access.
func (v Vec[E]) Lane(j int) E {
	return v[j]
}

// MapVec applies f to every lane.
func MapVec[A, B any](v Vec[A], f func(A) B) Vec[B] {
	out := make(Vec[B], len(v))
	for j, a := range v {
		out[j] = f(a)
	}
	return out
}

// ZipVec combines two same-width vectors lane-wise. Panics if widths differ.
func ZipVec[A, B, C any](x Vec[A], y Vec[B], f func(A, B) C) Vec[C] {
	if len(x) != len(y) {
		panic("array: ZipVec width mismatch")
	}
	out := make(Vec[C], len(x))
	for j := range x {
		out[j] = f(x[j], y[j])
	}
	return out
}
