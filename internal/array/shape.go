package array

import "fmt"

// Shape represents the extents of an array's index domain.
type Shape []int

// Coord is a structured coordinate into a Shape's index domain.
// len(Coord) matches len(Shape) for the array it indexes.
type Coord []int

// NumElements returns the total number of indexable elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ToIndex converts a structured coordinate to a flat row-major index.
// The coordinate is not bounds-checked against the shape.
func (s Shape) ToIndex(c Coord) int {
	i := 0
	stride := 1
	for d := len(s) - 1; d >= 0; d-- {
		i += c[d] * stride
		stride *= s[d]
	}
	return i
}

// FromIndex converts a flat row-major index to a structured coordinate.
// For all 0 <= i < NumElements(), ToIndex(FromIndex(i)) == i.
func (s Shape) FromIndex(i int) Coord {
	c := make(Coord, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		c[d] = i % s[d]
		i /= s[d]
	}
	return c
}

// Intersect computes the component-wise minimum extent over a set of shapes.
// All shapes must have the same rank; rank mismatches are a contract
// violation of the caller and are not validated here.
func Intersect(shapes ...Shape) Shape {
	if len(shapes) == 0 {
		return Shape{}
	}
	result := shapes[0].Clone()
	for _, s := range shapes[1:] {
		for d := range result {
			if s[d] < result[d] {
				result[d] = s[d]
			}
		}
	}
	return result
}
