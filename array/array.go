// Copyright 2025 Drape Array Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for delayed arrays in the Drape framework.
//
// The package defines core types for shape-polymorphic lazy arrays:
//   - Delayed[E]: An array whose elements are computed at access time
//   - Manifest[E]: A materialized array over flat row-major storage
//   - Source[E]: The read capability both implement, consumed by fusion
//   - Shape, Coord: Index domain types
//
// Example:
//
//	xs := array.FromLinearFunc(array.Shape{4}, nil,
//	    func(i int) (int, error) { return i * 2, nil })
//	ys := array.Map[int, int](xs, func(v int) (int, error) { return v + 1, nil })
//	out, err := array.Force[int](ys) // [1 3 5 7]
package array

import (
	"github.com/drape-ml/drape/internal/array"
	"github.com/drape-ml/drape/internal/parallel"
)

// Type aliases for public API

// Shape represents the extents of an array's index domain.
// Example: Shape{2, 3, 4} describes a 3D domain with extents 2×3×4.
type Shape = array.Shape

// Coord is a structured coordinate into a Shape's index domain.
type Coord = array.Coord

// Source is the minimal read capability the fusion engine needs from an
// array representation.
type Source[E any] = array.Source[E]

// Delayed is an array whose elements are produced by stored accessor
// functions at access time. It is immutable and cheaply copyable.
type Delayed[E any] = array.Delayed[E]

// Manifest is a materialized array backed by a flat row-major slice.
type Manifest[E any] = array.Manifest[E]

// Vec is a fixed-width vector of elements, used as the element type of
// arrays processed one lane at a time.
type Vec[E any] = array.Vec[E]

// ParallelConfig controls how Force distributes the fill across workers.
type ParallelConfig = parallel.Config

// Construction functions

// FromCoordFunc builds a delayed array from a structured-coordinate
// accessor. A nil touch means no visibility barrier is required.
func FromCoordFunc[E any](extent Shape, touch func() error, get func(c Coord) (E, error)) *Delayed[E] {
	return array.FromCoordFunc(extent, touch, get)
}

// FromLinearFunc builds a delayed array from a flat-index accessor.
// A nil touch means no visibility barrier is required.
func FromLinearFunc[E any](extent Shape, touch func() error, lget func(i int) (E, error)) *Delayed[E] {
	return array.FromLinearFunc(extent, touch, lget)
}

// NewManifest allocates a zeroed manifest array of the given shape.
func NewManifest[E any](extent Shape) (*Manifest[E], error) {
	return array.NewManifest[E](extent)
}

// FromSlice builds a manifest array over a row-major element slice.
// The slice is adopted, not copied.
func FromSlice[E any](data []E, extent Shape) (*Manifest[E], error) {
	return array.FromSlice(data, extent)
}

// Fusion

// Map fuses a per-element transform over a source array. The result shares
// the source's extent, touch barrier, and indexing preference.
func Map[A, B any](src Source[A], f func(A) (B, error)) *Delayed[B] {
	return array.Map(src, f)
}

// Zip fuses n source arrays through an n-ary combiner. When source extents
// differ the result extent is their component-wise minimum.
func Zip[A, B any](fun func(elems []A) (B, error), srcs []Source[A]) *Delayed[B] {
	return array.Zip(fun, srcs)
}

// Zip2 fuses two sources through a binary combiner.
func Zip2[A, B any](fun func(a, b A) (B, error), x, y Source[A]) *Delayed[B] {
	return array.Zip2(fun, x, y)
}

// Lanes decomposes an array of width-lane vectors into one delayed array
// per lane.
func Lanes[E any](src Source[Vec[E]], width int) []*Delayed[E] {
	return array.Lanes(src, width)
}

// Vectors

// MakeVec builds a fixed-width vector from its lanes.
func MakeVec[E any](lanes ...E) Vec[E] {
	return array.MakeVec(lanes...)
}

// GenerateVec builds a width-lane vector by calling f for each lane.
func GenerateVec[E any](width int, f func(lane int) E) Vec[E] {
	return array.GenerateVec(width, f)
}

// Materialization

// Force materializes a source array into manifest storage using the
// default parallel configuration.
func Force[E any](src Source[E]) (*Manifest[E], error) {
	return array.Force(src)
}

// ForceWith materializes a source array into manifest storage with an
// explicit parallel configuration.
func ForceWith[E any](src Source[E], cfg ParallelConfig) (*Manifest[E], error) {
	return array.ForceWith(src, cfg)
}

// Utility functions

// Intersect computes the component-wise minimum extent over a set of shapes.
func Intersect(shapes ...Shape) Shape {
	return array.Intersect(shapes...)
}

// DefaultParallelConfig returns the worker configuration Force uses when
// none is given.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a configuration that disables parallelism.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
