// Copyright 2025 Drape Array Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides delayed multi-dimensional arrays and fusion for
// the Drape framework.
//
// # Overview
//
// A delayed array defers element computation to access time: it is a shape
// plus accessor closures, with no backing storage. This package provides:
//   - Generic delayed arrays (Delayed[E]) built from coordinate or linear
//     accessor functions
//   - Fusion operators (Map, Zip) that compose accessors without
//     materializing intermediate arrays
//   - Manifest (materialized) arrays and a parallel Force driver
//   - Fixed-width vector elements (Vec[E]) with per-lane decomposition
//
// # Basic Usage
//
//	import "github.com/drape-ml/drape/array"
//
//	func main() {
//	    ramp := array.FromLinearFunc(array.Shape{1024}, nil,
//	        func(i int) (float64, error) { return float64(i), nil })
//	    scaled := array.Map[float64, float64](ramp,
//	        func(v float64) (float64, error) { return v * 0.5, nil })
//
//	    out, err := array.Force[float64](scaled) // Parallel materialization
//	    _ = out
//	    _ = err
//	}
//
// # Accessor Contract
//
// Element accessors are functions returning (E, error). Every access
// re-invokes the composed accessor chain: nothing is cached, no bounds are
// checked, and closure failures propagate unchanged. An array's Touch
// barrier must complete before its first element access; Force handles this
// automatically.
//
// # Fusion
//
// Map transforms one source per element. Zip combines n sources of a common
// element type; when source extents differ the result extent is their
// component-wise minimum. Both accept any Source implementation, so delayed
// and manifest arrays compose freely.
package array
