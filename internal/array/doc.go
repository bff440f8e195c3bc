// Package array implements the delayed array representation and its fusion
// machinery.
//
// A Delayed value defers element computation to access time: it is a shape
// plus captured accessor closures, with no backing storage. Map and Zip
// compose accessors of any Source implementation into new delayed arrays
// without materializing intermediates. Manifest is the storage-backed
// counterpart, and Force drives a delayed pipeline into one.
//
// The package performs no concurrency of its own. Accessors built here are
// safe for concurrent use over disjoint index ranges as long as the captured
// source closures are; the fill engine in Force relies on that.
package array
