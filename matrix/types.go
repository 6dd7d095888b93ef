// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types.
// This file contains ONLY the read-only Matrix interface consumed by Equal and
// Fprint. The concrete storage (*Dense) lives in impl_dense.go.
package matrix

// Matrix is a read-only two-dimensional view over uint64 values.
// *Dense is the only implementation in this package; the interface exists so
// comparison and printing work on wrappers and foreign storages too.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (uint64, error)
}
