// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the nil/shape checks shared by
//    NewDense, Equal, Fprint and the facades in api.go.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilMatrix reports whether m is nil, including a typed nil *Dense held in
// the interface (which compares non-nil with ==).
func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil (typed nils included).
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative and that a value
// sequence of length n fills exactly rows*cols cells. NewDense runs it before
// allocating.
//
// Errors:
//   - ErrBadShape for a negative dimension or n != rows*cols.
//   - ErrAllocation when rows*cols does not fit an int.
//
// Complexity: O(1).
func ValidateShape(rows, cols, n int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}
	cells, err := elementCount(rows, cols)
	if err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if n != cells {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%d values for %d cells: %w", n, cells, ErrBadShape))
	}

	return nil
}

// SameShape reports whether a and b have equal dimensions.
// Assumes both are non-nil (caller must ensure).
// Complexity: O(1).
func SameShape(a, b Matrix) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}
