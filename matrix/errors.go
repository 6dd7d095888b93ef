// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation
// returns one of these (optionally wrapped with call-site context via %w)
// and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with coordinates, e.g.
// "Dense.At(2,0): matrix: index out of range"; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> allocation -> index.

var (
	// ErrBadShape is returned when the requested shape is invalid (negative
	// rows or cols) or when the supplied values do not hold exactly rows*cols
	// elements.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAllocation indicates that a backing buffer could not be obtained:
	// the element count overflows, the byte size exceeds the configured memory
	// ceiling, or the runtime refused the allocation. The operation that
	// returned it had no visible side effects.
	ErrAllocation = errors.New("matrix: buffer allocation failed")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
// errors.Is(err, ErrIndexOutOfRange) and errors.Is(err, ErrOutOfRange) agree.
var ErrIndexOutOfRange = ErrOutOfRange
