// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide the fixtures of the original harness and small builders.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/umatrix/matrix"
)

// Fixtures from the reference harness (row-major).
var (
	// dataA is the 2×4 matrix [[11,12,13,14],[21,22,23,24]].
	dataA = []uint64{
		11, 12, 13, 14,
		21, 22, 23, 24,
	}
	// dataB is the 2×4 matrix [[13,14,15,16],[22,23,24,25]].
	dataB = []uint64{
		13, 14, 15, 16,
		22, 23, 24, 25,
	}
	// dataAT is dataA transposed: 4×2 [[11,21],[12,22],[13,23],[14,24]].
	dataAT = []uint64{
		11, 21,
		12, 22,
		13, 23,
		14, 24,
	}
)

// hide wraps a Matrix to hide its concrete type and force generic paths.
type hide struct{ matrix.Matrix }

// MustNew allocates a matrix or fails the test.
func MustNew(t testing.TB, r, c int, values []uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c, values, matrix.WithNoMemoryLimit())
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// Sequence returns 1..n, a recognisable fill where every cell is distinct.
func Sequence(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i + 1)
	}

	return out
}
