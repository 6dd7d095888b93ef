// SPDX-License-Identifier: MIT

// Package matrix - buffer allocation with an all-or-nothing contract.
//
// Purpose:
//   - Turn every way a buffer request can fail into ErrAllocation instead of a
//     runtime panic: element-count overflow, byte-size overflow, a request above
//     the configured memory ceiling, and makeslice rejecting the length.
//   - Give NewDense and Transpose a single acquisition point so both honor the
//     same ceiling.
//
// Notes:
//   - The Go runtime treats true heap exhaustion as fatal; the ceiling (default:
//     physical memory) is what keeps oversized requests on the error path.

package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"

	"github.com/dustin/go-humanize"
)

// allocFunc obtains a zeroed buffer of n elements under a byte ceiling.
type allocFunc func(n int, limit uint64) ([]uint64, error)

// allocate is the acquisition point used by every constructor and Transpose.
// Tests swap it through export_privates_test.go to simulate refusals.
var allocate allocFunc = allocateBuffer

// elementCount returns rows*cols or ErrAllocation when the product does not fit an int.
// Inputs are assumed non-negative (shape is validated first).
// Complexity: O(1).
func elementCount(rows, cols int) (int, error) {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%d×%d elements: %w", rows, cols, ErrAllocation)
	}

	return int(lo), nil
}

// allocateBuffer is the production allocFunc.
// Implementation:
//   - Stage 1: compute the byte size n*ElementSize with overflow detection.
//   - Stage 2: compare against the ceiling (NoMemoryLimit disables it).
//   - Stage 3: make the slice; a makeslice runtime error is recovered into ErrAllocation.
//
// Returns:
//   - []uint64 of length n, zero-filled; or (nil, ErrAllocation wrapped with sizes).
//
// Complexity:
//   - Time O(n) zeroing by the runtime, Space O(n).
func allocateBuffer(n int, limit uint64) (buf []uint64, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%d elements: %w", n, ErrAllocation)
	}
	hi, size := bits.Mul64(uint64(n), ElementSize)
	if hi != 0 {
		return nil, fmt.Errorf("%d elements: byte size overflows: %w", n, ErrAllocation)
	}
	if limit != NoMemoryLimit && size > limit {
		return nil, fmt.Errorf("%s requested, ceiling %s: %w",
			humanize.IBytes(size), humanize.IBytes(limit), ErrAllocation)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rerr, ok := r.(runtime.Error); ok {
			buf, err = nil, fmt.Errorf("%s requested: %v: %w", humanize.IBytes(size), rerr, ErrAllocation)
			return
		}
		panic(r)
	}()

	return make([]uint64, n), nil
}
