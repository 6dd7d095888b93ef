// SPDX-License-Identifier: MIT

package matrix

import "slices"

// Equal reports whether a and b have the same shape and the same elements in
// row-major order.
//
// Implementation:
//   - Stage 1: nil policy — two nil operands are equal, one nil operand is not.
//   - Stage 2: compare dimensions; a mismatch short-circuits to false.
//   - Stage 3: fast path for *Dense pairs (flat slice walk); otherwise an i→j
//     At loop that stops on the first differing element.
//
// Behavior highlights:
//   - Pure: neither operand is mutated.
//   - Does not report where the operands differ; Fprint both for diagnostics.
//   - An At error in the generic path counts as a difference.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func Equal(a, b Matrix) bool {
	an, bn := isNilMatrix(a), isNilMatrix(b)
	if an || bn {
		return an && bn
	}
	if !SameShape(a, b) {
		return false
	}

	// Fast path: both dense, same shape ⇒ same buffer length.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return slices.Equal(da.data, db.data)
		}
	}

	rows, cols := a.Rows(), b.Cols()
	var (
		i, j   int
		av, bv uint64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}
