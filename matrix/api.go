// SPDX-License-Identifier: MIT

// Package matrix: public facade.
// Thin procedural entry points mirroring the method surface, for callers
// that prefer free functions (new / at / equal / transpose).
package matrix

// New creates a rows×cols matrix from a row-major copy of values.
// Alias of NewDense.
func New(rows, cols int, values []uint64, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, values, opts...)
}

// At reads (row, col) from m; ErrNilMatrix for nil, ErrOutOfRange out of bounds.
func At(m *Dense, row, col int) (uint64, error) { return m.At(row, col) }

// Transpose transposes m in place; m is unchanged on error.
func Transpose(m *Dense) error { return m.Transpose() }

// Transposed returns mᵀ as a new matrix and leaves m untouched.
// Errors:
//   - ErrNilMatrix for nil m; ErrAllocation when either buffer cannot be obtained.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) kept plus O(r*c) transient.
func Transposed(m *Dense) (*Dense, error) {
	out, err := m.Clone()
	if err != nil {
		return nil, err
	}
	if err = out.Transpose(); err != nil {
		return nil, err
	}

	return out, nil
}
