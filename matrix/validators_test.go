// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/umatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nils.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustNew(t, 0, 0, nil)))
	require.NoError(t, matrix.ValidateNotNil(hide{MustNew(t, 1, 1, []uint64{1})}))
}

// TestValidateShape covers negative, overflowing and mismatched shapes.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		n          int
		wantErr    error
	}{
		{"empty", 0, 0, 0, nil},
		{"2x4", 2, 4, 8, nil},
		{"negative rows", -1, 4, 0, matrix.ErrBadShape},
		{"negative cols", 4, -1, 0, matrix.ErrBadShape},
		{"short", 2, 4, 7, matrix.ErrBadShape},
		{"long", 2, 4, 9, matrix.ErrBadShape},
		{"overflow", math.MaxInt, 4, 0, matrix.ErrAllocation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateShape(tc.rows, tc.cols, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestSameShape compares dimensions only.
func TestSameShape(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 4, dataA)
	b := MustNew(t, 2, 4, dataB)
	at := MustNew(t, 4, 2, dataAT)

	require.True(t, matrix.SameShape(a, b))
	require.False(t, matrix.SameShape(a, at))
	require.True(t, matrix.SameShape(hide{a}, b))
}

// TestNewDenseUsesValidateShape ensures construction reports exactly what
// ValidateShape reports, wrapped with the constructor context.
func TestNewDenseUsesValidateShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		values     []uint64
	}{
		{"ok", 2, 4, dataA},
		{"negative rows", -1, 4, nil},
		{"short", 2, 4, dataA[:7]},
		{"overflow", math.MaxInt, 4, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := matrix.ValidateShape(tc.rows, tc.cols, len(tc.values))
			_, err := matrix.NewDense(tc.rows, tc.cols, tc.values)
			if want == nil {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, fmt.Sprintf("Dense.NewDense(%d,%d): %v", tc.rows, tc.cols, want))
		})
	}
}
