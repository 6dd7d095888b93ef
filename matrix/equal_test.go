package matrix_test

import (
	"testing"

	"github.com/katalvlaran/umatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEqualHarnessScenarios covers the reference harness: a==a, a!=b.
func TestEqualHarnessScenarios(t *testing.T) {
	a := MustNew(t, 2, 4, dataA)
	b := MustNew(t, 2, 4, dataB)

	assert.True(t, matrix.Equal(a, a), "a must equal itself")
	assert.True(t, a.Equal(a))
	assert.False(t, matrix.Equal(a, b), "a and b differ element-wise")
	assert.False(t, b.Equal(a))
}

// TestEqualReflexive checks equal(m, m) over several shapes, including empty ones.
func TestEqualReflexive(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {1, 1}, {1, 7}, {7, 1}, {3, 3}, {4, 6}} {
		m := MustNew(t, shape[0], shape[1], Sequence(shape[0]*shape[1]))
		assert.True(t, matrix.Equal(m, m), "shape %v", shape)
		assert.True(t, matrix.Equal(hide{m}, hide{m}), "generic path, shape %v", shape)
	}
}

// TestEqualDimensionSensitive ensures same data in a different shape never compares equal.
func TestEqualDimensionSensitive(t *testing.T) {
	data := Sequence(6)
	shapes := [][2]int{{1, 6}, {2, 3}, {3, 2}, {6, 1}}
	for x, sa := range shapes {
		for y, sb := range shapes {
			a := MustNew(t, sa[0], sa[1], data)
			b := MustNew(t, sb[0], sb[1], data)
			assert.Equal(t, x == y, matrix.Equal(a, b), "%v vs %v", sa, sb)
			assert.Equal(t, x == y, matrix.Equal(hide{a}, b), "generic %v vs %v", sa, sb)
		}
	}

	// Empty matrices of different shape are different too.
	assert.False(t, matrix.Equal(MustNew(t, 0, 3, nil), MustNew(t, 3, 0, nil)))
}

// TestEqualSingleDifference flips each cell once and expects inequality.
func TestEqualSingleDifference(t *testing.T) {
	base := MustNew(t, 3, 4, Sequence(12))
	for k := 0; k < 12; k++ {
		data := Sequence(12)
		data[k]++
		other := MustNew(t, 3, 4, data)
		assert.False(t, matrix.Equal(base, other), "cell %d", k)
		assert.False(t, matrix.Equal(hide{base}, hide{other}), "generic cell %d", k)
	}
}

// TestEqualNilPolicy: nil==nil, nil!=non-nil, typed nils included.
func TestEqualNilPolicy(t *testing.T) {
	var typedNil *matrix.Dense
	m := MustNew(t, 1, 1, []uint64{1})

	require.True(t, matrix.Equal(nil, nil))
	require.True(t, matrix.Equal(typedNil, nil))
	require.True(t, matrix.Equal(typedNil, typedNil))
	require.False(t, matrix.Equal(m, nil))
	require.False(t, matrix.Equal(nil, m))
	require.False(t, matrix.Equal(typedNil, m))
	require.False(t, m.Equal(typedNil))
}

// TestEqualDoesNotMutate confirms comparison is pure.
func TestEqualDoesNotMutate(t *testing.T) {
	a := MustNew(t, 2, 4, dataA)
	b := MustNew(t, 2, 4, dataB)

	_ = matrix.Equal(a, b)
	require.Equal(t, dataA, a.Values())
	require.Equal(t, dataB, b.Values())
}
