// Package lu_test: unit tests for forward and backward triangular substitution.
package lu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// TestForwardSubstitute_Known solves a hand-checked lower-triangular system:
// x₀ = 1, x₁ = 3 − 2·1 = 1, x₂ = 4 − 1 − 1 = 2.
func TestForwardSubstitute_Known(t *testing.T) {
	l := fromRows(t, [][]float64{
		{1, 0, 0},
		{2, 1, 0},
		{1, 1, 1},
	})

	x, err := lu.ForwardSubstitute(l, []float64{1, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2}, x, "forward recurrence on exact integers")
}

// TestBackwardSubstitute_Known solves U·x = b with x = (1, 2, 3) by
// construction: b = U·x = (4, 7, 9).
func TestBackwardSubstitute_Known(t *testing.T) {
	u := fromRows(t, [][]float64{
		{2, 1, 0},
		{0, 5, -1},
		{0, 0, 3},
	})

	x, err := lu.BackwardSubstitute(u, []float64{4, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x, "backward recurrence on exact integers")
}

// TestSubstitute_IgnoresOppositeTriangle verifies that garbage in the
// strictly-opposite half of the storage never leaks into the solution —
// the contract that makes the solvers safe on factors carrying residues.
func TestSubstitute_IgnoresOppositeTriangle(t *testing.T) {
	clean := fromRows(t, [][]float64{
		{2, 0},
		{1, 4},
	})
	dirty := fromRows(t, [][]float64{
		{2, 999},
		{1, 4},
	})
	b := []float64{2, 5}

	want, err := lu.ForwardSubstitute(clean, b)
	require.NoError(t, err)
	got, err := lu.ForwardSubstitute(dirty, b)
	require.NoError(t, err)
	assert.Equal(t, want, got, "upper half must be treated as zero")

	cleanU := fromRows(t, [][]float64{
		{3, 1},
		{0, 2},
	})
	dirtyU := fromRows(t, [][]float64{
		{3, 1},
		{-777, 2},
	})
	want, err = lu.BackwardSubstitute(cleanU, b)
	require.NoError(t, err)
	got, err = lu.BackwardSubstitute(dirtyU, b)
	require.NoError(t, err)
	assert.Equal(t, want, got, "lower half must be treated as zero")
}

// TestSubstitute_InterfaceFallback checks the At-based path agrees with the
// Dense fast path bit-for-bit.
func TestSubstitute_InterfaceFallback(t *testing.T) {
	l := randomDiagDominant(t, 6, 17)
	// zero the upper triangle so l is genuinely lower-triangular
	var i, j int
	for i = 0; i < 6; i++ {
		for j = i + 1; j < 6; j++ {
			require.NoError(t, l.Set(i, j, 0))
		}
	}
	b := randomVec(6, 29)

	fast, err := lu.ForwardSubstitute(l, b)
	require.NoError(t, err)
	slow, err := lu.ForwardSubstitute(hide{l}, b)
	require.NoError(t, err)
	assert.Equal(t, fast, slow, "fast and fallback paths must agree exactly")
}

func TestSubstitute_ZeroDiagonal(t *testing.T) {
	l := fromRows(t, [][]float64{
		{0, 0},
		{1, 1},
	})
	_, err := lu.ForwardSubstitute(l, []float64{1, 2})
	assert.ErrorIs(t, err, lu.ErrZeroDiagonal, "zero L[0,0] must be refused")

	u := fromRows(t, [][]float64{
		{1, 1},
		{0, 0},
	})
	_, err = lu.BackwardSubstitute(u, []float64{1, 2})
	assert.ErrorIs(t, err, lu.ErrZeroDiagonal, "zero U[1,1] must be refused")
}

func TestSubstitute_ShapeErrors(t *testing.T) {
	sq := fromRows(t, [][]float64{{1, 0}, {0, 1}})
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = lu.ForwardSubstitute(nil, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = lu.ForwardSubstitute(rect, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = lu.BackwardSubstitute(sq, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// hide wraps a Matrix to defeat the *Dense type assertion in the kernels.
type hide struct{ matrix.Matrix }
