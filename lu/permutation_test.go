// Package lu_test: unit tests for the Permutation type — the bijection
// invariant, vector/matrix dual representation, application, parity.
package lu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

func TestPermutation_Validate(t *testing.T) {
	assert.NoError(t, lu.Permutation{0}.Validate())
	assert.NoError(t, lu.Permutation{2, 0, 1}.Validate())

	for _, tc := range []struct {
		name string
		p    lu.Permutation
	}{
		{"empty", lu.Permutation{}},
		{"repeated", lu.Permutation{0, 0}},
		{"out_of_range_high", lu.Permutation{0, 2}},
		{"negative", lu.Permutation{-1, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.p.Validate(), lu.ErrBadPermutation)
		})
	}
}

// TestPermutation_MatrixAgreesWithApplyVec: the two representations of the
// same permutation must act identically — (P·v)[k] = v[p[k]].
func TestPermutation_MatrixAgreesWithApplyVec(t *testing.T) {
	p := lu.Permutation{2, 0, 1}
	v := []float64{10, 20, 30}

	direct, err := p.ApplyVec(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 10, 20}, direct)

	pm, err := p.Matrix()
	require.NoError(t, err)
	viaMatrix, err := matrix.MatVec(pm, v)
	require.NoError(t, err)
	assert.Equal(t, direct, viaMatrix, "vector and matrix forms must agree")
}

func TestPermutation_Matrix(t *testing.T) {
	pm, err := lu.Permutation{1, 0}.Matrix()
	require.NoError(t, err)
	want := fromRows(t, [][]float64{{0, 1}, {1, 0}})
	assert.Zero(t, maxAbsDiff(t, want, pm))

	_, err = lu.Permutation{0, 0}.Matrix()
	assert.ErrorIs(t, err, lu.ErrBadPermutation)
}

func TestPermutation_ApplyVecErrors(t *testing.T) {
	p := lu.Permutation{1, 0}
	_, err := p.ApplyVec([]float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lu.Permutation{5, 0}.ApplyVec([]float64{1, 2})
	assert.ErrorIs(t, err, lu.ErrBadPermutation)
}

func TestPermutation_ApplyRows(t *testing.T) {
	a := fromRows(t, [][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	p := lu.Permutation{2, 0, 1}

	got, err := p.ApplyRows(a)
	require.NoError(t, err)
	want := fromRows(t, [][]float64{
		{5, 6},
		{1, 2},
		{3, 4},
	})
	assert.Zero(t, maxAbsDiff(t, want, got))

	// fallback path must agree with the row-view fast path
	slow, err := p.ApplyRows(hide{a})
	require.NoError(t, err)
	assert.Zero(t, maxAbsDiff(t, got, slow))

	// the input is never mutated
	assert.Equal(t, []float64{1, 2}, a.Row(0))

	_, err = p.ApplyRows(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = lu.Permutation{1, 0}.ApplyRows(a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestPermutation_Sign covers parity via cycle counting: identity → +1,
// a single transposition → −1, a 3-cycle (two transpositions) → +1.
func TestPermutation_Sign(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    lu.Permutation
		want float64
	}{
		{"identity", lu.Permutation{0, 1, 2}, 1},
		{"transposition", lu.Permutation{1, 0, 2}, -1},
		{"three_cycle", lu.Permutation{2, 0, 1}, 1},
		{"reversal_4", lu.Permutation{3, 2, 1, 0}, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Sign())
		})
	}
}
