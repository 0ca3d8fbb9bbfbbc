// Package lu_test: shared fixtures and helpers for the lu package tests.
package lu_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// fromRows builds a Dense from row slices, failing the test on error.
func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")

	return m
}

// randomDiagDominant builds a seeded random n×n matrix with the diagonal
// shifted by +n, which keeps it comfortably nonsingular and well-conditioned.
func randomDiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	for i := 0; i < n; i++ {
		data[i*n+i] += float64(n)
	}
	m, err := matrix.NewDenseFromFlat(n, n, data)
	require.NoError(t, err, "NewDenseFromFlat")

	return m
}

// randomVec returns a seeded random vector of length n.
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// residualNorm returns ‖A·x − b‖₂.
func residualNorm(t testing.TB, a matrix.Matrix, x, b []float64) float64 {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err, "MatVec")
	r, err := matrix.VecSub(ax, b)
	require.NoError(t, err, "VecSub")

	return matrix.VecNorm2(r)
}

// maxAbsDiff returns max |a[i,j] − b[i,j]| over all elements.
func maxAbsDiff(t testing.TB, a, b matrix.Matrix) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())

	var worst float64
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			if d := math.Abs(av - bv); d > worst {
				worst = d
			}
		}
	}

	return worst
}
