// Package matrix_test: shared helpers for the matrix package tests.
// Helpers fail the test on error so the test bodies stay focused on the
// property being checked, and a `hide` wrapper forces the interface fallback
// path in kernels that fast-path on *Dense.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// hide wraps a Matrix to conceal its concrete type from kernels,
// forcing the generic At/Set fallback paths.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c Dense or fails the test.
func MustDense(t testing.TB, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustFromRows builds a Dense from a row literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// RandomFill fills m with deterministic pseudo-random values in [-1, 1).
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// CompareInDelta asserts m matches the want literal within tol.
func CompareInDelta(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	if len(want) != m.Rows() || len(want[0]) != m.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d", len(want), len(want[0]), m.Rows(), m.Cols())
	}
	var i, j int
	var got float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			got = MustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > tol {
				t.Fatalf("at [%d,%d]: got %g, want %g (tol %g)", i, j, got, want[i][j], tol)
			}
		}
	}
}
