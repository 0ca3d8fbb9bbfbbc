// Package matrix_test: unit tests for the universal kernels
// (Add/Sub/Mul/Transpose/Scale/MatVec), covering both the *Dense fast path
// and the interface fallback (via the hide wrapper).
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	CompareInDelta(t, [][]float64{{11, 22}, {33, 44}}, sum, 0)

	diff, err := matrix.Sub(b, a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	CompareInDelta(t, [][]float64{{9, 18}, {27, 36}}, diff, 0)
}

// TestAddFallbackMatchesFastPath hides the concrete type to force the
// interface path and checks it agrees with the flat-slice path exactly.
func TestAddFallbackMatchesFastPath(t *testing.T) {
	a := MustDense(t, 4, 5)
	b := MustDense(t, 4, 5)
	RandomFill(t, a, 1337)
	RandomFill(t, b, 4242)

	fast, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add(fast): %v", err)
	}
	slow, err := matrix.Add(hide{a}, b)
	if err != nil {
		t.Fatalf("Add(fallback): %v", err)
	}

	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 5; j++ {
			if MustAt(t, fast, i, j) != MustAt(t, slow, i, j) {
				t.Fatalf("paths disagree at [%d,%d]", i, j)
			}
		}
	}
}

func TestAddShapeMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)
	if _, err := matrix.Add(a, b); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.Add(nil, b); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}

func TestMulKnownProduct(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	CompareInDelta(t, [][]float64{{58, 64}, {139, 154}}, c, 0)

	// inner mismatch is rejected before any arithmetic
	if _, err = matrix.Mul(a, a); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestMulFallbackMatchesFastPath(t *testing.T) {
	a := MustDense(t, 4, 3)
	b := MustDense(t, 3, 5)
	RandomFill(t, a, 7)
	RandomFill(t, b, 11)

	fast, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul(fast): %v", err)
	}
	slow, err := matrix.Mul(hide{a}, hide{b})
	if err != nil {
		t.Fatalf("Mul(fallback): %v", err)
	}

	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 5; j++ {
			// fast path runs i→k→j, fallback i→j→k: same terms, different
			// accumulation order — compare within rounding
			if d := MustAt(t, fast, i, j) - MustAt(t, slow, i, j); d > 1e-12 || d < -1e-12 {
				t.Fatalf("paths disagree at [%d,%d] by %g", i, j, d)
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	CompareInDelta(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at, 0)
}

func TestScale(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, -2}, {3, 0}})
	s, err := matrix.Scale(a, -2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	CompareInDelta(t, [][]float64{{-2, 4}, {-6, 0}}, s, 0)
}

func TestMatVec(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	want := []float64{-1, -1, -1}
	for i, v := range y {
		if v != want[i] {
			t.Fatalf("y[%d] = %g, want %g", i, v, want[i])
		}
	}

	if _, err = matrix.MatVec(a, []float64{1, 2, 3}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("length mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if _, err = matrix.MatVec(a, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil vector: want ErrNilMatrix, got %v", err)
	}
}
