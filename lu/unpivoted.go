// SPDX-License-Identifier: MIT
// Package lu: unpivoted outer-product LU factorization.
//
// The elimination here is the raw textbook form, kept defective on purpose:
// a zero pivot U[k,k] turns the multipliers of step k into Inf/NaN and
// corrupts every later entry of the affected rows. There is no guard and no
// error — the blow-up is numerically detectable (matrix.VecAllFinite on the
// factors' rows, or IsFinite below) and is the motivating example for
// FactorizePivoted. See doc.go.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Factorize computes A = L·U with L unit-lower-triangular and U
// upper-triangular, via outer-product Gaussian elimination WITHOUT pivoting.
//
// Implementation (step k of n-1):
//   - L[k,k] = 1, then for every row i > k:
//     L[i,k] = U[i,k]/U[k,k]; U[i,j] -= L[i,k]·U[k,j] for j = k..n-1.
//   - Updating only columns j ≥ k exploits the fact that columns < k are
//     already zero in rows > k; each step is a rank-1 update of the
//     trailing submatrix.
//
// The result satisfies L·U = A up to floating-point rounding — valid ONLY
// when no zero pivot was encountered; otherwise the factors contain Inf/NaN
// (checked by the caller, never signalled here).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare (shape only).
// Determinism: fixed k→i→j loop order.
// Complexity: Time O(n³), Space O(n²) (private scratch; A is not mutated).
func Factorize(a matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	u, n, err := squareScratch(a)
	if err != nil {
		return nil, nil, luErrorf(opFactor, err)
	}

	l := make([]float64, n*n)
	eliminate(l, u, n, n-1)

	return mustFromFlat(n, n, l), mustFromFlat(n, n, u), nil
}

// FactorizeSteps runs the same elimination as Factorize but stops after
// nstep steps, returning the partial (L, U) snapshot: L holds the unit
// diagonal and multipliers of the completed steps, U is the working matrix
// mid-elimination. A pure function — the caller supplies nstep explicitly,
// there is no hidden stepping state. FactorizeSteps(a, n-1) equals
// Factorize(a); FactorizeSteps(a, 0) returns L = 0, U = A.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare,
// ErrBadStep (nstep outside [0, n-1]).
// Complexity: Time O(nstep·n²), Space O(n²).
func FactorizeSteps(a matrix.Matrix, nstep int) (*matrix.Dense, *matrix.Dense, error) {
	u, n, err := squareScratch(a)
	if err != nil {
		return nil, nil, luErrorf(opSteps, err)
	}
	if nstep < 0 || nstep > n-1 {
		return nil, nil, luErrorf(opSteps, fmt.Errorf("nstep=%d, n=%d: %w", nstep, n, ErrBadStep))
	}

	l := make([]float64, n*n)
	eliminate(l, u, n, nstep)

	return mustFromFlat(n, n, l), mustFromFlat(n, n, u), nil
}

// eliminate performs the first nstep outer-product elimination steps on the
// flat n×n scratch matrices l and u (row-major). nstep == n-1 completes the
// factorization, including the final unit diagonal entry of L.
func eliminate(l, u []float64, n, nstep int) {
	var (
		i, j, k      int
		baseK, baseI int     // flat row offsets for rows k and i
		mult         float64 // the multiplier L[i,k]
	)
	for k = 0; k < nstep; k++ {
		l[k*n+k] = 1.0 // unit diagonal of the completed step
		baseK = k * n
		for i = k + 1; i < n; i++ {
			baseI = i * n
			// Multiplier; Inf/NaN when u[k,k] == 0 — intentionally unguarded.
			mult = u[baseI+k] / u[baseK+k]
			l[baseI+k] = mult
			// Rank-1 update of the trailing row segment j = k..n-1.
			for j = k; j < n; j++ {
				u[baseI+j] -= mult * u[baseK+j]
			}
		}
	}
	if nstep == n-1 {
		l[(n-1)*n+(n-1)] = 1.0 // the last row has nothing to eliminate
	}
}

// IsFinite reports whether every entry of m is finite — the caller-side
// check for the unpivoted path's numeric failure mode.
// Complexity: O(r·c).
func IsFinite(m matrix.Matrix) bool {
	if m == nil {
		return false
	}

	rows, cols := m.Rows(), m.Cols()

	// Fast path: scan row views of a Dense.
	if d, ok := m.(*matrix.Dense); ok {
		for i := 0; i < rows; i++ {
			if !matrix.VecAllFinite(d.Row(i)) {
				return false
			}
		}

		return true
	}

	// Fallback: interface scan.
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return false
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
