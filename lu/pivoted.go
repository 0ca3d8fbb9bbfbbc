// SPDX-License-Identifier: MIT
// Package lu: LU factorization with partial (row) pivoting.
//
// Pivot selection takes the largest-magnitude candidate in the current
// column, which keeps every multiplier bounded by |L[i,k]| ≤ 1 — the
// standard stability guarantee of partial pivoting: no division by zero for
// nonsingular input, and no uncontrolled error amplification from dividing
// by a tiny pivot.
//
// Rows are never swapped in place. The working copy keeps original row
// order, the permutation p records which row served as each pivot, and the
// final L is reordered by p so that (L, U) are triangular in pivoted order.
// A row used as the pivot of step k has multiplier exactly 1 at that step
// and is annihilated to an exactly-zero row by its own update (the U row IS
// that row), so it can never win a later argmax — which is why scanning the
// full row range stays correct without bookkeeping a "used" set.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// FactorizePivoted computes the partial-pivoting factorization
// L·U = P·A, returning the triple (L, U, p) as a *Factorization.
//
// Implementation (step k of n):
//   - Select p[k] = argmax over ALL rows i of |Ak[i,k]| (lowest index wins
//     ties — deterministic for reproducible tests). An all-zero pivot
//     column proves singularity → ErrSingular.
//   - Copy the pivot row into U's k-th row: U[k,:] = Ak[p[k],:].
//   - For every row i: L[i,k] = Ak[i,k]/U[k,k]; Ak[i,:] -= L[i,k]·U[k,:]
//     (zero multipliers — used rows and structural zeros — skip the update).
//   - After the last step, reorder L's rows by p (L_final[k,:] = L[p[k],:])
//     so L is unit-lower-triangular in the pivoted row order.
//
// Guarantees for nonsingular A: succeeds with all-finite factors, unit
// diagonal on L, |L[i,k]| ≤ 1, and L·U reconstructing P·A to rounding.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (validation),
//   - ErrSingular (explicit, with the offending column; this path never
//     silently emits Inf/NaN).
//
// Determinism: fixed scan and update orders; lowest-index tie-break.
// Complexity: Time O(n³), Space O(n²) private scratch; A is not mutated.
func FactorizePivoted(a matrix.Matrix) (*Factorization, error) {
	ak, n, err := squareScratch(a)
	if err != nil {
		return nil, luErrorf(opPivoted, err)
	}

	var (
		l = make([]float64, n*n) // multipliers, original row order
		u = make([]float64, n*n) // upper factor, pivoted row order
		p = make(Permutation, n) // p[k] = original index of the k-th pivot row
	)

	var (
		i, j, k, piv int
		baseI, baseK int     // flat row offsets
		maxAbs, v    float64 // pivot scan state
		pivot, mult  float64
	)
	for k = 0; k < n; k++ {
		// P.1: full-range argmax pivot scan on column k (lowest index wins ties).
		piv, maxAbs = 0, -1.0
		for i = 0; i < n; i++ {
			if v = math.Abs(ak[i*n+k]); v > maxAbs {
				piv, maxAbs = i, v
			}
		}
		// Every candidate (and every already-used, exactly-zero row) is 0:
		// the matrix is singular and no LU factorization exists.
		if maxAbs == 0 {
			return nil, luErrorf(opPivoted, fmt.Errorf("pivot column %d: %w", k, ErrSingular))
		}
		p[k] = piv

		// P.2: the pivot row becomes U's k-th row (full row copy; entries
		// left of the diagonal are elimination residues on the order of one
		// ulp and are never read by the triangular solves).
		baseK = k * n
		copy(u[baseK:baseK+n], ak[piv*n:piv*n+n])
		pivot = u[baseK+k]

		// P.3: eliminate column k from every row. The pivot row's own
		// multiplier is exactly 1, so its update zeroes it exactly.
		for i = 0; i < n; i++ {
			baseI = i * n
			mult = ak[baseI+k] / pivot
			l[baseI+k] = mult
			if mult == 0 {
				continue // used rows and structural zeros: nothing to update
			}
			for j = 0; j < n; j++ {
				ak[baseI+j] -= mult * u[baseK+j]
			}
		}
	}

	// P.4: reorder L's rows into pivoted order: L_final[k,:] = L[p[k],:].
	// Row p[k] was annihilated at step k, so its multipliers for steps > k
	// are exactly zero — the reordered L is exactly unit lower triangular.
	lf := make([]float64, n*n)
	for k = 0; k < n; k++ {
		copy(lf[k*n:(k+1)*n], l[p[k]*n:(p[k]+1)*n])
	}

	return &Factorization{
		L: mustFromFlat(n, n, lf),
		U: mustFromFlat(n, n, u),
		P: p,
	}, nil
}
