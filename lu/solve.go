// SPDX-License-Identifier: MIT
// Package lu: solve orchestration.
//
// Solve is the plain composition of §-by-§ kernels: pivoted factorization,
// permutation of the right-hand side, forward then backward substitution.
// SolveReport is the user-facing wrapper that separates the three failure
// classes a caller cares about: malformed input (rejected before any
// arithmetic), exactly singular input (refused, ErrSingular), and
// ill-conditioned input (computed anyway, flagged with κ(A)).

package lu

import (
	"github.com/katalvlaran/linsolve/cond"
	"github.com/katalvlaran/linsolve/matrix"
)

// Solve computes x with A·x ≈ b (to floating-point rounding) for a
// nonsingular square A, via FactorizePivoted + Factorization.Solve.
// For repeated solves against the same A, call FactorizePivoted once and
// reuse Factorization.Solve — the results are identical (same kernels, same
// deterministic loop orders), but each re-solve costs O(n²) instead of O(n³).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch (shape, before any computation),
// ErrSingular (from factorization).
// Complexity: Time O(n³), Space O(n²).
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	// Fail fast on the vector length before paying for the factorization.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	f, err := FactorizePivoted(a)
	if err != nil {
		return nil, err // already tagged by FactorizePivoted
	}

	return f.Solve(b)
}

// SolveReport solves A·x = b and accompanies the result with a trust
// assessment:
//
//   - malformed input (nil, non-square, length mismatch) → rejected before
//     any computation, matrix sentinel errors;
//   - exactly singular input → refused with ErrSingular, no Solution;
//   - ill-conditioned input → computed anyway, Solution.IllConditioned set
//     when κ(A) exceeds the warning threshold (DefaultCondWarnThreshold,
//     override via WithCondWarnThreshold). No error: interpreting a large κ
//     is the caller's responsibility.
//
// The condition number comes from cond.Cond (SVD); disable it with
// WithoutConditionCheck when the extra spectral work is unwanted.
// Complexity: Time O(n³), Space O(n²).
func SolveReport(a matrix.Matrix, b []float64, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)

	// Shape validation first: reject malformed input before any arithmetic.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, luErrorf(opReport, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, luErrorf(opReport, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, luErrorf(opReport, err)
	}

	// Factor-and-solve; a singular matrix is refused here.
	f, err := FactorizePivoted(a)
	if err != nil {
		return nil, err
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, err
	}

	sol := &Solution{X: x}
	if o.skipCond {
		return sol, nil
	}

	// Condition assessment: compute κ(A) and compare with the threshold.
	// Ill-conditioning is a warning, never an error.
	kappa, err := cond.Cond(a)
	if err != nil {
		return nil, luErrorf(opReport, err)
	}
	sol.Cond = kappa
	sol.IllConditioned = kappa > o.condThreshold

	return sol, nil
}
