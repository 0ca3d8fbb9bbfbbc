// SPDX-License-Identifier: MIT

// Package lu: result types.
// The Factorization triple is the value callers keep when they want to pay
// the O(n³) elimination once and re-solve many right-hand sides at O(n²);
// Solution is what the user-facing SolveReport wrapper returns.
package lu

import "github.com/katalvlaran/linsolve/matrix"

// Factorization is the owned result of FactorizePivoted: L·U = P·A.
// L is unit-lower-triangular (rows already in pivoted order), U is
// upper-triangular, and P is the permutation in vector form. The caller owns
// the value; no shared mutable state connects it to the input matrix.
type Factorization struct {
	L *matrix.Dense // unit lower triangular factor
	U *matrix.Dense // upper triangular factor
	P Permutation   // P[k] = original row index used as the k-th pivot
}

// Order returns n, the dimension of the factored system.
// Complexity: O(1).
func (f *Factorization) Order() int {
	return len(f.P)
}

// Solve reuses the stored factors for a new right-hand side:
// b' = P·b, then L·z = b' (forward), then U·x = z (backward).
// This is the cheap re-solve path — O(n²) instead of refactorizing.
//
// Errors: matrix.ErrDimensionMismatch (len(b) != Order()),
// ErrZeroDiagonal (propagated from the triangular solves; cannot occur for
// factors produced by FactorizePivoted on nonsingular input).
// Complexity: Time O(n²), Space O(n).
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	// Apply the row permutation to the right-hand side: b'[k] = b[p[k]].
	pb, err := f.P.ApplyVec(b)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}

	// Forward pass: L·z = b'.
	z, err := ForwardSubstitute(f.L, pb)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}

	// Backward pass: U·x = z.
	x, err := BackwardSubstitute(f.U, z)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}

	return x, nil
}

// Reconstruct returns L·U, which equals P·A up to floating-point rounding.
// Useful for round-trip verification. Complexity: O(n³).
func (f *Factorization) Reconstruct() (matrix.Matrix, error) {
	return matrix.Mul(f.L, f.U)
}

// Det returns det(A) = sign(P) · Π U[k,k]. The unit diagonal of L
// contributes nothing; the permutation contributes its parity.
// Complexity: O(n).
func (f *Factorization) Det() float64 {
	det := f.P.Sign()
	n := f.Order()
	for k := 0; k < n; k++ {
		det *= f.U.Row(k)[k]
	}

	return det
}

// Solution is the outcome of SolveReport: the solution vector plus the
// trust assessment the caller needs to interpret it.
type Solution struct {
	// X solves A·x = b to floating-point rounding.
	X []float64

	// Cond is κ(A) as computed by the cond package, or 0 when the condition
	// check was disabled via WithoutConditionCheck.
	Cond float64

	// IllConditioned is true when Cond exceeded the configured warning
	// threshold: the result was still computed, but up to κ(A)·ε of relative
	// error may hide in X.
	IllConditioned bool
}
