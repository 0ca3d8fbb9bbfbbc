// SPDX-License-Identifier: MIT
// Package lu: forward & backward triangular substitution.
//
// Both kernels read ONLY their own triangle (j ≤ i for lower, j ≥ i for
// upper): whatever the strictly-opposite half of the storage contains is
// treated as zero and never touched. That makes them safe on factors whose
// "zero half" stores elimination residues.
//
// The recurrence is strictly sequential in i — x[i] needs every earlier
// (resp. later) x[j] — while the inner dot product is an independent
// accumulation; this is the only safe parallelism in the file.

package lu

import (
	"github.com/katalvlaran/linsolve/matrix"
)

// ForwardSubstitute solves L·x = b for a lower-triangular L with nonzero
// diagonal, via x[i] = (b[i] − Σ_{j<i} L[i,j]·x[j]) / L[i,i] in ascending i.
//
// Implementation:
//   - Stage 1: validate (NotNil → Square → VecLen); allocate x.
//   - Stage 2: fast path reads *Dense row views; fallback goes through At.
//
// Inputs:
//   - l: n×n matrix; only the lower triangle (j ≤ i) is read.
//   - b: right-hand side, length n. Never mutated.
//
// Returns: x of length n.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     (validation, before any arithmetic),
//   - ErrZeroDiagonal when L[i,i] == 0 exactly (the division it guards would
//     produce Inf/NaN; reported with the offending row).
//
// Complexity: Time O(n²), Space O(n).
func ForwardSubstitute(l matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(l); err != nil {
		return nil, luErrorf(opForward, err)
	}
	if err := matrix.ValidateSquare(l); err != nil {
		return nil, luErrorf(opForward, err)
	}
	n := l.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, luErrorf(opForward, err)
	}

	x := make([]float64, n)
	var (
		i, j      int
		sum, diag float64
	)

	// Fast path: row views of a Dense.
	if d, ok := l.(*matrix.Dense); ok {
		var row []float64
		for i = 0; i < n; i++ {
			row = d.Row(i)
			sum = matrix.ZeroSum
			for j = 0; j < i; j++ { // lower triangle only
				sum += row[j] * x[j]
			}
			diag = row[i]
			if diag == 0 {
				return nil, luErrorf(opForward, zeroDiagErrorf(i))
			}
			x[i] = (b[i] - sum) / diag
		}

		return x, nil
	}

	// Fallback: interface path via At.
	var v float64
	var err error
	for i = 0; i < n; i++ {
		sum = matrix.ZeroSum
		for j = 0; j < i; j++ {
			if v, err = l.At(i, j); err != nil {
				return nil, luErrorf(opForward, err)
			}
			sum += v * x[j]
		}
		if diag, err = l.At(i, i); err != nil {
			return nil, luErrorf(opForward, err)
		}
		if diag == 0 {
			return nil, luErrorf(opForward, zeroDiagErrorf(i))
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}

// BackwardSubstitute solves U·x = b for an upper-triangular U with nonzero
// diagonal: x[n-1] = b[n-1]/U[n-1,n-1], then descending
// x[i] = (b[i] − Σ_{j>i} U[i,j]·x[j]) / U[i,i].
//
// Mirror of ForwardSubstitute — same validation, failure shape and
// complexity; only the upper triangle (j ≥ i) is read.
func BackwardSubstitute(u matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return nil, luErrorf(opBackward, err)
	}
	if err := matrix.ValidateSquare(u); err != nil {
		return nil, luErrorf(opBackward, err)
	}
	n := u.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, luErrorf(opBackward, err)
	}

	x := make([]float64, n)
	var (
		i, j      int
		sum, diag float64
	)

	// Fast path: row views of a Dense.
	if d, ok := u.(*matrix.Dense); ok {
		var row []float64
		for i = n - 1; i >= 0; i-- {
			row = d.Row(i)
			sum = matrix.ZeroSum
			for j = i + 1; j < n; j++ { // upper triangle only
				sum += row[j] * x[j]
			}
			diag = row[i]
			if diag == 0 {
				return nil, luErrorf(opBackward, zeroDiagErrorf(i))
			}
			x[i] = (b[i] - sum) / diag
		}

		return x, nil
	}

	// Fallback: interface path via At.
	var v float64
	var err error
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j = i + 1; j < n; j++ {
			if v, err = u.At(i, j); err != nil {
				return nil, luErrorf(opBackward, err)
			}
			sum += v * x[j]
		}
		if diag, err = u.At(i, i); err != nil {
			return nil, luErrorf(opBackward, err)
		}
		if diag == 0 {
			return nil, luErrorf(opBackward, zeroDiagErrorf(i))
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}
