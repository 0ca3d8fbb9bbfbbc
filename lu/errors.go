// SPDX-License-Identifier: MIT
// Package lu: sentinel error set.
// Shape violations (nil matrix, non-square matrix, vector length mismatch)
// surface the matrix package sentinels unchanged — lu delegates those checks
// to matrix validators, so callers match them with errors.Is against
// matrix.ErrNilMatrix, matrix.ErrNonSquare and matrix.ErrDimensionMismatch.
// The sentinels below are the failures lu itself can produce.

package lu

import "errors"

var (
	// ErrSingular is returned by the pivoted factorizer when, at some
	// elimination step, every candidate entry in the pivot column is exactly
	// zero. Under partial pivoting that proves the matrix is singular, so no
	// LU factorization exists. Never recovered internally.
	ErrSingular = errors.New("lu: matrix is singular")

	// ErrZeroDiagonal is returned by the triangular solvers when a diagonal
	// entry is exactly zero: the division it guards would produce Inf/NaN.
	// Note the asymmetry with Factorize, which intentionally has no such
	// guard (see doc.go).
	ErrZeroDiagonal = errors.New("lu: zero diagonal entry")

	// ErrBadStep signals that FactorizeSteps was asked for a step count
	// outside [0, n-1].
	ErrBadStep = errors.New("lu: elimination step out of range")

	// ErrBadPermutation signals that a Permutation is not a bijection on
	// {0,...,n-1} (out-of-range or repeated index).
	ErrBadPermutation = errors.New("lu: invalid permutation")
)
