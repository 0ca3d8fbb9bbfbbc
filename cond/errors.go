// SPDX-License-Identifier: MIT
// Package cond: sentinel error set. Shape violations surface the matrix
// package sentinels unchanged (matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrAsymmetry); the sentinels below are cond's own failures.

package cond

import "errors"

var (
	// ErrSVDFailed indicates that the singular-value decomposition did not
	// converge — rare for finite input, certain for input containing
	// NaN/Inf.
	ErrSVDFailed = errors.New("cond: svd did not converge")

	// ErrNotPositiveDefinite is returned by CondSPD when some eigenvalue is
	// zero or negative: the positive-definite shortcut does not apply.
	ErrNotPositiveDefinite = errors.New("cond: matrix is not positive definite")

	// ErrBadEpsilon signals a non-positive (or NaN) perturbation magnitude.
	ErrBadEpsilon = errors.New("cond: epsilon must be positive")
)
