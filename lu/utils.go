// SPDX-License-Identifier: MIT
// Package lu: internal helpers shared by the factorization and solve kernels.

package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opForward  = "ForwardSubstitute"
	opBackward = "BackwardSubstitute"
	opFactor   = "Factorize"
	opSteps    = "FactorizeSteps"
	opPivoted  = "FactorizePivoted"
	opSolve    = "Solve"
	opReport   = "SolveReport"
	opPerm     = "Permutation"
)

// luErrorf wraps err with an operation tag, preserving the original error via
// %w so callers can still match sentinels with errors.Is. Call only with a
// non-nil err. Complexity: O(1).
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zeroDiagErrorf annotates ErrZeroDiagonal with the offending row index.
func zeroDiagErrorf(i int) error {
	return fmt.Errorf("row %d: %w", i, ErrZeroDiagonal)
}

// squareScratch validates that m is a non-nil square matrix and copies it
// into fresh flat row-major scratch (the private mutable working copy every
// factorization kernel owns; caller data is never touched).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²) time and space.
func squareScratch(m matrix.Matrix) ([]float64, int, error) {
	// Validate: NotNil → Square (fixed sequence).
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, 0, err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, 0, err
	}

	n := m.Rows()
	data := make([]float64, n*n)

	// Fast path: copy row views of a Dense.
	if d, ok := m.(*matrix.Dense); ok {
		for i := 0; i < n; i++ {
			copy(data[i*n:(i+1)*n], d.Row(i))
		}

		return data, n, nil
	}

	// Fallback: materialize via the interface in fixed i→j order.
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, 0, err
			}
			data[i*n+j] = v
		}
	}

	return data, n, nil
}
