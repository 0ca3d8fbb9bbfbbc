// SPDX-License-Identifier: MIT
// Package lu: permutation vector & matrix views.
//
// A permutation is ONE entity with two interchangeable representations:
// the compact vector form p (p[k] = original row index used as the k-th
// pivot row) and the n×n 0/1 matrix form P (row k of P is the p[k]-th
// standard basis vector). Conversion and application live here so the two
// forms never silently duplicate logic elsewhere.

package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Permutation is the vector form p of a row permutation: p[k] is the original
// row index moved into position k. Invariant: p is a bijection on {0,...,n-1}.
type Permutation []int

// Validate checks the bijection invariant: every index in [0,n) appears
// exactly once. Complexity: O(n) time, O(n) space.
//
// Errors: ErrBadPermutation (out-of-range or repeated index).
func (p Permutation) Validate() error {
	n := len(p)
	if n == 0 {
		return luErrorf(opPerm, ErrBadPermutation)
	}

	seen := make([]bool, n)
	for k, idx := range p {
		if idx < 0 || idx >= n {
			return luErrorf(opPerm, fmt.Errorf("p[%d]=%d out of range: %w", k, idx, ErrBadPermutation))
		}
		if seen[idx] {
			return luErrorf(opPerm, fmt.Errorf("p[%d]=%d repeated: %w", k, idx, ErrBadPermutation))
		}
		seen[idx] = true
	}

	return nil
}

// Matrix converts p to its n×n 0/1 matrix form P: row k is the standard
// basis vector e_{p[k]}, so (P·v)[k] = v[p[k]] and P·A permutes the rows
// of A exactly like ApplyRows.
//
// Errors: ErrBadPermutation. Complexity: O(n²) (allocation-dominated).
func (p Permutation) Matrix() (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := len(p)
	pm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, luErrorf(opPerm, err)
	}
	for k := 0; k < n; k++ { // fixed k order; one write per row
		if err = pm.Set(k, p[k], 1.0); err != nil {
			return nil, luErrorf(opPerm, err)
		}
	}

	return pm, nil
}

// ApplyVec returns the permuted vector (P·v): out[k] = v[p[k]].
// The input is never mutated.
//
// Errors: ErrBadPermutation, matrix.ErrDimensionMismatch (length mismatch).
// Complexity: O(n).
func (p Permutation) ApplyVec(v []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(v, len(p)); err != nil {
		return nil, luErrorf(opPerm, err)
	}

	out := make([]float64, len(p))
	for k, idx := range p {
		out[k] = v[idx]
	}

	return out, nil
}

// ApplyRows returns the row-permuted matrix (P·m): row k of the result is
// row p[k] of m. The input is never mutated.
//
// Errors: ErrBadPermutation, matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch (m.Rows() != len(p)).
// Complexity: O(r·c).
func (p Permutation) ApplyRows(m matrix.Matrix) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, luErrorf(opPerm, err)
	}
	if m.Rows() != len(p) {
		return nil, luErrorf(opPerm, matrix.ErrDimensionMismatch)
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)

	// Fast path: copy whole row views of a Dense.
	if d, ok := m.(*matrix.Dense); ok {
		for k := 0; k < rows; k++ {
			copy(data[k*cols:(k+1)*cols], d.Row(p[k]))
		}

		return mustFromFlat(rows, cols, data), nil
	}

	// Fallback: element-wise copy via At.
	var k, j int
	var v float64
	var err error
	for k = 0; k < rows; k++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(p[k], j); err != nil {
				return nil, luErrorf(opPerm, err)
			}
			data[k*cols+j] = v
		}
	}

	return mustFromFlat(rows, cols, data), nil
}

// Sign returns the parity of the permutation: +1 for an even number of
// transpositions, -1 for odd. Assumes a valid permutation (callers obtain p
// from FactorizePivoted or validate first). Computed by counting cycles:
// sign = (-1)^(n - #cycles). Complexity: O(n) time, O(n) space.
func (p Permutation) Sign() float64 {
	n := len(p)
	seen := make([]bool, n)
	cycles := 0
	for k := 0; k < n; k++ {
		if seen[k] {
			continue
		}
		// walk the cycle containing k
		cycles++
		for j := k; !seen[j]; j = p[j] {
			seen[j] = true
		}
	}

	if (n-cycles)%2 == 0 {
		return 1.0
	}

	return -1.0
}

// mustFromFlat adopts flat scratch that is correct by construction.
// A failure here is a programmer error, hence the panic (never reachable
// from user input that passed validation).
func mustFromFlat(rows, cols int, data []float64) *matrix.Dense {
	d, err := matrix.NewDenseFromFlat(rows, cols, data)
	if err != nil {
		panic(fmt.Sprintf("lu: internal shape error: %v", err))
	}

	return d
}
