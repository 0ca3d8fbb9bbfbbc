// SPDX-License-Identifier: MIT
// Package matrix: Jacobi eigen decomposition for symmetric matrices.
//
// The classical Jacobi method repeatedly zeroes the largest off-diagonal
// element with a Givens rotation. It is slower than Householder
// tridiagonalization but short, numerically robust, and fully deterministic —
// which is exactly the trade this package makes everywhere.

package matrix

import "math"

// denseCopy materializes m into a fresh *Dense working copy.
// Fast path clones the flat buffer; the fallback reads via At in fixed i→j
// order. Used by kernels that need private mutable scratch.
// Complexity: O(r*c).
func denseCopy(m Matrix) (*Dense, error) {
	// Fast path: structural clone of a Dense.
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	// Fallback: materialize via the interface.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(ctxAt, i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol (not nil, square,
//     |A[i,j]-A[j,i]| ≤ tol), then clone A into private scratch and set Q := I.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in fixed i→j
//     order and apply a Jacobi rotation to A and Q, until the largest
//     off-diagonal magnitude drops below tol or maxIter rotations were spent.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. DefaultEpsilon for float64).
//   - maxIter: safety cap on rotations (typ. DefaultEigenMaxIter; note each
//     rotation is cheap — for n ≳ 32 scale the cap with n²).
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - *Dense: Q whose columns are the corresponding eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (validation),
//     ErrEigenFailed (max off-diagonal ≥ tol after maxIter rotations).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter·n²) for pivot scans plus O(maxIter·n) rotation updates;
//     Space O(n²) for the scratch copy and Q.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Validate: notNil → Square → Symmetric.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Prepare working copy A and orthogonal accumulator Q = I.
	n := m.Rows()
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter           int     // rotation counter
		i, j, p, q2    int     // loop iterators and pivot indices
		base           int     // flat row offset
		maxOff, off    float64 // current max |A[p,q]| and scan temporary
		app, aqq, apq  float64 // pivot-block entries
		theta, t, c, s float64 // rotation parameters
		aip, aiq       float64 // row temporaries for A
		qip, qiq       float64 // row temporaries for Q
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,q2) maximizing |A[p,q2]| over the upper triangle.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, q2 = off, i, j
				}
			}
		}

		// J.2: Converged once every off-diagonal entry is below tol.
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters from the 2×2 pivot block.
		app = a.data[p*n+p]
		aqq = a.data[q2*n+q2]
		apq = a.data[p*n+q2]
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply the rotation to A (symmetric update).
		for i = 0; i < n; i++ {
			if i == p || i == q2 {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q2]
			// assign symmetrically to [i,p]/[p,i] and [i,q]/[q,i]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			a.data[i*n+q2], a.data[q2*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		// Update diagonals and zero out the pivot pair exactly.
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q2*n+q2] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q2], a.data[q2*n+p] = 0, 0

		// J.5: Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+q2]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+q2] = s*qip + c*qiq
		}
	}

	// Final convergence check over the upper triangle.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of the rotated A.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
