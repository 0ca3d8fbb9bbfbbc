// SPDX-License-Identifier: MIT
// Package cond: spectral norm, condition number, perturbation bound.
//
// The general path delegates singular values to gonum (the external
// eigen/SVD collaborator — reimplementing a general SVD is out of scope);
// the symmetric shortcuts run on matrix.Eigen so the two engines can be
// cross-checked against each other.

package cond

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// Epsilon is the double-precision machine epsilon (2⁻⁵²), the per-entry
// relative error of a stored right-hand side in the package error model.
const Epsilon = 0x1p-52

// Operation name constants for unified error wrapping.
const (
	opNorm    = "SpectralNorm"
	opCond    = "Cond"
	opCondSym = "CondSymmetric"
	opCondSPD = "CondSPD"
	opPerturb = "PerturbationBound"
)

// condErrorf wraps err with an operation tag, preserving the sentinel via %w.
func condErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// eigenBudget returns the Jacobi rotation cap for an n×n matrix. The
// classical method needs O(n² log(1/tol)) rotations; this budget is generous
// enough that non-convergence signals genuinely pathological input.
func eigenBudget(n int) int {
	return matrix.DefaultEigenMaxIter + 10*n*n
}

// toGonum materializes m into a gonum *mat.Dense (row-major copy).
// Fast path copies Dense row views; fallback reads via At in fixed order.
// Complexity: O(r·c).
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)

	if d, ok := m.(*matrix.Dense); ok {
		for i := 0; i < rows; i++ {
			copy(data[i*cols:(i+1)*cols], d.Row(i))
		}

		return mat.NewDense(rows, cols, data), nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			data[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// singularValues returns the singular values of m in descending order.
// Errors: matrix.ErrNilMatrix, ErrSVDFailed.
func singularValues(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, err
	}

	// Values-only factorization: no singular vectors are formed.
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return nil, ErrSVDFailed
	}

	return svd.Values(nil), nil
}

// SpectralNorm returns the operator 2-norm ‖M‖ = σ_max(M)
// (= sqrt(λ_max(MᵀM))). Rectangular input is allowed.
//
// Errors: matrix.ErrNilMatrix, ErrSVDFailed.
// Complexity: O(min(r,c)²·max(r,c)) — SVD-dominated.
func SpectralNorm(m matrix.Matrix) (float64, error) {
	sv, err := singularValues(m)
	if err != nil {
		return 0, condErrorf(opNorm, err)
	}

	return sv[0], nil // gonum returns values in descending order
}

// Cond returns the spectral condition number κ(A) = σ_max/σ_min
// (= sqrt(λ_max(AᵀA)/λ_min(AᵀA))) of a square matrix.
//
// Contract: κ(A) ≥ 1 for every nonsingular A; a singular A yields +Inf, NOT
// an error — the analyzer reports, the caller interprets.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSVDFailed.
// Complexity: O(n³) — SVD-dominated.
func Cond(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, condErrorf(opCond, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, condErrorf(opCond, err)
	}

	sv, err := singularValues(a)
	if err != nil {
		return 0, condErrorf(opCond, err)
	}

	smax, smin := sv[0], sv[len(sv)-1]
	if smin == 0 {
		return math.Inf(1), nil // singular: κ is undefined/infinite, no error
	}

	return smax / smin, nil
}

// CondSymmetric returns κ(A) = max|λᵢ|/min|λᵢ| for a symmetric matrix,
// using the in-house Jacobi eigen solver instead of the SVD. For symmetric
// input the two definitions coincide (|λᵢ(A)| are the singular values).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry,
// matrix.ErrEigenFailed. A zero eigenvalue yields +Inf, no error.
// Complexity: O(n³) Jacobi sweeps.
func CondSymmetric(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, condErrorf(opCondSym, err)
	}

	eigs, _, err := matrix.Eigen(a, matrix.DefaultEpsilon, eigenBudget(a.Rows()))
	if err != nil {
		return 0, condErrorf(opCondSym, err)
	}

	// Scan |λ| extremes in fixed order.
	maxAbs, minAbs := 0.0, math.Inf(1)
	var v float64
	for _, lam := range eigs {
		if v = math.Abs(lam); v > maxAbs {
			maxAbs = v
		}
		if v < minAbs {
			minAbs = v
		}
	}
	if minAbs == 0 {
		return math.Inf(1), nil
	}

	return maxAbs / minAbs, nil
}

// CondSPD returns κ(A) = λ_max/λ_min for a symmetric positive-definite
// matrix — no absolute values needed since every eigenvalue is positive.
//
// Errors: as CondSymmetric, plus ErrNotPositiveDefinite when some
// eigenvalue is ≤ 0.
// Complexity: O(n³) Jacobi sweeps.
func CondSPD(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, condErrorf(opCondSPD, err)
	}

	eigs, _, err := matrix.Eigen(a, matrix.DefaultEpsilon, eigenBudget(a.Rows()))
	if err != nil {
		return 0, condErrorf(opCondSPD, err)
	}

	lamMax, lamMin := math.Inf(-1), math.Inf(1)
	for _, lam := range eigs {
		if lam <= 0 {
			return 0, condErrorf(opCondSPD, ErrNotPositiveDefinite)
		}
		if lam > lamMax {
			lamMax = lam
		}
		if lam < lamMin {
			lamMin = lam
		}
	}

	return lamMax / lamMin, nil
}

// PerturbationBound returns κ(A)·eps — the worst-case relative solution
// error ‖x−x̃‖/‖x‖ when the right-hand side carries per-entry relative error
// eps (use Epsilon for double-precision storage error). A singular A yields
// +Inf, consistent with Cond.
//
// Errors: ErrBadEpsilon (eps ≤ 0 or NaN), plus everything Cond can return.
// Complexity: O(n³) — dominated by Cond.
func PerturbationBound(a matrix.Matrix, eps float64) (float64, error) {
	if eps <= 0 || math.IsNaN(eps) {
		return 0, condErrorf(opPerturb, ErrBadEpsilon)
	}

	kappa, err := Cond(a)
	if err != nil {
		return 0, condErrorf(opPerturb, err)
	}

	return kappa * eps, nil
}
