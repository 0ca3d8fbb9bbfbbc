// SPDX-License-Identifier: MIT
// Package matrix: plain-slice vector helpers shared by lu and cond.
// Vectors are ordinary []float64 values; these helpers keep length checks and
// accumulation orders in one place instead of scattering ad hoc loops.

package matrix

import "math"

// VecClone returns an independent copy of v (nil stays nil).
// Complexity: O(n).
func VecClone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// VecSub returns a - b as a fresh slice.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (length mismatch).
// Complexity: O(n).
func VecSub(a, b []float64) ([]float64, error) {
	if a == nil || b == nil {
		return nil, validatorErrorf("VecSub", ErrNilMatrix)
	}
	if len(a) != len(b) {
		return nil, validatorErrorf("VecSub", ErrDimensionMismatch)
	}

	out := make([]float64, len(a))
	for i := range a { // fixed ascending order
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// VecNorm2 returns the Euclidean norm ‖v‖₂ = sqrt(Σ v[i]²).
// Deterministic left-to-right accumulation; NaN/Inf propagate.
// Complexity: O(n).
func VecNorm2(v []float64) float64 {
	sum := NormZero
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// VecAllFinite reports whether every entry of v is finite (no NaN, no ±Inf).
// Complexity: O(n).
func VecAllFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
