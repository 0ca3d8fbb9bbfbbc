// SPDX-License-Identifier: MIT

// Package matrix: numeric-policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Single source of truth: every tolerance or policy flag referenced by a
//     kernel is a named constant here, never an inline magic number.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural
	// checks (symmetry validation) and by the Jacobi eigen convergence test.
	DefaultEpsilon = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	// Bulk constructors intentionally bypass this guard (see dense.go).
	DefaultValidateNaNInf = true

	// DefaultEigenMaxIter caps the number of Jacobi rotations in Eigen.
	// Each rotation is O(n), and the classical Jacobi method needs roughly
	// O(n² log(1/tol)) rotations, so the cap scales with n² at call sites.
	DefaultEigenMaxIter = 1000
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot-product style accumulations.
const ZeroSum = 0.0
