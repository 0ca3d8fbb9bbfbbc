// Package cond quantifies how much of a linear-system solution can be
// trusted: spectral norms, the condition number κ(A), and the perturbation
// bound that relates error in the right-hand side to error in the solution.
//
// 🚀 The one guarantee that matters:
//
//	If x solves A·x = b and x̃ solves the same system with a perturbed
//	right-hand side b̃ (per-entry relative error ε, with A assumed exactly
//	represented), then
//
//	    ‖x − x̃‖/‖x‖ ≤ κ(A)·ε
//
//	so a caller can predict the loss of precision from κ(A) alone, without
//	re-solving. With double precision ε ≈ 2.2e-16 (see Epsilon), κ(A) ≈ 1e8
//	means roughly half the significant digits of x may be noise.
//
// ⚙️ Definitions used here:
//
//   - ‖M‖ is the operator (spectral) 2-norm: σ_max(M), equivalently
//     sqrt(λ_max(MᵀM)).
//   - κ(A) = ‖A‖·‖A⁻¹‖ = σ_max(A)/σ_min(A) ≥ 1 always.
//   - Symmetric shortcut: κ(A) = max|λᵢ|/min|λᵢ|; for symmetric positive-
//     definite A simply λ_max/λ_min (all eigenvalues already positive).
//
// The general path consumes gonum's SVD as its singular-value collaborator;
// the symmetric shortcuts run on the in-house Jacobi eigen solver
// (matrix.Eigen), and the two engines cross-check each other in tests.
//
// No error is raised for ill-conditioned matrices — the analyzer reports a
// number, and interpreting a large κ (conventionally > 1e8) as a trust
// warning is the caller's responsibility. A singular matrix yields κ = +Inf
// (σ_min = 0), again without error. Known limitation: κ is sensitive to row/
// column scaling of A; no equilibration is attempted here.
package cond
