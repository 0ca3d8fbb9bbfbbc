// Package linsolve is a dense linear-system solver built from first
// principles — LU factorization, triangular substitution, and the
// condition-number analysis that says when the answer can be trusted.
//
// 🚀 What is linsolve?
//
//	A small, deterministic numerical library that brings together:
//		• Dense containers: row-major Matrix/Dense with safe accessors
//		• Triangular solvers: forward & backward substitution
//		• LU factorization: unpivoted (pedagogical) and partial-pivoting
//		• Orchestrated solve: factor once, re-solve for many right-hand sides
//		• Stability analysis: spectral norms, κ(A), perturbation bounds
//
// ✨ Why choose linsolve?
//
//   - Explicit numerics – every kernel is a readable O(n³) loop, no magic
//   - Deterministic – fixed loop orders, deterministic pivot tie-breaks
//   - Honest failure modes – sentinel errors for singular/ill-shaped input,
//     documented Inf/NaN propagation where the algorithm cannot recover
//   - Pure Go kernels – the only external numerics is gonum's SVD, used as
//     the eigen/singular-value collaborator of the condition analyzer
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — Dense storage, shared algebra (Add/Mul/Transpose/MatVec), Jacobi eigen
//	lu/     — substitution, unpivoted & pivoted factorization, permutations, Solve
//	cond/   — spectral norm, condition number κ(A), perturbation bound κ(A)·ε
//
// Quick sketch of the data flow:
//
//	A ──factorize──▶ (L, U, p) ──P·b──▶ forward ──▶ backward ──▶ x
//	A ──────────────▶ κ(A) ─────────────────────▶ ‖x−x̃‖/‖x‖ ≤ κ(A)·ε
//
// Dense LU costs O(n³) time and O(n²) space; once factored, each extra
// right-hand side is O(n²). See lu/doc.go and cond/doc.go for details.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
