// Package lu solves dense square linear systems Ax=b from first principles:
// triangular substitution, LU factorization (unpivoted and partial-pivoting),
// and the orchestration that composes them.
//
// 🚀 What is lu?
//
//	The pipeline is the classical one, with data flowing one way:
//
//	  A ──factorize──▶ (L, U, p) ──P·b──▶ forward ──▶ backward ──▶ x
//
//	  • ForwardSubstitute / BackwardSubstitute — O(n²) triangular solves
//	  • Factorize — unpivoted outer-product elimination (pedagogical: it
//	    blows up on zero pivots, and that is the point)
//	  • FactorizeSteps — the same elimination frozen after nstep steps,
//	    as a pure function (no global stepping state)
//	  • FactorizePivoted — partial pivoting; succeeds for every nonsingular
//	    input and bounds every multiplier by |L[i,k]| ≤ 1
//	  • Solve / Factorization.Solve — factor once for O(n³), then re-solve
//	    each new right-hand side for O(n²)
//	  • SolveReport — the user-facing wrapper: rejects malformed input,
//	    refuses singular input, and flags ill-conditioned input with κ(A)
//
// ⚙️ Failure modes (deliberate, tested):
//
//   - Triangular solves return ErrZeroDiagonal on an exactly-zero diagonal —
//     a zero there is an O(1)-detectable input defect.
//   - Factorize (unpivoted) does NOT guard its pivot: a zero pivot produces
//     Inf/NaN that propagate through the remaining rows. This is the textbook
//     defect that motivates pivoting; "fixing" it silently would hide the
//     lesson, so callers must check matrix.VecAllFinite / IsFinite instead.
//   - FactorizePivoted returns ErrSingular when an entire pivot column is
//     zero — for partial pivoting that is a proof of singularity, not a
//     numerical accident.
//
// Performance & resources:
//
//   - Factorization: O(n³) time, O(n²) scratch; substitution: O(n²) time.
//   - Everything is single-threaded and allocation-owned: kernels copy their
//     inputs into private scratch and never mutate caller data. The outer
//     k-loop of elimination is strictly sequential (step k+1 consumes the
//     fully updated result of step k); only the per-row updates within one
//     step are independent.
//   - Dense LU is O(n²) space even for sparse inputs: elimination introduces
//     fill-in — nonzeros in L/U at positions that were zero in A — so a
//     sparse A generally does not yield sparse factors. Sparsity-preserving
//     orderings are out of scope here.
//
// See cond/ for the companion question: how much of x can be trusted.
package lu
