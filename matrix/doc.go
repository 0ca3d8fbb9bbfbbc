// Package matrix provides the dense linear-algebra primitives shared by the
// lu and cond packages: a row-major float64 container, element-wise and
// matrix-product kernels, vector helpers, and a Jacobi eigen solver for
// symmetric matrices.
//
// Design:
//
//   - Dense stores elements in one flat slice (offset = i*cols + j) for cache
//     friendliness; every kernel has a fast path on *Dense and a generic
//     fallback via the Matrix interface.
//   - All public functions validate first and compute second: nil, shape and
//     length checks live in validators.go and return sentinel errors from
//     errors.go (match with errors.Is).
//   - Determinism is a hard requirement: fixed loop orders, no map iteration,
//     no randomness. Identical inputs produce identical outputs bit-for-bit.
//   - Inputs are never mutated; kernels allocate fresh results.
//
// Complexity quicksheet:
//   - At/Set: O(1); Clone: O(r·c)
//   - Add/Sub/Scale/Transpose: O(r·c)
//   - Mul: O(r·n·c); MatVec: O(r·c)
//   - Eigen (Jacobi rotations): O(maxIter·n²)
package matrix
