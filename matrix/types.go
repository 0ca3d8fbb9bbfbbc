// SPDX-License-Identifier: MIT

// Package matrix: public interface surface.
// This file intentionally contains ONLY the Matrix interface; errors live in
// errors.go and the concrete Dense implementation in dense.go, per the global
// one-concern-per-file convention.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// The interface is deliberately minimal: algorithms in lu/ and cond/ accept
// any Matrix, while every hot kernel in this package type-asserts on *Dense
// to unlock flat-slice fast paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange for invalid indices and ErrNaNInf when the
	// numeric policy rejects non-finite values.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
