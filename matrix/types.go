// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface and shared operation tags.
package matrix

import "fmt"

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opLU         = "LU"
	opSolve      = "Solve"
	opSolve2     = "Solve2"
	opSolveGonum = "SolveGonum"
	opToeplitz   = "Toeplitz"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
