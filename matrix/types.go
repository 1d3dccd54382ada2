// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and its consumers.
// This file contains ONLY domain-facing types: the public Matrix contract
// consumed by layer code, the cell coordinate, and the diagonal term reported
// by DiagonalTerms.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// It is the contract a layer/network consumes to read and slice weights;
// *Dense is the only implementation in this module.
//
// The scalar is fixed to float64. The method set deliberately avoids
// float64-specific behavior beyond the element type, so a numeric type
// parameter can be introduced later without reshaping the contract.
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
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Cell is a (row, column) coordinate.
type Cell struct {
	Row int
	Col int
}

// DiagonalTerm is one signed wrapped-diagonal product of the determinant sweep.
//   - Sign is +1 for the forward pass and -1 for the backward pass.
//   - Column is the start column of the diagonal in row 0.
//   - Cells lists the visited coordinates, one per row, top to bottom.
//   - Product already includes Sign.
type DiagonalTerm struct {
	Sign    int
	Column  int
	Cells   []Cell
	Product float64
}
