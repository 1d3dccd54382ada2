// Package neuralnet is the numeric core of a small neural-network toolkit:
// a dense matrix with region copies and a cached determinant, plus the
// activation table layers apply to it.
//
// 🚀 What is in here?
//
//	• matrix/     — Dense row-major float64 matrix: bounds-checked access,
//	                SubmatrixAt / ApplyRegion, origin-offset ResizeAt,
//	                memoized Determinant, lazy Cells traversal
//	• activation/ — ReLU, LeakyReLU, Sigmoid, TanH and derivatives, applied
//	                in place to a matrix
//	• cmd/sandbox — CLI that traces the determinant sweep and runs region ops
//	• examples/   — slicing and growing a layer's weight matrix
//
// ✨ Guarantees
//
//   - No panics on user errors: every failure is a matrix.ErrInvalidArgument.
//   - Deterministic row-major loops everywhere.
//   - Resize, Clone and Determinant serialize on a per-matrix lock; element
//     access does not (see matrix package docs).
//
//	go get github.com/katalvlaran/neuralnet/matrix
package neuralnet
