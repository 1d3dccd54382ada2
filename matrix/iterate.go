// SPDX-License-Identifier: MIT

// Package matrix - cell traversal primitives.
//
// Cells yields coordinates lazily; Loop, All and Any are internal-iteration
// forms whose callbacks receive the matrix itself. All of them walk row-major
// and read the shape once, when the traversal starts. None takes the instance
// lock.

package matrix

import "iter"

// Cells returns a lazy, finite, restartable row-major sequence of (row, col)
// coordinates. Each range over the sequence reads the current shape anew.
//
//	for i, j := range m.Cells() { ... }
func (m *Dense) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		rows, cols := m.r, m.c
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// Loop calls fn(m, row, col) for every cell in row-major order.
func (m *Dense) Loop(fn func(m *Dense, row, col int)) {
	for i, j := range m.Cells() {
		fn(m, i, j)
	}
}

// All reports whether pred holds for every cell, stopping at the first cell
// where it does not. An empty matrix satisfies All.
func (m *Dense) All(pred func(m *Dense, row, col int) bool) bool {
	for i, j := range m.Cells() {
		if !pred(m, i, j) {
			return false
		}
	}

	return true
}

// Any reports whether pred holds for at least one cell, stopping at the first
// match. An empty matrix never satisfies Any.
func (m *Dense) Any(pred func(m *Dense, row, col int) bool) bool {
	for i, j := range m.Cells() {
		if pred(m, i, j) {
			return true
		}
	}

	return false
}
