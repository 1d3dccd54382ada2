// SPDX-License-Identifier: MIT

// Package matrix - determinant engine (memoized diagonal product-sum).
//
// Purpose:
//   - Determinant returns a memoized scalar built from wrapped diagonals.
//   - DiagonalTerms exposes the individual signed products for tracing.
//
// Algorithm (order n ≥ 2):
//
//	for sign in (+1, -1):
//	    for c in 0..n-1:
//	        term = sign * Π_{i<n} A[i, (c + i*sign) mod n]
//	det = Σ term
//
// This is the rule of Sarrus carried over to every order. It equals the true
// determinant for n == 3 only: every 2×2 yields 0, and for n ≥ 4 the 2n
// diagonals are a strict subset of the n! permutation products.
//
// Concurrency:
//   - Both entry points hold the instance lock for the whole computation.

package matrix

import "math"

// Determinant returns the memoized diagonal product-sum of m.
// MAIN DESCRIPTION:
//   - Valid cache → returned as-is.
//   - Rows != Cols → NaN (value-level signal; not cached, no error).
//   - 1×1 → the single cell, bypassing the sweep.
//   - 0×0 → 1 (empty product).
//   - Otherwise the 2n-term sweep; the result is cached until the next write.
//
// Complexity:
//   - Time O(n²) on a miss, O(1) on a hit. Space O(1).
func (m *Dense) Determinant() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.detValid {
		return m.det
	}
	if m.r != m.c {
		return math.NaN()
	}
	if m.r == 1 {
		return m.data[0]
	}

	sum := 1.0 // order 0: empty product
	if m.r > 0 {
		sum = 0
		m.sweepDiagonals(func(_, _ int, product float64) {
			sum += product
		})
	}
	m.det = sum
	m.detValid = true

	return sum
}

// DiagonalTerms returns the 2n signed products Determinant sums, in sweep
// order: forward pass columns 0..n-1, then backward pass columns 0..n-1.
// A 1×1 matrix reports its two trivial terms (+a, -a) even though Determinant
// short-circuits to a.
//
// Errors:
//   - ErrNonSquare when Rows != Cols.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Dense) DiagonalTerms() ([]DiagonalTerm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.r != m.c {
		return nil, denseErrorf(ctxTerms, m.r, m.c, ErrNonSquare)
	}
	n := m.r
	terms := make([]DiagonalTerm, 0, 2*n)
	m.sweepDiagonals(func(sign, col int, product float64) {
		cells := make([]Cell, n)
		for i := 0; i < n; i++ {
			cells[i] = Cell{Row: i, Col: wrapColumn(col+i*sign, n)}
		}
		terms = append(terms, DiagonalTerm{Sign: sign, Column: col, Cells: cells, Product: product})
	})

	return terms, nil
}

// sweepDiagonals walks the forward then backward wrapped diagonals of the
// square matrix m (n ≥ 1) and reports each signed product to visit.
// Caller holds m.mu.
func (m *Dense) sweepDiagonals(visit func(sign, col int, product float64)) {
	n := m.r
	var c, i int
	var product float64

	for _, sign := range [2]int{1, -1} {
		for c = 0; c < n; c++ {
			product = float64(sign)
			for i = 0; i < n; i++ {
				product *= m.data[i*n+wrapColumn(c+i*sign, n)]
			}
			visit(sign, c, product)
		}
	}
}

// wrapColumn folds a diagonal column index back into [0, n).
// Inputs stay within (-n, 2n), so one correction suffices.
func wrapColumn(col, n int) int {
	if col >= n {
		return col - n
	}
	if col < 0 {
		return col + n
	}

	return col
}
