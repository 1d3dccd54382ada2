// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own the determinant cache and clear it on every write.
//
// Concurrency:
//   - mu guards ResizeAt, Clone and Determinant only. At/Set/Map/Do and the
//     region engine run without it; see doc.go.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RawData/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"        // method tag used in error wrappers
	ctxSet      = "Set"       // method tag used in error wrappers
	ctxMap      = "Map"       // method tag used in error wrappers
	ctxFromRows = "FromRows"  // ctor tag for NewDenseFromRows
	ctxNew      = "NewDense"  // ctor tag for NewDense
	ctxResize   = "ResizeAt"  // method tag for the resize engine
	ctxSub      = "Submatrix" // method tag for the region engine (extraction)
	ctxApply    = "Apply"     // method tag for the region engine (copy-in)
	ctxTerms    = "DiagonalTerms"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - det/detValid memoize Determinant until the next write.
//   - validateNaNInf enables optional NaN/Inf rejection in Set and Map.
//
// A Dense must not be copied after first use; share it by pointer.
type Dense struct {
	mu sync.Mutex // held by ResizeAt, Clone, Determinant, DiagonalTerms

	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	det            float64   // cached determinant, meaningful only when detValid
	detValid       bool      // cache presence flag
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set/Map when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and the resolved numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer; apply options.
//
// Behavior highlights:
//   - 0×N and N×0 are legal (zero-length buffer).
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrBadShape)
	}
	o := NewOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows adopts a two-dimensional buffer, inheriting its shape.
// MAIN DESCRIPTION:
//   - Shape is (len(rows), len(rows[0])); values are copied into row-major storage,
//     so later writes to the input slices do not reach the matrix.
//
// Implementation:
//   - Stage 1: reject ragged input (every row must have len(rows[0]) entries).
//   - Stage 2: enforce the numeric policy when enabled.
//   - Stage 3: copy row by row.
//
// Errors:
//   - ErrBadShape (ragged rows), ErrNaNInf (policy on and non-finite input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
		if m.validateNaNInf {
			for j = 0; j < c; j++ {
				if isNonFinite(rows[i][j]) {
					return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
				}
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// newDenseLike allocates a zero rows×cols Dense carrying m's numeric policy.
// Callers validate the shape.
func (m *Dense) newDenseLike(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare ErrOutOfRange sentinel; public methods wrap it with context.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// invalidate drops the memoized determinant. Every write path calls it.
func (m *Dense) invalidate() {
	m.det = 0
	m.detValid = false
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics; not guarded by the instance lock.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write; clears the determinant cache on success.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: invalidate the cache, write into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Not guarded by the instance lock: a concurrent ResizeAt may swap the
//     buffer underneath this call.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.invalidate()
	m.data[off] = v

	return nil
}

// Clone returns a deep copy as a Matrix (dynamic type *Dense).
// See CloneDense.
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense returns an independent full-extent copy of m.
// MAIN DESCRIPTION:
//   - Same shape, data and numeric policy; the determinant cache is carried
//     over, since no value changed.
//
// Implementation:
//   - Stage 1: take the instance lock for the read of the source buffer.
//   - Stage 2: full-extent submatrix copy.
//   - Stage 3: copy the cache (value and validity).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CloneDense() *Dense {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := m.copyRegion(m.r, 0, m.c, 0)
	clone.det = m.det
	clone.detValid = m.detValid

	return clone
}

// RawData returns a row-major snapshot of the buffer (len == Rows()*Cols()).
// The slice is a copy; writing to it does not affect m.
// Complexity: O(r*c).
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns a two-dimensional snapshot of m, one slice per row.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Map replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place transform with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Clears the determinant cache before the first write.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Map(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64

	m.invalidate()
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxMap, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
