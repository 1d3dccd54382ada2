// SPDX-License-Identifier: MIT

// Package matrix - region engine: submatrix extraction and region apply.
//
// Purpose:
//   - SubmatrixAt materializes an independent copy of a rectangular window.
//   - ApplyRegion copies a source-shaped region of another matrix into m.
//
// Concurrency:
//   - Neither operation takes the instance lock. CloneDense reuses copyRegion
//     while holding it.
//
// Complexity quicksheet:
//   - SubmatrixAt: O(rows*cols); ApplyRegion: O(h*w) with h,w the source region.

package matrix

import "fmt"

// regionErrorf wraps a region sentinel with the method name and its four
// positional arguments, in call order.
func regionErrorf(method string, a, b, c, d int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", method, a, b, c, d, err)
}

// Submatrix returns a rows×cols copy anchored at (0, 0).
// Equivalent to SubmatrixAt(rows, 0, cols, 0).
func (m *Dense) Submatrix(rows, cols int) (*Dense, error) {
	return m.SubmatrixAt(rows, 0, cols, 0)
}

// SubmatrixAt returns a new rows×cols matrix whose cell (r, c) equals
// m[r+sourceRow, c+sourceCol].
// MAIN DESCRIPTION:
//   - Pure value copy; the result shares nothing with m, starts with no cached
//     determinant and inherits m's numeric policy.
//
// Implementation:
//   - Stage 1: validate 0 ≤ sourceRow+rows ≤ Rows and 0 ≤ sourceCol+cols ≤ Cols.
//   - Stage 2: copy row slices directly.
//
// Errors:
//   - ErrBadRegion when the window leaves m.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) SubmatrixAt(rows, sourceRow, cols, sourceCol int) (*Dense, error) {
	if err := validateSubmatrix(rows, sourceRow, cols, sourceCol, m.r, m.c); err != nil {
		return nil, regionErrorf(ctxSub, rows, sourceRow, cols, sourceCol, err)
	}

	return m.copyRegion(rows, sourceRow, cols, sourceCol), nil
}

// copyRegion copies a pre-validated window into a fresh Dense.
func (m *Dense) copyRegion(rows, sourceRow, cols, sourceCol int) *Dense {
	out := m.newDenseLike(rows, cols)

	var r, src int
	for r = 0; r < rows; r++ {
		src = (r+sourceRow)*m.c + sourceCol
		copy(out.data[r*cols:(r+1)*cols], m.data[src:src+cols])
	}

	return out
}

// Apply copies all of src into m anchored at (0, 0).
// Equivalent to ApplyRegion(src, 0, 0, 0, 0).
func (m *Dense) Apply(src Matrix) error {
	return m.ApplyRegion(src, 0, 0, 0, 0)
}

// ApplyAt copies all of src into m anchored at (destRow, destCol).
// Equivalent to ApplyRegion(src, 0, destRow, 0, destCol).
func (m *Dense) ApplyAt(src Matrix, destRow, destCol int) error {
	return m.ApplyRegion(src, 0, destRow, 0, destCol)
}

// ApplyRegion copies the region of src that starts at (sourceRow, sourceCol)
// and runs to src's last row and column into m, anchored at (destRow, destCol):
//
//	m[destRow+i, destCol+j] = src[sourceRow+i, sourceCol+j]
//
// for 0 ≤ i < src.Rows()-sourceRow and 0 ≤ j < src.Cols()-sourceCol.
//
// Implementation:
//   - Stage 1: nil check, then validateApply.
//   - Stage 2: clear the cache.
//   - Stage 3: copy; *Dense sources copy row slices, other Matrix
//     implementations are read through At.
//
// Behavior highlights:
//   - The copy is source-shaped: cells of m outside the region are untouched,
//     even when m is larger than the region.
//   - src == m is legal: the bound checks force destRow ≤ sourceRow and
//     destCol ≤ sourceCol, so a forward row-major copy never reads a cell it
//     already overwrote.
//
// Errors:
//   - ErrNilMatrix (src nil), ErrBadRegion (anchor or extent violation), or an
//     At error from a non-Dense source.
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (m *Dense) ApplyRegion(src Matrix, sourceRow, destRow, sourceCol, destCol int) error {
	if src == nil {
		return regionErrorf(ctxApply, sourceRow, destRow, sourceCol, destCol, ErrNilMatrix)
	}
	if d, ok := src.(*Dense); ok && d == nil {
		return regionErrorf(ctxApply, sourceRow, destRow, sourceCol, destCol, ErrNilMatrix)
	}
	sR, sC := src.Rows(), src.Cols()
	if err := validateApply(sR, sC, sourceRow, sourceCol, m.r, m.c, destRow, destCol); err != nil {
		return regionErrorf(ctxApply, sourceRow, destRow, sourceCol, destCol, err)
	}

	h := sR - sourceRow
	w := sC - sourceCol
	m.invalidate()

	var i, j, dst int
	if d, ok := src.(*Dense); ok {
		var from int
		for i = 0; i < h; i++ {
			dst = (destRow+i)*m.c + destCol
			from = (sourceRow+i)*d.c + sourceCol
			copy(m.data[dst:dst+w], d.data[from:from+w])
		}

		return nil
	}

	var v float64
	var err error
	for i = 0; i < h; i++ {
		dst = (destRow+i)*m.c + destCol
		for j = 0; j < w; j++ {
			if v, err = src.At(sourceRow+i, sourceCol+j); err != nil {
				return regionErrorf(ctxApply, sourceRow, destRow, sourceCol, destCol, err)
			}
			m.data[dst+j] = v
		}
	}

	return nil
}
