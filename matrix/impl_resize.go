// SPDX-License-Identifier: MIT

// Package matrix - resize engine.
//
// ResizeAt swaps the backing buffer for a new shape. The old buffer is read
// through an origin offset: new cell (r, c) takes old cell
// (r+originRow, c+originCol) when that cell exists, zero otherwise.

package matrix

// Resize reshapes m to rows×cols keeping the top-left overlap.
// Equivalent to ResizeAt(rows, 0, cols, 0).
func (m *Dense) Resize(rows, cols int) error {
	return m.ResizeAt(rows, 0, cols, 0)
}

// ResizeAt reshapes m to rows×cols, reading the previous buffer through the
// origin offset (originRow, originCol).
// MAIN DESCRIPTION:
//   - new[r,c] = old[r+originRow, c+originCol] when r+originRow < oldRows and
//     c+originCol < oldCols; otherwise 0.
//   - Offset indices below zero (negative origins) are outside the overlap and
//     stay zero.
//
// Implementation:
//   - Stage 1: validate lengths ≥ 0 and origin+length > 0 on both axes.
//   - Stage 2: under the instance lock, allocate the zero buffer and copy the
//     overlapping row segments.
//   - Stage 3: publish the new shape and buffer; clear the cache.
//
// Errors:
//   - ErrBadShape.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// Notes:
//   - At/Set running concurrently with ResizeAt are not serialized against it.
func (m *Dense) ResizeAt(rows, originRow, cols, originCol int) error {
	if err := validateResize(rows, originRow, cols, originCol); err != nil {
		return regionErrorf(ctxResize, rows, originRow, cols, originCol, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prevR, prevC := m.r, m.c
	prev := m.data
	next := make([]float64, rows*cols)

	// Column window [c0, c1) of the new row that maps into the old columns.
	c0 := max(0, -originCol)
	c1 := min(cols, prevC-originCol)

	var r, sr, src int
	if c0 < c1 {
		for r = 0; r < rows; r++ {
			sr = r + originRow
			if sr < 0 || sr >= prevR {
				continue
			}
			src = sr*prevC + c0 + originCol
			copy(next[r*cols+c0:r*cols+c1], prev[src:src+(c1-c0)])
		}
	}

	m.r, m.c = rows, cols
	m.data = next
	m.invalidate()

	return nil
}
