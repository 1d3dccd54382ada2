// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the bound checks of the resize and
//    region engines.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - The boundary law is shared by every engine: anchor+length == dimension is
//    legal, anchor+length > dimension is not.

package matrix

// validateResize checks the resize shape and origin combination.
// Lengths must be non-negative and origin+length must be strictly positive
// on both axes.
// Errors: ErrBadShape.
// Complexity: O(1).
func validateResize(rows, originRow, cols, originCol int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if originRow+rows <= 0 || originCol+cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// validateSubmatrix checks that the window [sourceRow, sourceRow+rows) ×
// [sourceCol, sourceCol+cols) lies inside an R×C extent.
// Errors: ErrBadRegion.
// Complexity: O(1).
func validateSubmatrix(rows, sourceRow, cols, sourceCol, R, C int) error {
	if rows < 0 || cols < 0 || sourceRow < 0 || sourceCol < 0 {
		return ErrBadRegion
	}
	if sourceRow+rows > R || sourceCol+cols > C {
		return ErrBadRegion
	}

	return nil
}

// validateApply checks the anchors and the source-shaped extent of a region copy.
//
// Implementation:
//   - Stage 1: destination anchor inside [0,dR)×[0,dC).
//   - Stage 2: source anchor inside [0,sR)×[0,sC).
//   - Stage 3: the region from the source anchor to the source's end, placed at
//     the destination anchor, must not run past the destination.
//
// Errors: ErrBadRegion.
// Complexity: O(1).
func validateApply(sR, sC, sourceRow, sourceCol, dR, dC, destRow, destCol int) error {
	if destRow < 0 || destRow >= dR || destCol < 0 || destCol >= dC {
		return ErrBadRegion
	}
	if sourceRow < 0 || sourceRow >= sR || sourceCol < 0 || sourceCol >= sC {
		return ErrBadRegion
	}
	if sC-sourceCol+destCol > dC || sR-sourceRow+destRow > dR {
		return ErrBadRegion
	}

	return nil
}
