// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every failure of the package is an ErrInvalidArgument; the narrower
// sentinels below wrap it, so callers may match either level via errors.Is.
// No method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with method context ("Dense.<Method>(args): %w") at the detection site;
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape -> region/anchor bounds -> numeric policy.

// ErrInvalidArgument is the single error kind of the package. Every sentinel
// below wraps it.
var ErrInvalidArgument = errors.New("matrix: invalid argument")

var (
	// ErrBadShape is returned when a requested shape is invalid: negative
	// dimensions, a ragged input buffer, or a resize whose origin+length is not
	// positive.
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", ErrInvalidArgument)

	// ErrBadRegion is returned when a submatrix or apply region does not fit the
	// source or destination extent.
	ErrBadRegion = fmt.Errorf("matrix: region out of bounds: %w", ErrInvalidArgument)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Determinant does NOT return it; it reports NaN instead.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value on a write while the numeric policy
	// (WithValidateNaNInf) is enabled.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", ErrInvalidArgument)
)
