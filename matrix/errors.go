// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (Zeros, Identity).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column, or split index is outside
	// valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged indicates rows of unequal length handed to FromRows.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrEmptyMatrix indicates that a zero-row matrix was passed to an
	// operation that requires at least one row.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. element-wise sum of different shapes or augmentation
	// with unequal row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotMultiplicable indicates that cols(A) != rows(B) for a product.
	ErrNotMultiplicable = errors.New("matrix: matrices are not multiplicable")

	// ErrNotAugmented indicates a matrix that is not in the [A|b] shape
	// (cols == rows + 1) expected by linear-system helpers.
	ErrNotAugmented = errors.New("matrix: matrix is not augmented")
)
