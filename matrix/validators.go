// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operation kernels minimal by delegating shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NonEmpty → Shape).

package matrix

import "github.com/katalvlaran/algex/numeric"

// ValidateRectangular ensures every row of raw input has the same length.
// Complexity: O(rows).
func ValidateRectangular(rows [][]numeric.Number) error {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return ErrRagged
		}
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if m.IsEmpty() {
		return ErrEmptyMatrix
	}

	return nil
}

// ValidateSquare checks that m is non-empty and square (rows == cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameShape ensures a and b are non-empty with equal dimensions.
// Use for element-wise sums and compatibility guards.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNonEmpty(a); err != nil {
		return err
	}
	if err := ValidateNonEmpty(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMultiplicable ensures cols(a) == rows(b) for a product, with both
// operands non-empty.
// Complexity: O(1).
func ValidateMultiplicable(a, b Matrix) error {
	if err := ValidateNonEmpty(a); err != nil {
		return err
	}
	if err := ValidateNonEmpty(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrNotMultiplicable
	}

	return nil
}

// ValidateAugmented ensures m is the [A|b] shape of a linear system:
// non-empty with cols == rows + 1.
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}
	if m.Cols() != m.Rows()+1 {
		return ErrNotAugmented
	}

	return nil
}
