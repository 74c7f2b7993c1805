// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// numeric package. All functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions.

package numeric

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "numeric: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidConfig is returned by NewMode when the kind is not one of the
	// two recognized values or when decimal places / tolerance are negative.
	ErrInvalidConfig = errors.New("numeric: invalid mode configuration")

	// ErrUnsupportedType signals that a value of an unconvertible Go type was
	// handed to Normalize.
	ErrUnsupportedType = errors.New("numeric: unsupported type")

	// ErrMalformedNumber signals an unparsable numeric string: garbage text,
	// a non-integer numerator/denominator in an "a/b" literal, or a zero
	// denominator in an "a/b" literal.
	ErrMalformedNumber = errors.New("numeric: malformed numeric literal")

	// ErrDivisionByZero is returned when a divisor equal to zero is used.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrComplexResult marks an operation whose mathematical result would be
	// complex (negative base with a non-integer exponent, square root of a
	// negative value). The grammar has no complex-number representation.
	ErrComplexResult = errors.New("numeric: complex result not supported")
)
