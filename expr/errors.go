// SPDX-License-Identifier: MIT
// Package expr: sentinel error set (unified, consistent).
// All parse and decode failures return these sentinels, wrapped with
// position/context at the point of detection; tests match via errors.Is.
// Arithmetic failures during evaluation (division by zero, complex results)
// surface the numeric package sentinels unchanged.

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax covers every parse failure: unmatched parentheses, missing
	// operands, trailing tokens after a complete expression, empty input.
	// The wrap carries the position and what was expected.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrIllegalChar is returned by the tokenizer for any character outside
	// the restricted alphabet. The wrap carries the character and position.
	// It chains ErrSyntax so errors.Is(err, ErrSyntax) also matches: an
	// illegal character is the most specific of the parse failures.
	ErrIllegalChar = fmt.Errorf("illegal character: %w", ErrSyntax)

	// ErrMalformedLiteral signals a vector/matrix literal that does not start
	// with '[' and end with ']', or a matrix row that is not itself
	// bracketed.
	ErrMalformedLiteral = errors.New("expr: malformed literal")

	// ErrRaggedMatrix signals matrix rows of unequal length.
	ErrRaggedMatrix = errors.New("expr: ragged matrix rows")
)
