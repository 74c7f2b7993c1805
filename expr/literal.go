// Package expr: decoder for bracketed vector/matrix literals.
// Splits "[a,b,c]" and "[[..],[..]]" on top-level commas only — commas
// nested inside parentheses or inner brackets are not split points; the two
// depths are tracked independently. Each leaf element goes through the
// expression parser.

package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algex/numeric"
)

// ParseVector decodes "[a, b, c]" into a slice of raw Numbers.
// Stage 1 (Validate): input must start with '[' and end with ']'
// (ErrMalformedLiteral). "[]" yields zero elements.
// Stage 2 (Execute): split on top-level commas, evaluate each element.
// Complexity: O(len(text)).
func ParseVector(text string) ([]numeric.Number, error) {
	inner, err := stripBrackets(text, "vector")
	if err != nil {
		return nil, err
	}
	if inner == "" {
		return []numeric.Number{}, nil
	}

	var out []numeric.Number
	for _, item := range splitTopLevel(inner) {
		if item == "" {
			continue
		}
		v, err := EvalScalar(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseMatrix decodes "[[r1],[r2],...]" into rows of raw Numbers.
// Every row must itself be a bracketed vector (ErrMalformedLiteral) of
// identical length (ErrRaggedMatrix). "[]" yields zero rows.
// Complexity: O(len(text)).
func ParseMatrix(text string) ([][]numeric.Number, error) {
	inner, err := stripBrackets(text, "matrix")
	if err != nil {
		return nil, err
	}
	if inner == "" {
		return [][]numeric.Number{}, nil
	}

	var rows [][]numeric.Number
	width := -1
	for _, raw := range splitTopLevel(inner) {
		if raw == "" {
			continue
		}
		if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
			return nil, fmt.Errorf("ParseMatrix: row %q is not bracketed: %w", raw, ErrMalformedLiteral)
		}
		row, err := ParseVector(raw)
		if err != nil {
			return nil, err
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("ParseMatrix: row %q has %d elements, want %d: %w",
				raw, len(row), width, ErrRaggedMatrix)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// stripBrackets validates the outer bracket pair and returns the trimmed
// inner text.
func stripBrackets(text, what string) (string, error) {
	t := strings.TrimSpace(text)
	if len(t) < 2 || !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, "]") {
		return "", fmt.Errorf("ParseVector: %s must start with '[' and end with ']': %w", what, ErrMalformedLiteral)
	}

	return strings.TrimSpace(t[1 : len(t)-1]), nil
}

// splitTopLevel splits on commas at zero parenthesis depth and zero bracket
// depth, trimming each piece. The depths are tracked independently so a
// comma inside "(...)" or "[...]" never splits.
func splitTopLevel(inner string) []string {
	var (
		items      []string
		start      int
		depthParen int
		depthBrack int
	)
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depthBrack++
		case ']':
			depthBrack--
		case '(':
			depthParen++
		case ')':
			depthParen--
		case ',':
			if depthParen == 0 && depthBrack == 0 {
				items = append(items, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	items = append(items, strings.TrimSpace(inner[start:]))

	return items
}
