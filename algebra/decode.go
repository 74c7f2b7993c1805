// Package algebra: lenient input decoding.
// Operations accept raw text and meet the user halfway: full matrix
// literals, bare vectors, and lone scalar expressions all decode into a
// Matrix, with every entry normalized to the active numeric mode.

package algebra

import (
	"strings"

	"github.com/katalvlaran/algex/expr"
	"github.com/katalvlaran/algex/matrix"
	"github.com/katalvlaran/algex/numeric"
)

// DecodeMatrix turns raw text into a mode-normalized Matrix:
//
//   - "[[1,2],[3,4]]" decodes as written;
//   - "[1, 2, 3]" promotes to a 1×3 matrix;
//   - "1/2" (any scalar expression) promotes to a 1×1 matrix;
//   - "[]" decodes to the empty matrix.
//
// Every element is evaluated by the expression grammar, so "[sqrt(2), 3^2]"
// is valid input. Returns the expression or literal error unchanged.
func DecodeMatrix(text string, mode numeric.Mode) (matrix.Matrix, error) {
	rows, err := decodeRows(text)
	if err != nil {
		return matrix.Matrix{}, err
	}

	rows, err = mode.NormalizeRows(rows)
	if err != nil {
		return matrix.Matrix{}, err
	}

	return matrix.FromRows(rows)
}

// decodeRows resolves the literal shape before normalization.
func decodeRows(text string) ([][]numeric.Number, error) {
	if !strings.HasPrefix(strings.TrimSpace(text), "[") {
		v, err := expr.EvalScalar(text)
		if err != nil {
			return nil, err
		}

		return [][]numeric.Number{{v}}, nil
	}

	rows, err := expr.ParseMatrix(text)
	if err == nil {
		return rows, nil
	}

	// A flat "[a, b, c]" fails the matrix shape check; retry as a vector
	// and promote. Genuinely malformed input fails both parses, and the
	// matrix error is the one reported.
	vec, verr := expr.ParseVector(text)
	if verr != nil {
		return nil, err
	}
	if len(vec) == 0 {
		return [][]numeric.Number{}, nil
	}

	return [][]numeric.Number{vec}, nil
}
