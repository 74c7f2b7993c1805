// Package matrix: non-mutating row operations and pivot search.
// Every operation validates bounds first, then works on a fresh copy; the
// receiver is never modified. These are the building blocks of Gaussian
// elimination.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/algex/numeric"
)

// Augment concatenates a and b horizontally: [a | b].
// Requires equal row counts and both operands non-empty.
// Complexity: O(r*(ca+cb)).
func Augment(a, b Matrix) (Matrix, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return Matrix{}, fmt.Errorf("Augment: %w", ErrEmptyMatrix)
	}
	if a.r != b.r {
		return Matrix{}, fmt.Errorf("Augment: %d vs %d rows: %w", a.r, b.r, ErrDimensionMismatch)
	}

	out := Matrix{r: a.r, c: a.c + b.c, data: make([]numeric.Number, 0, a.r*(a.c+b.c))}
	for i := 0; i < a.r; i++ {
		out.data = append(out.data, a.data[i*a.c:(i+1)*a.c]...)
		out.data = append(out.data, b.data[i*b.c:(i+1)*b.c]...)
	}

	return out, nil
}

// SplitAugmented splits m into its first k columns and the rest.
// Requires a non-empty m and 0 < k < cols(m).
// Complexity: O(r*c).
func SplitAugmented(m Matrix, k int) (Matrix, Matrix, error) {
	if m.IsEmpty() {
		return Matrix{}, Matrix{}, fmt.Errorf("SplitAugmented: %w", ErrEmptyMatrix)
	}
	if k <= 0 || k >= m.c {
		return Matrix{}, Matrix{}, fmt.Errorf("SplitAugmented: column %d of %d: %w", k, m.c, ErrOutOfRange)
	}

	left := Matrix{r: m.r, c: k, data: make([]numeric.Number, 0, m.r*k)}
	right := Matrix{r: m.r, c: m.c - k, data: make([]numeric.Number, 0, m.r*(m.c-k))}
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		left.data = append(left.data, row[:k]...)
		right.data = append(right.data, row[k:]...)
	}

	return left, right, nil
}

// SwapRows returns a copy of m with rows i and j exchanged.
func (m Matrix) SwapRows(i, j int) (Matrix, error) {
	if err := m.validateRow("SwapRows", i); err != nil {
		return Matrix{}, err
	}
	if err := m.validateRow("SwapRows", j); err != nil {
		return Matrix{}, err
	}

	out := m.Clone()
	for k := 0; k < m.c; k++ {
		out.data[i*m.c+k], out.data[j*m.c+k] = out.data[j*m.c+k], out.data[i*m.c+k]
	}

	return out, nil
}

// ScaleRow returns a copy of m with row i scaled by c: Rᵢ ← c·Rᵢ.
func (m Matrix) ScaleRow(i int, c numeric.Number) (Matrix, error) {
	if err := m.validateRow("ScaleRow", i); err != nil {
		return Matrix{}, err
	}

	out := m.Clone()
	for k := 0; k < m.c; k++ {
		out.data[i*m.c+k] = out.data[i*m.c+k].Mul(c)
	}

	return out, nil
}

// AddScaledRow returns a copy of m with Rᵢ ← Rᵢ + c·Rⱼ.
func (m Matrix) AddScaledRow(i, j int, c numeric.Number) (Matrix, error) {
	if err := m.validateRow("AddScaledRow", i); err != nil {
		return Matrix{}, err
	}
	if err := m.validateRow("AddScaledRow", j); err != nil {
		return Matrix{}, err
	}

	out := m.Clone()
	for k := 0; k < m.c; k++ {
		out.data[i*m.c+k] = out.data[i*m.c+k].Add(c.Mul(out.data[j*m.c+k]))
	}

	return out, nil
}

// PivotRow searches column col from fromRow downward for the first entry
// that is non-zero under the mode's zero test. Returns the row index and
// true, or false when every candidate is zero.
// Complexity: O(rows).
func (m Matrix) PivotRow(col, fromRow int, mode numeric.Mode) (int, bool, error) {
	if m.IsEmpty() {
		return 0, false, fmt.Errorf("PivotRow: %w", ErrEmptyMatrix)
	}
	if col < 0 || col >= m.c {
		return 0, false, fmt.Errorf("PivotRow: column %d: %w", col, ErrOutOfRange)
	}
	if fromRow < 0 || fromRow >= m.r {
		return 0, false, fmt.Errorf("PivotRow: start row %d: %w", fromRow, ErrOutOfRange)
	}

	for k := fromRow; k < m.r; k++ {
		if !mode.IsZero(m.data[k*m.c+col]) {
			return k, true, nil
		}
	}

	return 0, false, nil
}

func (m Matrix) validateRow(method string, i int) error {
	if m.IsEmpty() {
		return fmt.Errorf("%s: %w", method, ErrEmptyMatrix)
	}
	if i < 0 || i >= m.r {
		return fmt.Errorf("%s: row %d: %w", method, i, ErrOutOfRange)
	}

	return nil
}
