// Package matrix provides core linear algebra primitives for array-based
// computations. Matrix is a concrete, row-major value over numeric.Number,
// storing elements in a flat slice for cache friendliness.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algex/numeric"
)

// Matrix is a row-major rectangular matrix of Numbers.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is the valid empty (0×0) matrix. Matrix is a value type:
// every operation returns a fresh Matrix and never mutates its receiver.
type Matrix struct {
	r, c int
	data []numeric.Number
}

// FromRows builds a Matrix from rows of Numbers.
// Stage 1 (Validate): all rows must have equal length (ErrRagged); zero
// rows yield the valid empty matrix.
// Stage 2 (Execute): copy into flat storage.
// Complexity: O(r*c).
func FromRows(rows [][]numeric.Number) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	if err := ValidateRectangular(rows); err != nil {
		return Matrix{}, fmt.Errorf("FromRows: %w", err)
	}

	cols := len(rows[0])
	data := make([]numeric.Number, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return Matrix{r: len(rows), c: cols, data: data}, nil
}

// Zeros creates an m×n matrix of exact zeros. Requires m, n ≥ 1.
func Zeros(m, n int) (Matrix, error) {
	if m <= 0 || n <= 0 {
		return Matrix{}, fmt.Errorf("Zeros(%d,%d): %w", m, n, ErrInvalidDimensions)
	}
	data := make([]numeric.Number, m*n)
	zero := numeric.FromInt(0)
	for i := range data {
		data[i] = zero
	}

	return Matrix{r: m, c: n, data: data}, nil
}

// Identity creates the n×n identity matrix of exact values. Requires n ≥ 1.
func Identity(n int) (Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return Matrix{}, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}
	one := numeric.FromInt(1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m Matrix) Cols() int { return m.c }

// IsEmpty reports whether m has zero rows.
func (m Matrix) IsEmpty() bool { return m.r == 0 }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m Matrix) At(row, col int) (numeric.Number, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return numeric.Number{}, err
	}

	return m.data[idx], nil
}

// Set returns a copy of m with (row, col) replaced by v. The receiver is
// untouched. Complexity: O(r*c) for the copy.
func (m Matrix) Set(row, col int, v numeric.Number) (Matrix, error) {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return Matrix{}, err
	}
	out := m.Clone()
	out.data[idx] = v

	return out, nil
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) ([]numeric.Number, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]numeric.Number, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a fresh row-slice view of the whole matrix.
func (m Matrix) ToRows() [][]numeric.Number {
	rows := make([][]numeric.Number, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]numeric.Number, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// Clone returns a deep copy of m. Complexity: O(r*c).
func (m Matrix) Clone() Matrix {
	data := make([]numeric.Number, len(m.data))
	copy(data, m.data)

	return Matrix{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for easy debugging.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("%s(%d,%d): row: %w", method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): col: %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}
