// Package algebra: the elimination kernel behind Determinant.
// Forward elimination with partial pivot search and a swap parity counter;
// the determinant is the signed product of the resulting diagonal.

package algebra

import (
	"strconv"

	"github.com/katalvlaran/algex/matrix"
	"github.com/katalvlaran/algex/numeric"
)

// gaussDeterminant reduces a copy of m to upper-triangular form and returns
// det(m). The caller guarantees m is square and non-empty.
//
// Stage 1 (Eliminate): for each column, locate the first mode-non-zero
// pivot at or below the diagonal; no pivot means a zero column tail and an
// immediate zero determinant. Off-diagonal entries below the pivot are
// cleared by row subtraction, which leaves the determinant unchanged; each
// row swap flips its sign.
// Stage 2 (Collect): multiply the diagonal and apply swap parity.
// Complexity: O(n³) Number operations.
func gaussDeterminant(m matrix.Matrix, mode numeric.Mode, rec recorder) (numeric.Number, error) {
	n := m.Rows()
	a := m.Clone()
	swaps := 0
	rec.step("forward elimination", map[string]string{"n": strconv.Itoa(n)})

	for col := 0; col < n; col++ {
		piv, found, err := a.PivotRow(col, col, mode)
		if err != nil {
			return numeric.Number{}, err
		}
		if !found {
			rec.step("no pivot in column, determinant is zero",
				map[string]string{"col": strconv.Itoa(col)})

			return mode.Normalize(0)
		}
		if piv != col {
			a, err = a.SwapRows(col, piv)
			if err != nil {
				return numeric.Number{}, err
			}
			swaps++
			rec.step("swap rows", map[string]string{
				"r1": strconv.Itoa(col), "r2": strconv.Itoa(piv),
			})
		}

		pivot, err := a.At(col, col)
		if err != nil {
			return numeric.Number{}, err
		}
		for row := col + 1; row < n; row++ {
			entry, err := a.At(row, col)
			if err != nil {
				return numeric.Number{}, err
			}
			if mode.IsZero(entry) {
				continue
			}
			factor, err := entry.Div(pivot)
			if err != nil {
				return numeric.Number{}, err
			}
			a, err = a.AddScaledRow(row, col, factor.Neg())
			if err != nil {
				return numeric.Number{}, err
			}
			rec.step("clear entry below pivot", map[string]string{
				"row":    strconv.Itoa(row),
				"col":    strconv.Itoa(col),
				"factor": factor.String(),
			})
		}
	}

	det := numeric.FromInt(1)
	for i := 0; i < n; i++ {
		d, err := a.At(i, i)
		if err != nil {
			return numeric.Number{}, err
		}
		det = det.Mul(d)
	}
	if swaps%2 == 1 {
		det = det.Neg()
	}
	rec.step("diagonal product", map[string]string{
		"swaps": strconv.Itoa(swaps),
		"det":   det.String(),
	})

	return mode.Normalize(det)
}
