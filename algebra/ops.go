// Package algebra: the public operations.
// Each operation follows the same pipeline: decode raw text, validate
// dimensions, run the kernel, format the result. Failures become structured
// results, never panics or bare error returns.

package algebra

import (
	"fmt"

	"github.com/katalvlaran/algex/format"
	"github.com/katalvlaran/algex/matrix"
	"github.com/katalvlaran/algex/numeric"
)

// Determinant computes det(M) for the square matrix encoded in text.
//
// Stage 1 (Decode): DecodeMatrix with the given numeric mode.
// Stage 2 (Validate): the matrix must be non-empty and square.
// Stage 3 (Execute): Gaussian elimination with partial pivoting.
// Stage 4 (Format): render the scalar under the call's format options.
func Determinant(text string, mode numeric.Mode, opts ...Option) ScalarResult {
	o := gather(opts)
	rec := recorder{o.rec}
	rec.begin("determinant")

	m, err := DecodeMatrix(text, mode)
	if err != nil {
		return ScalarResult{Result: failure(rec, err)}
	}
	rec.step("input decoded", shapeState("M", m))

	if err = matrix.ValidateSquare(m); err != nil {
		return ScalarResult{Result: failure(rec, err), M: m}
	}

	det, err := gaussDeterminant(m, mode, rec)
	if err != nil {
		return ScalarResult{Result: failure(rec, err), M: m}
	}

	rendered, err := format.Scalar(det, o.format, o.places)
	if err != nil {
		return ScalarResult{Result: failure(rec, err), M: m}
	}
	rec.step("result formatted", map[string]string{"det": rendered})
	rec.end(true)

	return ScalarResult{
		Result:    Result{OK: true, Steps: rec.steps()},
		M:         m,
		Value:     det,
		Formatted: rendered,
	}
}

// Multiply computes A·B for the matrices encoded in textA and textB.
// Requires cols(A) == rows(B); both operands non-empty.
func Multiply(textA, textB string, mode numeric.Mode, opts ...Option) MatrixResult {
	o := gather(opts)
	rec := recorder{o.rec}
	rec.begin("multiply")

	a, b, res := decodePair(textA, textB, mode, rec)
	if !res.OK {
		return res
	}

	if err := matrix.ValidateMultiplicable(a, b); err != nil {
		return MatrixResult{Result: failure(rec, err), A: a, B: b}
	}

	c, err := product(a, b)
	if err != nil {
		return MatrixResult{Result: failure(rec, err), A: a, B: b}
	}
	rec.step("product computed", shapeState("C", c))

	return finishMatrix(rec, o, a, b, c)
}

// Sum computes A+B element-wise for the matrices encoded in textA and
// textB. Requires identical dimensions; both operands non-empty.
func Sum(textA, textB string, mode numeric.Mode, opts ...Option) MatrixResult {
	o := gather(opts)
	rec := recorder{o.rec}
	rec.begin("sum")

	a, b, res := decodePair(textA, textB, mode, rec)
	if !res.OK {
		return res
	}

	if err := matrix.ValidateSameShape(a, b); err != nil {
		return MatrixResult{Result: failure(rec, err), A: a, B: b}
	}

	rows := make([][]numeric.Number, a.Rows())
	for i := 0; i < a.Rows(); i++ {
		rows[i] = make([]numeric.Number, a.Cols())
		for j := 0; j < a.Cols(); j++ {
			x, err := a.At(i, j)
			if err != nil {
				return MatrixResult{Result: failure(rec, err), A: a, B: b}
			}
			y, err := b.At(i, j)
			if err != nil {
				return MatrixResult{Result: failure(rec, err), A: a, B: b}
			}
			rows[i][j] = x.Add(y)
		}
	}
	c, err := matrix.FromRows(rows)
	if err != nil {
		return MatrixResult{Result: failure(rec, err), A: a, B: b}
	}
	rec.step("sum computed", shapeState("C", c))

	return finishMatrix(rec, o, a, b, c)
}

// decodePair decodes both operands, reporting which one failed. The third
// return carries the failure envelope; its OK field doubles as the success
// flag.
func decodePair(textA, textB string, mode numeric.Mode, rec recorder) (matrix.Matrix, matrix.Matrix, MatrixResult) {
	a, err := DecodeMatrix(textA, mode)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{},
			MatrixResult{Result: failure(rec, fmt.Errorf("operand A: %w", err))}
	}
	b, err := DecodeMatrix(textB, mode)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{},
			MatrixResult{Result: failure(rec, fmt.Errorf("operand B: %w", err)), A: a}
	}
	rec.step("inputs decoded", mergeState(shapeState("A", a), shapeState("B", b)))

	return a, b, MatrixResult{Result: Result{OK: true}}
}

// product is the textbook O(n·m·p) kernel over validated operands.
func product(a, b matrix.Matrix) (matrix.Matrix, error) {
	rows := make([][]numeric.Number, a.Rows())
	for i := 0; i < a.Rows(); i++ {
		rows[i] = make([]numeric.Number, b.Cols())
		for j := 0; j < b.Cols(); j++ {
			acc := numeric.FromInt(0)
			for k := 0; k < a.Cols(); k++ {
				x, err := a.At(i, k)
				if err != nil {
					return matrix.Matrix{}, err
				}
				y, err := b.At(k, j)
				if err != nil {
					return matrix.Matrix{}, err
				}
				acc = acc.Add(x.Mul(y))
			}
			rows[i][j] = acc
		}
	}

	return matrix.FromRows(rows)
}

// finishMatrix formats C and closes the trace.
func finishMatrix(rec recorder, o options, a, b, c matrix.Matrix) MatrixResult {
	rendered, err := format.Grid(c.ToRows(), o.format, o.places)
	if err != nil {
		return MatrixResult{Result: failure(rec, err), A: a, B: b, C: c}
	}
	rec.end(true)

	return MatrixResult{
		Result:    Result{OK: true, Steps: rec.steps()},
		A:         a,
		B:         b,
		C:         c,
		Formatted: rendered,
	}
}

// shapeState describes a matrix shape for step snapshots.
func shapeState(name string, m matrix.Matrix) map[string]string {
	return map[string]string{name: fmt.Sprintf("%dx%d", m.Rows(), m.Cols())}
}

// mergeState merges small state maps left to right.
func mergeState(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}
