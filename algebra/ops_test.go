// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algex/algebra"
	"github.com/katalvlaran/algex/format"
	"github.com/katalvlaran/algex/matrix"
	"github.com/katalvlaran/algex/numeric"
)

func approxMode(t *testing.T) numeric.Mode {
	t.Helper()
	m, err := numeric.NewMode(numeric.Approx)
	require.NoError(t, err)

	return m
}

func TestDeterminant_Basic(t *testing.T) {
	t.Parallel()

	res := algebra.Determinant("[[2,3],[1,4]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "5", res.Formatted)
	assert.True(t, res.Value.IsExact())
}

func TestDeterminant_SwapNegates(t *testing.T) {
	t.Parallel()

	// [[0,1],[2,3]] forces one row swap; det = 0*3 - 1*2 = -2.
	res := algebra.Determinant("[[0,1],[2,3]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "-2", res.Formatted)
}

func TestDeterminant_Singular(t *testing.T) {
	t.Parallel()

	res := algebra.Determinant("[[1,2],[2,4]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "0", res.Formatted)
}

func TestDeterminant_Fractions(t *testing.T) {
	t.Parallel()

	// Diagonal 1/2 · 1/3: not a finite decimal, Auto falls back to "1/6".
	res := algebra.Determinant("[[1/2,0],[0,1/3]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "1/6", res.Formatted)

	res = algebra.Determinant("[[1/2,0],[0,1/3]]", numeric.Default(),
		algebra.WithFormat(format.Fraction))
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "1/6", res.Formatted)
}

func TestDeterminant_Approx(t *testing.T) {
	t.Parallel()

	res := algebra.Determinant("[[0.5,0],[0,0.5]]", approxMode(t))
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "0.25", res.Formatted)
}

func TestDeterminant_ScalarPromotion(t *testing.T) {
	t.Parallel()

	// A bare scalar is a 1×1 matrix; its determinant is itself.
	res := algebra.Determinant("-7", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "-7", res.Formatted)
	assert.Equal(t, 1, res.M.Rows())
}

func TestDeterminant_Failures(t *testing.T) {
	t.Parallel()

	res := algebra.Determinant("[[1,2,3],[4,5,6]]", numeric.Default())
	require.False(t, res.OK)
	assert.Contains(t, res.Err, matrix.ErrNonSquare.Error())

	res = algebra.Determinant("[]", numeric.Default())
	require.False(t, res.OK)
	assert.Contains(t, res.Err, matrix.ErrEmptyMatrix.Error())

	res = algebra.Determinant("[[1,2],[3]]", numeric.Default())
	require.False(t, res.OK)
	assert.NotEmpty(t, res.Err)
}

func TestMultiply_Basic(t *testing.T) {
	t.Parallel()

	res := algebra.Multiply("[[1,2],[3,4]]", "[[2,0],[0,2]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, [][]string{{"2", "4"}, {"6", "8"}}, res.Formatted)
}

func TestMultiply_Identity(t *testing.T) {
	t.Parallel()

	res := algebra.Multiply("[[1,2],[3,4]]", "[[1,0],[0,1]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, res.Formatted)
}

func TestMultiply_Rectangular(t *testing.T) {
	t.Parallel()

	// (2×3) · (3×1) = 2×1.
	res := algebra.Multiply("[[1,2,3],[4,5,6]]", "[[1],[1],[1]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, [][]string{{"6"}, {"15"}}, res.Formatted)
	assert.Equal(t, 2, res.C.Rows())
	assert.Equal(t, 1, res.C.Cols())
}

func TestMultiply_Failures(t *testing.T) {
	t.Parallel()

	// (2×2)·(3×2): cols(A) != rows(B).
	res := algebra.Multiply("[[1,2],[3,4]]", "[[1,2],[3,4],[5,6]]", numeric.Default())
	require.False(t, res.OK)
	assert.Contains(t, res.Err, matrix.ErrNotMultiplicable.Error())

	res = algebra.Multiply("[[1,2],[3,4]]", "[[1,x]]", numeric.Default())
	require.False(t, res.OK)
	assert.Contains(t, res.Err, "operand B")
}

func TestSum_Basic(t *testing.T) {
	t.Parallel()

	res := algebra.Sum("[[1,2],[3,4]]", "[[5,6],[7,8]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, [][]string{{"6", "8"}, {"10", "12"}}, res.Formatted)
}

func TestSum_VectorPromotion(t *testing.T) {
	t.Parallel()

	res := algebra.Sum("[1, 2]", "[3, 4]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, [][]string{{"4", "6"}}, res.Formatted)
}

func TestSum_ExpressionsInCells(t *testing.T) {
	t.Parallel()

	res := algebra.Sum("[[1/2]]", "[[(1/2)^2]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Equal(t, [][]string{{"0.75"}}, res.Formatted)
}

func TestSum_Failures(t *testing.T) {
	t.Parallel()

	res := algebra.Sum("[[1,2],[3,4]]", "[[1,2,3],[4,5,6]]", numeric.Default())
	require.False(t, res.OK)
	assert.Contains(t, res.Err, matrix.ErrDimensionMismatch.Error())

	res = algebra.Sum("[]", "[[1]]", numeric.Default())
	require.False(t, res.OK)
	assert.Contains(t, res.Err, matrix.ErrEmptyMatrix.Error())
}

func TestSteps_SuccessTrace(t *testing.T) {
	t.Parallel()

	tr := algebra.NewTrace()
	res := algebra.Determinant("[[2,3],[1,4]]", numeric.Default(),
		algebra.WithRecorder(tr))
	require.True(t, res.OK, res.Err)
	require.NotEmpty(t, res.Steps)

	assert.Equal(t, algebra.StageStart, res.Steps[0].Stage)
	assert.Equal(t, "determinant", res.Steps[0].Op)
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, algebra.StageEnd, last.Stage)
	assert.Equal(t, "true", last.State["ok"])

	stages := make(map[algebra.Stage]bool)
	for _, s := range res.Steps {
		stages[s.Stage] = true
	}
	assert.True(t, stages[algebra.StageStep])
	assert.False(t, stages[algebra.StageError])
}

func TestSteps_FailureTrace(t *testing.T) {
	t.Parallel()

	tr := algebra.NewTrace()
	res := algebra.Determinant("[[1,2,3],[4,5,6]]", numeric.Default(),
		algebra.WithRecorder(tr))
	require.False(t, res.OK)
	require.NotEmpty(t, res.Steps)

	var sawError bool
	for _, s := range res.Steps {
		if s.Stage == algebra.StageError {
			sawError = true
			assert.Contains(t, s.Msg, matrix.ErrNonSquare.Error())
		}
	}
	assert.True(t, sawError)
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, algebra.StageEnd, last.Stage)
	assert.Equal(t, "false", last.State["ok"])
}

func TestSteps_NoRecorder(t *testing.T) {
	t.Parallel()

	res := algebra.Determinant("[[2,3],[1,4]]", numeric.Default())
	require.True(t, res.OK, res.Err)
	assert.Nil(t, res.Steps)
}
