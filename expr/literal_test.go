// SPDX-License-Identifier: MIT

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algex/expr"
	"github.com/katalvlaran/algex/numeric"
)

func TestParseVector_Basic(t *testing.T) {
	t.Parallel()

	vec, err := expr.ParseVector("[1/2, -3, 0.25]")
	require.NoError(t, err)
	require.Len(t, vec, 3)
	assert.Equal(t, 0, vec[0].Cmp(mustRat(t, 1, 2)))
	assert.Equal(t, 0, vec[1].Cmp(numeric.FromInt(-3)))
	assert.False(t, vec[2].IsExact())
	assert.InDelta(t, 0.25, vec[2].Float64(), 1e-12)
}

func TestParseVector_Empty(t *testing.T) {
	t.Parallel()

	vec, err := expr.ParseVector("[]")
	require.NoError(t, err)
	assert.Empty(t, vec)
}

func TestParseVector_CommasInsideParensDoNotSplit(t *testing.T) {
	t.Parallel()

	// The parenthesized fraction contains no comma, but the nested depth
	// handling must keep "(1)/(2)" a single element.
	vec, err := expr.ParseVector("[(1)/(2), 3]")
	require.NoError(t, err)
	require.Len(t, vec, 2)
	assert.Equal(t, 0, vec[0].Cmp(mustRat(t, 1, 2)))
}

func TestParseVector_Malformed(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "1,2,3", "[1,2", "1,2]"} {
		_, err := expr.ParseVector(text)
		assert.ErrorIs(t, err, expr.ErrMalformedLiteral, "input %q", text)
	}
}

func TestParseMatrix_Basic(t *testing.T) {
	t.Parallel()

	rows, err := expr.ParseMatrix("[[1, 2], [3, 4]]")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 2)
	assert.Equal(t, 0, rows[1][0].Cmp(numeric.FromInt(3)))
}

func TestParseMatrix_WithExpressions(t *testing.T) {
	t.Parallel()

	rows, err := expr.ParseMatrix("[[1/2, 2^2], [sqrt(9), -1]]")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0][0].Cmp(mustRat(t, 1, 2)))
	assert.Equal(t, 0, rows[0][1].Cmp(numeric.FromInt(4)))
	assert.InDelta(t, 3.0, rows[1][0].Float64(), 1e-12)
}

func TestParseMatrix_Empty(t *testing.T) {
	t.Parallel()

	rows, err := expr.ParseMatrix("[]")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseMatrix_Ragged(t *testing.T) {
	t.Parallel()

	_, err := expr.ParseMatrix("[[1,2],[3]]")
	assert.ErrorIs(t, err, expr.ErrRaggedMatrix)
}

func TestParseMatrix_UnbracketedRow(t *testing.T) {
	t.Parallel()

	_, err := expr.ParseMatrix("[1, 2]")
	assert.ErrorIs(t, err, expr.ErrMalformedLiteral, "a flat vector is not a matrix literal")
}
