// SPDX-License-Identifier: MIT

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algex/expr"
	"github.com/katalvlaran/algex/numeric"
)

// mustRat builds an exact rational or fails the test.
func mustRat(t *testing.T, num, den int64) numeric.Number {
	t.Helper()
	n, err := numeric.FromRat(num, den)
	require.NoError(t, err)

	return n
}

func TestEvalScalar_ExactFractions(t *testing.T) {
	t.Parallel()

	v, err := expr.EvalScalar("1/2")
	require.NoError(t, err)
	require.True(t, v.IsExact())
	assert.Equal(t, 0, v.Cmp(mustRat(t, 1, 2)))

	// Per grammar precedence this is -(1) / (2^2) = -1/4.
	v, err = expr.EvalScalar("-1/2^2")
	require.NoError(t, err)
	require.True(t, v.IsExact())
	assert.Equal(t, 0, v.Cmp(mustRat(t, -1, 4)))

	// Nested fractions stay exact: (1/2)/(3/4) = 2/3.
	v, err = expr.EvalScalar("(1/2)/(3/4)")
	require.NoError(t, err)
	require.True(t, v.IsExact())
	assert.Equal(t, 0, v.Cmp(mustRat(t, 2, 3)))
}

func TestEvalScalar_PowerRightAssociative(t *testing.T) {
	t.Parallel()

	v, err := expr.EvalScalar("2^3^2")
	require.NoError(t, err)
	require.True(t, v.IsExact())
	assert.Equal(t, 0, v.Cmp(numeric.FromInt(512)), "2^3^2 must parse as 2^(3^2)")
}

func TestEvalScalar_UnaryMinusThenPower(t *testing.T) {
	t.Parallel()

	// unary binds inside power's base: -3^2 = (-3)^2 = 9.
	v, err := expr.EvalScalar("-3^2")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(numeric.FromInt(9)))
}

func TestEvalScalar_LiteralTyping(t *testing.T) {
	t.Parallel()

	v, err := expr.EvalScalar("2")
	require.NoError(t, err)
	assert.True(t, v.IsExact(), "bare integer literal is exact")

	v, err = expr.EvalScalar("0.25")
	require.NoError(t, err)
	assert.False(t, v.IsExact(), "decimal literal is a float")

	v, err = expr.EvalScalar("1/0.5")
	require.NoError(t, err)
	assert.False(t, v.IsExact(), "a float operand forces a float division")
	assert.InDelta(t, 2.0, v.Float64(), 1e-12)
}

func TestEvalScalar_SqrtAlwaysFloat(t *testing.T) {
	t.Parallel()

	v, err := expr.EvalScalar("sqrt(4)")
	require.NoError(t, err)
	assert.False(t, v.IsExact())
	assert.InDelta(t, 2.0, v.Float64(), 1e-12)

	v, err = expr.EvalScalar("sqrt((1/2)^2)")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v.Float64(), 1e-12)
}

func TestEvalScalar_FractionalExponent(t *testing.T) {
	t.Parallel()

	v, err := expr.EvalScalar("(1/2)^(3/2)")
	require.NoError(t, err)
	assert.False(t, v.IsExact())
	assert.InDelta(t, 0.35355339, v.Float64(), 1e-8)

	_, err = expr.EvalScalar("(-8)^(1/3)")
	assert.ErrorIs(t, err, numeric.ErrComplexResult)
}

func TestEvalScalar_DivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := expr.EvalScalar("1/0")
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)

	_, err = expr.EvalScalar("3/(1-1)")
	assert.ErrorIs(t, err, expr.ErrSyntax, "'1-1' inside parentheses is a syntax error, not zero")
}

func TestParse_SyntaxErrors(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",        // empty input
		"   ",     // blank input
		"2+2",     // no binary addition in the grammar
		"(1/2",    // unmatched parenthesis
		"1/",      // missing operand
		"1 2",     // trailing tokens
		"sqrt 4",  // sqrt requires parentheses
		"^2",      // missing base
		"()",      // empty parentheses
		"1-1",     // binary minus is not in the grammar
		"--",      // negation without operand
		"sqrt(2",  // unmatched parenthesis inside sqrt
		"(1))",    // trailing ')'
	}
	for _, text := range cases {
		_, err := expr.Parse(text)
		assert.ErrorIs(t, err, expr.ErrSyntax, "input %q", text)
	}
}

func TestParse_IllegalCharacter(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"2*3", "1,5", "a/b", "[1]"} {
		_, err := expr.Parse(text)
		assert.ErrorIs(t, err, expr.ErrIllegalChar, "input %q", text)
	}

	// Multibyte characters are rejected and reported as whole runes, not as
	// their leading byte.
	_, err := expr.Parse("2é3")
	require.ErrorIs(t, err, expr.ErrIllegalChar)
	assert.Contains(t, err.Error(), "é")
}
