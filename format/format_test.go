// SPDX-License-Identifier: MIT

package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algex/expr"
	"github.com/katalvlaran/algex/format"
	"github.com/katalvlaran/algex/numeric"
)

func mustRat(t *testing.T, num, den int64) numeric.Number {
	t.Helper()
	n, err := numeric.FromRat(num, den)
	require.NoError(t, err)

	return n
}

func TestScalar_FractionMode(t *testing.T) {
	t.Parallel()

	s, err := format.Scalar(numeric.FromInt(7), format.Fraction, 6)
	require.NoError(t, err)
	assert.Equal(t, "7", s, "integers render bare, no denominator")
	assert.NotContains(t, s, "/")

	s, err = format.Scalar(mustRat(t, -2, 6), format.Fraction, 6)
	require.NoError(t, err)
	assert.Equal(t, "-1/3", s, "fractions render reduced")

	s, err = format.Scalar(numeric.FromFloat(0.5), format.Fraction, 6)
	require.NoError(t, err)
	assert.Equal(t, "1/2", s, "floats convert via decimal representation")
}

// Fraction-mode output must round-trip through the expression parser.
func TestScalar_FractionRoundTrip(t *testing.T) {
	t.Parallel()

	exact := numeric.Default()
	cases := [][2]int64{{1, 2}, {-3, 4}, {22, 7}, {5, 1}, {-7, 1}, {355, 113}}
	for _, c := range cases {
		want := mustRat(t, c[0], c[1])
		s, err := format.Scalar(want, format.Fraction, 6)
		require.NoError(t, err)
		got, err := expr.EvalScalar(s)
		require.NoError(t, err, "formatted %q must reparse", s)
		assert.True(t, exact.Equal(got, want), "round-trip of %q", s)
	}
}

func TestScalar_FloatMode(t *testing.T) {
	t.Parallel()

	s, err := format.Scalar(mustRat(t, 1, 3), format.Float, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.333333", s)

	s, err = format.Scalar(mustRat(t, 1, 2), format.Float, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.5", s, "trailing zeros are stripped")

	s, err = format.Scalar(numeric.FromInt(4), format.Float, 6)
	require.NoError(t, err)
	assert.Equal(t, "4", s, "integer decimals lose the trailing point")

	// Round-half-up at the clip boundary: 1/1600000 = 0.000000625.
	s, err = format.Scalar(mustRat(t, 1, 1600000), format.Float, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.000001", s)
}

func TestScalar_AutoMode(t *testing.T) {
	t.Parallel()

	// 1/4 has denominator 2^2: finite decimal.
	s, err := format.Scalar(mustRat(t, 1, 4), format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.25", s)

	// 1/40 = 2^3·5: finite.
	s, err = format.Scalar(mustRat(t, 1, 40), format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.025", s)

	// 1/3 is not finite: fraction fallback.
	s, err = format.Scalar(mustRat(t, 1, 3), format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, "1/3", s)

	// 1/128 = 0.0078125 needs 7 digits; with a budget of 6 it rounds.
	s, err = format.Scalar(mustRat(t, 1, 128), format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.007813", s)

	// Integers render bare.
	s, err = format.Scalar(numeric.FromInt(-12), format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, "-12", s)

	// Floats render as rounded decimals.
	s, err = format.Scalar(numeric.FromFloat(0.1+0.2), format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.3", s, "binary float artifacts do not leak into output")
}

func TestScalar_InvalidMode(t *testing.T) {
	t.Parallel()

	_, err := format.Scalar(numeric.FromInt(1), format.Mode(99), 6)
	assert.ErrorIs(t, err, format.ErrInvalidMode)

	_, err = format.Scalar(numeric.FromInt(1), format.Auto, -1)
	assert.ErrorIs(t, err, format.ErrInvalidPlaces)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]format.Mode{
		"auto": format.Auto, "fraction": format.Fraction, "float": format.Float,
	} {
		got, err := format.ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := format.ParseMode("scientific")
	assert.ErrorIs(t, err, format.ErrInvalidMode)
}

func TestGrid(t *testing.T) {
	t.Parallel()

	rows := [][]numeric.Number{
		{mustRat(t, 1, 2), numeric.FromInt(3)},
		{mustRat(t, 1, 3), numeric.FromFloat(0.25)},
	}
	grid, err := format.Grid(rows, format.Auto, 6)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0.5", "3"}, {"1/3", "0.25"}}, grid)
}
