// SPDX-License-Identifier: MIT
// Package format: canonical rendering of Numbers.
// Exact values are rendered from their rational form; approximate values
// are first converted to a rational via their shortest decimal
// representation, so rounding happens in decimal, never in binary.

package format

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/algex/numeric"
)

var (
	// ErrInvalidMode is returned for a Mode outside {Auto, Fraction, Float}.
	ErrInvalidMode = errors.New("format: invalid format mode")

	// ErrInvalidPlaces is returned for a negative decimal digit budget.
	ErrInvalidPlaces = errors.New("format: negative decimal places")
)

// Mode selects the rendering style.
type Mode uint8

const (
	// Auto prefers exact finite decimals, falling back to fractions for
	// non-finite exact values and to rounded decimals for floats.
	Auto Mode = iota

	// Fraction always renders exact form: bare integers, "a/b" otherwise.
	Fraction

	// Float always renders a clipped decimal string.
	Float
)

// String returns the canonical lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Fraction:
		return "fraction"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// ParseMode maps the external mode names onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "fraction":
		return Fraction, nil
	case "float":
		return Float, nil
	default:
		return 0, fmt.Errorf("ParseMode: %q: %w", s, ErrInvalidMode)
	}
}

// Scalar renders x under the given mode with at most places fractional
// digits for decimal output.
// Stage 1 (Validate): mode must be recognized, places ≥ 0.
// Stage 2 (Execute): dispatch per mode.
// Complexity: O(digits).
func Scalar(x numeric.Number, mode Mode, places int) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("Scalar: negative places %d: %w", places, ErrInvalidPlaces)
	}

	switch mode {
	case Fraction:
		return asFraction(x)
	case Float:
		return asDecimal(x, places)
	case Auto:
		return asAuto(x, places)
	default:
		return "", fmt.Errorf("Scalar: mode %d: %w", mode, ErrInvalidMode)
	}
}

// Grid renders a matrix of Numbers element-wise into a same-shaped grid of
// strings.
func Grid(rows [][]numeric.Number, mode Mode, places int) ([][]string, error) {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, x := range row {
			s, err := Scalar(x, mode, places)
			if err != nil {
				return nil, err
			}
			out[i][j] = s
		}
	}

	return out, nil
}

// asFraction renders exact form: bare integer or reduced "a/b". Approximate
// values convert via their decimal representation first.
func asFraction(x numeric.Number) (string, error) {
	r, ok := toRat(x)
	if !ok {
		return "", fmt.Errorf("Scalar: non-finite value %v: %w", x.Float64(), ErrInvalidMode)
	}
	if r.IsInt() {
		return r.Num().String(), nil
	}

	return r.RatString(), nil
}

// asDecimal renders a decimal string clipped to places digits with
// round-half-up (big.Rat rounds ties away from zero, which is half-up for
// the magnitudes involved), trailing zeros stripped.
func asDecimal(x numeric.Number, places int) (string, error) {
	r, ok := toRat(x)
	if !ok {
		return "", fmt.Errorf("Scalar: non-finite value %v: %w", x.Float64(), ErrInvalidMode)
	}

	return trimDecimal(r.FloatString(places)), nil
}

// asAuto prefers exact finite decimals for exact values and falls back per
// the Auto contract.
func asAuto(x numeric.Number, places int) (string, error) {
	if !x.IsExact() {
		return asDecimal(x, places)
	}
	r := x.Rat()
	if r.IsInt() {
		return r.Num().String(), nil
	}

	k, finite := finiteDecimalDigits(r.Denom())
	if !finite {
		return r.RatString(), nil
	}
	if k > places {
		// The exact expansion exceeds the budget: round to it.
		return trimDecimal(r.FloatString(places)), nil
	}

	// FloatString(k) is the exact expansion for a 2^a·5^b denominator.
	return trimDecimal(r.FloatString(k)), nil
}

// finiteDecimalDigits reports whether den has only 2 and 5 as prime
// factors and, if so, how many fractional digits the exact decimal
// expansion needs: max(a, b) for den = 2^a · 5^b.
func finiteDecimalDigits(den *big.Int) (int, bool) {
	two := big.NewInt(2)
	five := big.NewInt(5)
	rest := new(big.Int).Set(den)
	mod := new(big.Int)

	var a, b int
	for {
		q, m := new(big.Int).QuoRem(rest, two, mod)
		if m.Sign() != 0 {
			break
		}
		rest.Set(q)
		a++
	}
	for {
		q, m := new(big.Int).QuoRem(rest, five, mod)
		if m.Sign() != 0 {
			break
		}
		rest.Set(q)
		b++
	}
	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if b > a {
		return b, true
	}

	return a, true
}

// toRat converts x to a rational, parsing floats from their shortest
// decimal representation. Returns false for NaN/±Inf.
func toRat(x numeric.Number) (*big.Rat, bool) {
	if x.IsExact() {
		return x.Rat(), true
	}
	f := x.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}

	return new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
}

// trimDecimal strips trailing zeros and a trailing decimal point.
func trimDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}

	return s
}
