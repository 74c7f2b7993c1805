// Package numeric: mode-aware conversion and comparison.
// Normalize is the single entry point that turns any supported literal into
// the representation the active mode requires; Equal/IsZero/IsOne are the
// only comparison primitives the rest of algex is allowed to use.

package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Normalize converts a supported literal into the representation required
// by the mode:
//   - Exact: always an exact Number (integers embed as rationals with
//     denominator 1; floats and decimal strings convert via their decimal
//     representation to avoid binary artifacts);
//   - Approx: always a float rounded to the mode's decimal places.
//
// Supported inputs: Number, int, int64, float64, *big.Rat, and string
// (decimal forms like "3.14" / "1e-3" / "2", or "a/b" with integer parts).
// Unsupported types yield ErrUnsupportedType; unparsable strings yield
// ErrMalformedNumber.
func (m Mode) Normalize(v any) (Number, error) {
	switch t := v.(type) {
	case Number:
		return m.normalizeNumber(t)
	case int:
		return m.normalizeNumber(FromInt(int64(t)))
	case int64:
		return m.normalizeNumber(FromInt(t))
	case float64:
		return m.normalizeNumber(FromFloat(t))
	case *big.Rat:
		return m.normalizeNumber(FromBigRat(t))
	case string:
		return m.normalizeString(t)
	default:
		return Number{}, fmt.Errorf("Normalize: type %T: %w", v, ErrUnsupportedType)
	}
}

// NormalizeRows normalizes every element of rows, returning a fresh slice
// of the same shape. The input is not modified. Any element failure aborts
// with that element's error.
func (m Mode) NormalizeRows(rows [][]Number) ([][]Number, error) {
	out := make([][]Number, len(rows))
	for i, row := range rows {
		out[i] = make([]Number, len(row))
		for j, v := range row {
			n, err := m.Normalize(v)
			if err != nil {
				return nil, err
			}
			out[i][j] = n
		}
	}

	return out, nil
}

// Equal compares a and b under the mode: structural equality of reduced
// rationals when Exact, |a-b| ≤ tolerance after rounding when Approx.
// Non-finite floats are equal to nothing, including themselves.
func (m Mode) Equal(a, b Number) bool {
	if m.kind == Exact {
		ar, aok := a.exactRat()
		br, bok := b.exactRat()
		if !aok || !bok {
			return false
		}

		return ar.Cmp(br) == 0
	}

	af := roundTo(a.Float64(), m.places)
	bf := roundTo(b.Float64(), m.places)

	return math.Abs(af-bf) <= m.tol
}

// IsZero reports whether x equals 0 under the mode.
func (m Mode) IsZero(x Number) bool { return m.Equal(x, FromInt(0)) }

// IsOne reports whether x equals 1 under the mode.
func (m Mode) IsOne(x Number) bool { return m.Equal(x, FromInt(1)) }

// normalizeNumber coerces an already-typed Number into the mode's
// representation.
func (m Mode) normalizeNumber(x Number) (Number, error) {
	if m.kind == Approx {
		return FromFloat(roundTo(x.Float64(), m.places)), nil
	}
	r, ok := x.exactRat()
	if !ok {
		return Number{}, fmt.Errorf("Normalize: non-finite float: %w", ErrUnsupportedType)
	}

	return Number{rat: r}, nil
}

// normalizeString parses "a/b" fraction strings and plain decimal strings.
func (m Mode) normalizeString(s string) (Number, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Number{}, fmt.Errorf("Normalize: empty string: %w", ErrMalformedNumber)
	}

	if idx := strings.Index(text, "/"); idx >= 0 {
		num, den, err := splitFraction(text, idx)
		if err != nil {
			return Number{}, err
		}

		return m.normalizeNumber(Number{rat: new(big.Rat).SetFrac(num, den)})
	}

	if m.kind == Approx {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, fmt.Errorf("Normalize: %q: %w", s, ErrMalformedNumber)
		}

		return FromFloat(roundTo(f, m.places)), nil
	}

	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return Number{}, fmt.Errorf("Normalize: %q: %w", s, ErrMalformedNumber)
	}

	return Number{rat: r}, nil
}

// splitFraction validates the two integer parts of an "a/b" literal.
func splitFraction(text string, idx int) (*big.Int, *big.Int, error) {
	numText := strings.TrimSpace(text[:idx])
	denText := strings.TrimSpace(text[idx+1:])

	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return nil, nil, fmt.Errorf("Normalize: numerator %q: %w", numText, ErrMalformedNumber)
	}
	den, ok := new(big.Int).SetString(denText, 10)
	if !ok {
		return nil, nil, fmt.Errorf("Normalize: denominator %q: %w", denText, ErrMalformedNumber)
	}
	if den.Sign() == 0 {
		return nil, nil, fmt.Errorf("Normalize: %q: zero denominator: %w", text, ErrMalformedNumber)
	}

	return num, den, nil
}

// roundTo rounds f to the given number of decimal places, half away from
// zero. Non-finite inputs pass through unchanged.
func roundTo(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(places))

	return math.Round(f*scale) / scale
}
