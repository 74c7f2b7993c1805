// Package numeric: the Number scalar.
// Number is a concrete, immutable scalar carrying either an exact rational
// or an approximate float64. Exact values ride on math/big.Rat, which keeps
// every rational reduced by GCD with the sign on the numerator — the
// "never unreduced" invariant comes for free from the representation.

package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Number is an immutable scalar: exact when rat is non-nil, approximate
// otherwise. The zero value is the approximate 0.0; use FromInt(0) for the
// exact zero.
type Number struct {
	rat *big.Rat // non-nil ⇒ exact, always reduced
	f   float64  // used when rat == nil
}

// FromInt returns the exact integer n (a rational with denominator 1).
func FromInt(n int64) Number {
	return Number{rat: new(big.Rat).SetInt64(n)}
}

// FromRat returns the exact rational num/den, reduced with the sign on the
// numerator. A zero denominator yields ErrDivisionByZero.
func FromRat(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, fmt.Errorf("FromRat: %d/0: %w", num, ErrDivisionByZero)
	}

	return Number{rat: new(big.Rat).SetFrac64(num, den)}, nil
}

// FromBigRat returns an exact Number copying r. A nil r is the exact zero.
func FromBigRat(r *big.Rat) Number {
	if r == nil {
		return FromInt(0)
	}

	return Number{rat: new(big.Rat).Set(r)}
}

// FromFloat returns the approximate value f.
func FromFloat(f float64) Number {
	return Number{f: f}
}

// IsExact reports whether x carries an exact rational.
func (x Number) IsExact() bool { return x.rat != nil }

// IsInt reports whether x is an exact value with denominator 1.
// Approximate values are never integers under this predicate, matching the
// exponent-typing rule of the expression grammar.
func (x Number) IsInt() bool { return x.rat != nil && x.rat.IsInt() }

// Rat returns a copy of the exact rational value, or nil for approximate
// numbers. Callers may mutate the copy freely.
func (x Number) Rat() *big.Rat {
	if x.rat == nil {
		return nil
	}

	return new(big.Rat).Set(x.rat)
}

// Float64 returns the floating value of x (exact values are converted).
func (x Number) Float64() float64 {
	if x.rat != nil {
		f, _ := x.rat.Float64()
		return f
	}

	return x.f
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Number) Sign() int {
	if x.rat != nil {
		return x.rat.Sign()
	}
	if x.f > 0 {
		return 1
	}
	if x.f < 0 {
		return -1
	}

	return 0
}

// Cmp compares x and y: -1 if x < y, 0 if equal, +1 if x > y.
// Exact pairs compare exactly; any approximate operand forces a float
// comparison.
func (x Number) Cmp(y Number) int {
	if x.rat != nil && y.rat != nil {
		return x.rat.Cmp(y.rat)
	}
	xf, yf := x.Float64(), y.Float64()
	switch {
	case xf < yf:
		return -1
	case xf > yf:
		return 1
	default:
		return 0
	}
}

// Neg returns -x in the same representation.
func (x Number) Neg() Number {
	if x.rat != nil {
		return Number{rat: new(big.Rat).Neg(x.rat)}
	}

	return Number{f: -x.f}
}

// Add returns x + y. Exact when both operands are exact, float otherwise.
func (x Number) Add(y Number) Number {
	if x.rat != nil && y.rat != nil {
		return Number{rat: new(big.Rat).Add(x.rat, y.rat)}
	}

	return Number{f: x.Float64() + y.Float64()}
}

// Sub returns x - y. Exact when both operands are exact, float otherwise.
func (x Number) Sub(y Number) Number {
	if x.rat != nil && y.rat != nil {
		return Number{rat: new(big.Rat).Sub(x.rat, y.rat)}
	}

	return Number{f: x.Float64() - y.Float64()}
}

// Mul returns x * y. Exact when both operands are exact, float otherwise.
func (x Number) Mul(y Number) Number {
	if x.rat != nil && y.rat != nil {
		return Number{rat: new(big.Rat).Mul(x.rat, y.rat)}
	}

	return Number{f: x.Float64() * y.Float64()}
}

// Div returns x / y. Exact when both operands are exact, float otherwise.
// A divisor equal to zero (raw equality, not mode-aware) yields
// ErrDivisionByZero.
func (x Number) Div(y Number) (Number, error) {
	if y.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	if x.rat != nil && y.rat != nil {
		return Number{rat: new(big.Rat).Quo(x.rat, y.rat)}, nil
	}

	return Number{f: x.Float64() / y.Float64()}, nil
}

// Pow returns x raised to e under the grammar's typing rules:
//   - integer exponent (exact, denominator 1): exact rational power for an
//     exact base, float power for a float base;
//   - non-integer exponent: real exponentiation producing a float; a
//     negative base yields ErrComplexResult.
//
// Zero raised to a negative integer exponent yields ErrDivisionByZero.
func (x Number) Pow(e Number) (Number, error) {
	if e.IsInt() {
		if x.rat == nil {
			kf, _ := new(big.Float).SetInt(e.rat.Num()).Float64()
			return Number{f: math.Pow(x.f, kf)}, nil
		}

		return x.ratPowInt(e.rat.Num())
	}

	if x.Sign() < 0 {
		return Number{}, fmt.Errorf("Pow: negative base, non-integer exponent: %w", ErrComplexResult)
	}

	return Number{f: math.Pow(x.Float64(), e.Float64())}, nil
}

// Sqrt returns the real square root of x as a float, always. No exactness
// is attempted even for perfect squares — a deliberate simplicity
// trade-off, not a precision goal. Negative x yields ErrComplexResult.
func (x Number) Sqrt() (Number, error) {
	if x.Sign() < 0 {
		return Number{}, fmt.Errorf("Sqrt: negative operand: %w", ErrComplexResult)
	}

	return Number{f: math.Sqrt(x.Float64())}, nil
}

// String returns a debug-oriented rendering: "a/b" or bare integer for
// exact values, shortest float form otherwise. Canonical human formatting
// lives in the format package.
func (x Number) String() string {
	if x.rat != nil {
		if x.rat.IsInt() {
			return x.rat.Num().String()
		}

		return x.rat.RatString()
	}

	return strconv.FormatFloat(x.f, 'g', -1, 64)
}

// ratPowInt computes the exact rational power x^k for exact x and integer k.
// Negative k inverts; a zero base with negative k is a division by zero.
func (x Number) ratPowInt(k *big.Int) (Number, error) {
	if k.Sign() == 0 {
		return FromInt(1), nil
	}

	base := x.rat
	if k.Sign() < 0 {
		if x.rat.Sign() == 0 {
			return Number{}, fmt.Errorf("Pow: 0 to negative exponent: %w", ErrDivisionByZero)
		}
		base = new(big.Rat).Inv(x.rat)
	}

	abs := new(big.Int).Abs(k)
	num := new(big.Int).Exp(base.Num(), abs, nil)
	den := new(big.Int).Exp(base.Denom(), abs, nil)

	return Number{rat: new(big.Rat).SetFrac(num, den)}, nil
}

// exactRat converts x to a rational. Approximate values are parsed from
// their shortest decimal representation so that, e.g., 0.1 becomes exactly
// 1/10 rather than its binary float neighborhood. Returns false for
// NaN/±Inf.
func (x Number) exactRat() (*big.Rat, bool) {
	if x.rat != nil {
		return new(big.Rat).Set(x.rat), true
	}
	if math.IsNaN(x.f) || math.IsInf(x.f, 0) {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(x.f, 'g', -1, 64))
	if !ok {
		return nil, false
	}

	return r, true
}
