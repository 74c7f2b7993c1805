// Package expr: evaluation of the parsed tree into raw Numbers.
// "Raw" means the grammar's own typing rules apply (exact vs float); the
// active numeric mode is applied afterwards by the caller.

package expr

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/algex/numeric"
)

// Eval computes the value of a parsed expression tree.
// Typing rules:
//   - literal with a decimal point → float; bare integer → exact;
//   - division → float if either operand is a float, exact otherwise;
//     a divisor equal to zero yields numeric.ErrDivisionByZero;
//   - power → exact for an exact base and integer exponent; float if the
//     base is a float; a non-integer exponent forces real exponentiation,
//     and a negative base then yields numeric.ErrComplexResult;
//   - sqrt → always the real square root as a float.
//
// Complexity: O(nodes).
func Eval(n Node) (numeric.Number, error) {
	switch t := n.(type) {
	case Num:
		return evalLiteral(t)

	case Neg:
		v, err := Eval(t.Child)
		if err != nil {
			return numeric.Number{}, err
		}

		return v.Neg(), nil

	case Div:
		left, err := Eval(t.Left)
		if err != nil {
			return numeric.Number{}, err
		}
		right, err := Eval(t.Right)
		if err != nil {
			return numeric.Number{}, err
		}

		return left.Div(right)

	case Pow:
		base, err := Eval(t.Base)
		if err != nil {
			return numeric.Number{}, err
		}
		exp, err := Eval(t.Exp)
		if err != nil {
			return numeric.Number{}, err
		}

		return base.Pow(exp)

	case Sqrt:
		v, err := Eval(t.Child)
		if err != nil {
			return numeric.Number{}, err
		}

		return v.Sqrt()

	default:
		return numeric.Number{}, fmt.Errorf("Eval: unknown node %T: %w", n, ErrSyntax)
	}
}

// EvalScalar parses and evaluates a scalar expression in one call.
func EvalScalar(text string) (numeric.Number, error) {
	root, err := Parse(text)
	if err != nil {
		return numeric.Number{}, err
	}

	return Eval(root)
}

// evalLiteral turns a NUMBER token into a raw Number: decimal point ⇒
// float, bare digits ⇒ exact integer.
func evalLiteral(t Num) (numeric.Number, error) {
	if strings.Contains(t.Literal, ".") {
		f, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return numeric.Number{}, syntaxErrorf(t.Pos, "decimal literal")
		}

		return numeric.FromFloat(f), nil
	}

	r, ok := new(big.Rat).SetString(t.Literal)
	if !ok {
		return numeric.Number{}, syntaxErrorf(t.Pos, "integer literal")
	}

	return numeric.FromBigRat(r), nil
}
