// Package expr: the immutable expression tree.
// A Node is built once per parse, evaluated once, then discarded.

package expr

// Node is one node of the parsed expression tree.
type Node interface {
	node()
}

// Num is a numeric literal as written, e.g. "3" or "0.25".
// A decimal point in the literal makes it evaluate to a float; a bare
// integer evaluates to an exact value.
type Num struct {
	Literal string
	Pos     int
}

// Neg is unary negation.
type Neg struct {
	Child Node
}

// Div is binary division, left-associative.
type Div struct {
	Left, Right Node
}

// Pow is exponentiation, right-associative.
type Pow struct {
	Base, Exp Node
}

// Sqrt is the square-root operator.
type Sqrt struct {
	Child Node
}

func (Num) node()  {}
func (Neg) node()  {}
func (Div) node()  {}
func (Pow) node()  {}
func (Sqrt) node() {}
