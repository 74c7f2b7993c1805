// Package expr: recursive-descent parser for the restricted grammar.
//
//	expr  := frac
//	frac  := power ('/' power)*
//	power := unary ('^' power)?    // right-associative
//	unary := '-' unary | primary
//	primary := NUMBER | 'sqrt' '(' expr ')' | '(' expr ')'
//
// Every failure wraps ErrSyntax with the byte position and the expected
// construct; the caller matches with errors.Is.

package expr

import (
	"fmt"
	"strings"
)

// Parse tokenizes and parses text into an expression tree.
// Stage 1 (Validate): reject empty/blank input.
// Stage 2 (Execute): tokenize, then descend the grammar.
// Stage 3 (Finalize): require every token consumed (no trailing tokens).
// Complexity: O(len(text)).
func Parse(text string) (Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("Parse: empty input: %w", ErrSyntax)
	}
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, syntaxErrorf(p.peek().pos, "end of input")
	}

	return root, nil
}

func syntaxErrorf(pos int, expected string) error {
	return fmt.Errorf("Parse: position %d: expected %s: %w", pos, expected, ErrSyntax)
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

// eat consumes the current token if it has the wanted kind.
func (p *parser) eat(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return token{}, syntaxErrorf(t.pos, kind.String())
	}
	p.pos++

	return t, nil
}

// expr := frac
func (p *parser) expr() (Node, error) {
	return p.frac()
}

// frac := power ('/' power)*
func (p *parser) frac() (Node, error) {
	left, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokDiv {
		p.pos++
		right, err := p.power()
		if err != nil {
			return nil, err
		}
		left = Div{Left: left, Right: right}
	}

	return left, nil
}

// power := unary ('^' power)?
func (p *parser) power() (Node, error) {
	base, err := p.unary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokPow {
		p.pos++
		exp, err := p.power() // right recursion ⇒ right associativity
		if err != nil {
			return nil, err
		}

		return Pow{Base: base, Exp: exp}, nil
	}

	return base, nil
}

// unary := '-' unary | primary
func (p *parser) unary() (Node, error) {
	if p.peek().kind == tokMinus {
		p.pos++
		child, err := p.unary()
		if err != nil {
			return nil, err
		}

		return Neg{Child: child}, nil
	}

	return p.primary()
}

// primary := NUMBER | 'sqrt' '(' expr ')' | '(' expr ')'
func (p *parser) primary() (Node, error) {
	switch t := p.peek(); t.kind {
	case tokNum:
		p.pos++
		return Num{Literal: t.text, Pos: t.pos}, nil

	case tokSqrt:
		p.pos++
		if _, err := p.eat(tokLParen); err != nil {
			return nil, err
		}
		child, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(tokRParen); err != nil {
			return nil, err
		}

		return Sqrt{Child: child}, nil

	case tokLParen:
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(tokRParen); err != nil {
			return nil, err
		}

		return inner, nil

	default:
		return nil, syntaxErrorf(t.pos, "number, sqrt, or '('")
	}
}
