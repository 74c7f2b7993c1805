// Package expr: tokenizer for the restricted alphabet.
// Accepted: digits (with at most one decimal point per number), '-', '/',
// '^', '(', ')', whitespace, and the literal keyword "sqrt". Everything
// else fails with ErrIllegalChar carrying the character and byte position.

package expr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokNum tokenKind = iota
	tokSqrt
	tokLParen
	tokRParen
	tokDiv
	tokPow
	tokMinus
	tokEOF
)

// String names the token kind for syntax-error messages.
func (k tokenKind) String() string {
	switch k {
	case tokNum:
		return "number"
	case tokSqrt:
		return "sqrt"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokDiv:
		return "'/'"
	case tokPow:
		return "'^'"
	case tokMinus:
		return "'-'"
	case tokEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

type token struct {
	kind tokenKind
	text string // literal text for tokNum
	pos  int    // byte offset in the input
}

// tokenize scans s into the allowed token stream, always terminated by a
// tokEOF carrying the input length as its position.
// Complexity: O(len(s)).
func tokenize(s string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case unicode.IsSpace(rune(ch)):
			i++
		case ch >= '0' && ch <= '9':
			j := i + 1
			dot := false
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.' && !dot) {
				if s[j] == '.' {
					dot = true
				}
				j++
			}
			tokens = append(tokens, token{kind: tokNum, text: s[i:j], pos: i})
			i = j
		case ch == '-':
			tokens = append(tokens, token{kind: tokMinus, pos: i})
			i++
		case ch == '/':
			tokens = append(tokens, token{kind: tokDiv, pos: i})
			i++
		case ch == '^':
			tokens = append(tokens, token{kind: tokPow, pos: i})
			i++
		case ch == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i})
			i++
		case ch == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i})
			i++
		case strings.HasPrefix(s[i:], "sqrt"):
			tokens = append(tokens, token{kind: tokSqrt, pos: i})
			i += len("sqrt")
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, fmt.Errorf("tokenize: %q at position %d: %w", string(r), i, ErrIllegalChar)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(s)})

	return tokens, nil
}
