// Package expr converts restricted arithmetic text into numeric values
// without executing arbitrary code.
//
// The expr package provides:
//
//   - A tokenizer accepting only digits, one decimal point per number, '-',
//     '/', '^', parentheses, and the keyword sqrt; anything else is rejected
//     with the offending character and position.
//   - A recursive-descent parser for the grammar
//
//     expr  := frac
//     frac  := power ('/' power)*
//     power := unary ('^' power)?        // right-associative
//     unary := '-' unary | primary
//     primary := NUMBER | 'sqrt' '(' expr ')' | '(' expr ')'
//
//     There is no binary '+' or '-': only unary negation. Division is
//     left-to-right; power is right-associative (2^3^2 = 2^(3^2)).
//   - An evaluator with strict typing rules: a literal with a decimal point
//     is a float, a bare integer is exact; division stays exact unless a
//     float is involved; an integer exponent keeps exactness; sqrt always
//     produces a float.
//   - A decoder for bracketed vector/matrix literals ("[a,b]" and
//     "[[..],[..]]") that splits on top-level commas only and enforces
//     rectangularity.
//
// Evaluation returns raw numbers (exact or float as the grammar dictates);
// applying the active numeric mode is the caller's job via
// numeric.Mode.Normalize.
package expr
