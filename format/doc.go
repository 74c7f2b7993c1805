// Package format renders Numbers as minimal human-readable strings.
//
// The format package provides:
//
//   - Fraction mode — integers render bare (no "/1"); every other exact
//     value renders as "num/den" in reduced form.
//   - Float mode — always a decimal string, clipped to at most the given
//     number of fractional digits with round-half-up, trailing zeros and a
//     trailing decimal point stripped.
//   - Auto mode — exact rationals whose reduced denominator has only 2 and
//     5 as prime factors have a finite decimal expansion, which is computed
//     exactly and rounded only if it exceeds the digit budget; other exact
//     values fall back to fraction form, floats to rounded decimal form.
//   - Grid — element-wise formatting of a matrix of Numbers into a
//     same-shaped grid of strings.
package format
