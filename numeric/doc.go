// Package numeric defines the scalar Number value and the Mode policy that
// governs every comparison, conversion, and rounding decision in algex.
//
// The numeric package provides:
//
//   - Number — an immutable scalar carrying either an exact rational
//     (math/big.Rat, always reduced, sign on the numerator) or an
//     approximate float64.
//   - Mode — an immutable exact/approximate policy value with decimal-place
//     rounding and an equality tolerance, constructed once and passed
//     explicitly into every call that needs it.
//   - Normalize — conversion of supported literals (integers, floats,
//     decimal strings, "a/b" strings, rationals) into the representation the
//     active mode requires.
//   - Equal / IsZero / IsOne — mode-aware predicates: structural equality of
//     reduced rationals under Exact, tolerance-bounded comparison under
//     Approx.
//
// Mode is a plain value, never package state: concurrent operations with
// different policies are safe by construction.
package numeric
