// Package algex is a small, exactness-first algebra core: it turns
// user-supplied text into numbers and matrices, computes with them under an
// explicit numeric policy, and renders the results back as minimal human
// strings.
//
// 🚀 What is algex?
//
//	A safe, deterministic library that brings together:
//		• A restricted expression grammar: fractions, right-associative powers,
//		  unary minus, sqrt, parentheses — never arbitrary code execution
//		• Dual numeric modes: exact rational arithmetic (math/big.Rat) or
//		  tolerance-bounded floating point, chosen per call
//		• Canonical formatting: fraction, decimal, or automatic finite-decimal
//		  detection (denominators with only 2 and 5 as prime factors)
//		• Matrix primitives: row operations, augmentation, pivot search
//		• Algebra operations: Gaussian-elimination determinant, multiply, sum —
//		  each with an optional pedagogical step trace
//
// ✨ Why choose algex?
//
//   - Exact by default – rational arithmetic avoids float drift entirely
//   - Mode-polymorphic – every comparison and rendering decision respects the
//     active policy, passed as an immutable value (no hidden globals)
//   - Fail-fast – every malformed input is rejected with a specific sentinel
//     error before any computation starts
//
// Under the hood, everything is organized under five subpackages:
//
//	numeric/ — Number values and the exact/approximate Mode policy
//	expr/    — tokenizer, recursive-descent parser, evaluator & literal decoder
//	format/  — fraction/decimal/auto rendering of scalars and grids
//	matrix/  — rectangular Number matrices and non-mutating row operations
//	algebra/ — determinant, multiply, sum over raw text, with step recording
//
// A cobra-based CLI lives in cmd/algex; an optional YAML settings file is
// handled by the config package.
package algex
