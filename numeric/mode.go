// SPDX-License-Identifier: MIT

// Package numeric: the Mode policy value and its functional configuration.
// This file defines:
//   - Kind (Exact | Approx) with string parsing for config/CLI surfaces,
//   - documented defaults (constants),
//   - Option setters applied by NewMode with strict validation,
//   - Mode — an immutable value consumed by Normalize/Equal/IsZero/IsOne.
//
// Design goals:
//   - Deterministic behavior: no global state; a Mode is built once and
//     passed into every call that needs it.
//   - Safe by construction: NewMode rejects nonsensical values with
//     ErrInvalidConfig (mode parameters come from user input, so validation
//     returns errors rather than panicking).

package numeric

import (
	"fmt"
	"math"
)

// Kind selects between exact rational and approximate floating arithmetic.
type Kind uint8

const (
	// Exact preserves rational values without rounding.
	Exact Kind = iota

	// Approx uses rounded floating values plus a tolerance for equality.
	Approx
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Approx:
		return "approximate"
	default:
		return "unknown"
	}
}

// ParseKind maps the external mode names onto a Kind.
// Accepted values: "exact", "approximate".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "exact":
		return Exact, nil
	case "approximate":
		return Approx, nil
	default:
		return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrInvalidConfig)
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDecimalPlaces is the rounding width used in Approx mode and the
	// default clip width for decimal rendering.
	DefaultDecimalPlaces = 6

	// DefaultTolerance is the non-negative equality tolerance used in Approx
	// mode.
	DefaultTolerance = 1e-9
)

// Mode is the immutable numeric policy: kind, rounding width, and equality
// tolerance. The zero value is not meaningful; build one with NewMode or
// take Default().
type Mode struct {
	kind   Kind
	places int
	tol    float64
}

// Option mutates a Mode under construction. Applied by NewMode in order;
// last-writer-wins.
type Option func(*Mode)

// WithDecimalPlaces sets the rounding width used in Approx mode.
// Validated by NewMode; negative values yield ErrInvalidConfig.
func WithDecimalPlaces(n int) Option {
	return func(m *Mode) { m.places = n }
}

// WithTolerance sets the equality tolerance used in Approx mode.
// Validated by NewMode; negative or non-finite values yield ErrInvalidConfig.
func WithTolerance(t float64) Option {
	return func(m *Mode) { m.tol = t }
}

// NewMode builds a Mode from a kind and optional setters.
// Stage 1 (Prepare): start from documented defaults, apply setters in order.
// Stage 2 (Validate): kind must be Exact or Approx; places ≥ 0; tolerance
// finite and ≥ 0.
// Stage 3 (Finalize): return the immutable value or ErrInvalidConfig.
// Complexity: O(k) for k options.
func NewMode(kind Kind, opts ...Option) (Mode, error) {
	m := Mode{kind: kind, places: DefaultDecimalPlaces, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&m)
	}

	if kind != Exact && kind != Approx {
		return Mode{}, fmt.Errorf("NewMode: kind %d: %w", kind, ErrInvalidConfig)
	}
	if m.places < 0 {
		return Mode{}, fmt.Errorf("NewMode: decimal places %d: %w", m.places, ErrInvalidConfig)
	}
	if math.IsNaN(m.tol) || math.IsInf(m.tol, 0) || m.tol < 0 {
		return Mode{}, fmt.Errorf("NewMode: tolerance %v: %w", m.tol, ErrInvalidConfig)
	}

	return m, nil
}

// Default returns the Exact mode with default rounding and tolerance.
func Default() Mode {
	return Mode{kind: Exact, places: DefaultDecimalPlaces, tol: DefaultTolerance}
}

// Kind reports the active kind.
func (m Mode) Kind() Kind { return m.kind }

// DecimalPlaces reports the rounding width.
func (m Mode) DecimalPlaces() int { return m.places }

// Tolerance reports the equality tolerance.
func (m Mode) Tolerance() float64 { return m.tol }
