// SPDX-License-Identifier: MIT

// Package array2d: functional configuration for construction and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package array2d

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the non-negative tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in the
	// copying constructors (New, FromRows, FromColumns). Wrapping views are
	// never scanned regardless of this flag.
	DefaultValidateNaNInf = true
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid = "array2d: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance used by EqualApprox.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation in copying
// constructors (the default). NaN and ±Inf inputs are rejected with ErrNaNInf.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation in copying constructors.
// Use when ingesting data with known non-finite placeholders that a later
// stage sanitizes.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of documented defaults,
// last-writer-wins. The canonical internal entry for every ...Option API.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
