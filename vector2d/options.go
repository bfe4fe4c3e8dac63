// SPDX-License-Identifier: MIT

// Package vector2d: functional configuration for polar construction.
// Mirrors the package-wide convention: Default* constants as single source
// of truth, WithX setters, gatherOptions resolver.
package vector2d

// Unit names the angle unit of user-supplied directions.
type Unit int

const (
	// Radians is the default input unit; no conversion applied.
	Radians Unit = iota

	// Degrees converts user-supplied directions with deg→rad on ingestion.
	Degrees
)

// DefaultUnit is the angle unit assumed when no option is given.
const DefaultUnit = Radians

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	unit Unit // DefaultUnit
}

// WithDegrees declares that direction inputs are given in degrees.
// Complexity: O(1).
func WithDegrees() Option {
	return func(o *Options) { o.unit = Degrees }
}

// WithRadians declares that direction inputs are given in radians (default).
// Complexity: O(1).
func WithRadians() Option {
	return func(o *Options) { o.unit = Radians }
}

// gatherOptions applies setters on top of defaults, last-writer-wins.
// Complexity: O(k).
func gatherOptions(user ...Option) Options {
	o := Options{unit: DefaultUnit}
	for _, set := range user {
		set(&o)
	}

	return o
}
