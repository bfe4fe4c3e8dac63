// SPDX-License-Identifier: MIT

// Package coordinate: functional configuration for construction.
// Same convention as the sibling packages: Default* constants, WithX
// setters, gatherOptions resolver.
package coordinate

// Unit names the angle unit of user-supplied latitudes and longitudes.
type Unit int

const (
	// Radians is the default input unit; no conversion applied.
	Radians Unit = iota

	// Degrees converts user-supplied lat/lon with deg→rad on ingestion.
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

// WithDegrees declares that lat/lon inputs are given in degrees.
// Complexity: O(1).
func WithDegrees() Option {
	return func(o *Options) { o.unit = Degrees }
}

// WithRadians declares that lat/lon inputs are given in radians (default).
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
