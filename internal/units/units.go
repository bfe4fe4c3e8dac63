// Package units centralizes the unit-conversion constants and angle helpers
// shared by the public vec2d packages. Keeping them here guarantees that
// vector2d and coordinate never drift apart on what a degree or a nautical
// mile means.
package units

import "math"

const (
	// NmToMeters converts nautical miles to meters (exact by definition).
	NmToMeters = 1852.0

	// EarthRadiusMeters is the equatorial Earth radius used by spherical
	// shift calculations.
	EarthRadiusMeters = 6_378_100.0

	// MinutesPerDegree is the number of arc minutes (nautical miles along
	// a meridian) in one degree.
	MinutesPerDegree = 60.0

	// TwoPi is the full circle in radians.
	TwoPi = 2 * math.Pi
)

// Deg2Rad converts a single angle from degrees to radians.
// Complexity: O(1).
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts a single angle from radians to degrees.
// Complexity: O(1).
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Deg2RadInPlace rewrites every element of s from degrees to radians.
// Complexity: O(n).
func Deg2RadInPlace(s []float64) {
	for i := range s {
		s[i] = Deg2Rad(s[i])
	}
}

// NormalizeAngle maps an angle in radians into the half-open range [0, 2π).
// Handles negative inputs; NaN passes through unchanged.
// Complexity: O(1).
func NormalizeAngle(rad float64) float64 {
	r := math.Mod(rad, TwoPi)
	if r < 0 {
		r += TwoPi
	}

	return r
}
