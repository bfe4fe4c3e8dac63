// SPDX-License-Identifier: MIT
// Package: coordinate
//
// Purpose:
//   - Geodesic operations over (lat, lon) rows: distance, bearing, shift.
//   - Distance/bearing use a local equirectangular east/north decomposition
//     (one arc minute of latitude = one nautical mile), which is cheap and
//     accurate at regional scale; Shifted is an exact spherical move.
//
// Determinism & Performance:
//   - Fixed ascending row order; 1↔N operands broadcast via stride-0 reads.
//   - Each op makes a single pass and allocates only its outputs.

package coordinate

import (
	"math"

	"github.com/katalvlaran/vec2d/array2d"
	"github.com/katalvlaran/vec2d/internal/units"
)

// metersPerRadian converts an angular delta in radians straight to meters
// along a meridian: rad→deg→arc minutes→nautical miles→meters.
const metersPerRadian = 180 / math.Pi * units.MinutesPerDegree * units.NmToMeters

// deltaEastNorth computes the local tangent-plane decomposition of the
// displacement from c to other: meters east and meters north per row.
// Row counts must match or broadcast (1↔N); otherwise array2d.ErrRowMismatch.
// Complexity: O(n) time, two O(n) result slices.
func (c Coordinate) deltaEastNorth(other Coordinate) (dEast, dNorth []float64, err error) {
	rc, ro := c.Rows(), other.Rows()
	n := rc
	switch {
	case rc == ro:
	case rc == 1:
		n = ro
	case ro == 1:
	default:
		return nil, nil, array2d.ErrRowMismatch
	}

	craw, oraw := c.Raw(), other.Raw()
	sc, so := 0, 0
	if rc == n {
		sc = array2d.Cols
	}
	if ro == n {
		so = array2d.Cols
	}

	dEast = make([]float64, n)
	dNorth = make([]float64, n)
	for i, jc, jo := 0, 0, 0; i < n; i, jc, jo = i+1, jc+sc, jo+so {
		lat1, lon1 := craw[jc], craw[jc+1]
		lat2, lon2 := oraw[jo], oraw[jo+1]
		dNorth[i] = (lat2 - lat1) * metersPerRadian
		dEast[i] = (lon2 - lon1) * metersPerRadian * math.Cos((lat1+lat2)/2)
	}

	return dEast, dNorth, nil
}

// GeoDist returns the approximate geographic distances from c to other,
// in meters, one value per (broadcast) row pair.
// Complexity: O(n).
func (c Coordinate) GeoDist(other Coordinate) ([]float64, error) {
	dE, dN, err := c.deltaEastNorth(other)
	if err != nil {
		return nil, err
	}
	for i := range dE {
		dE[i] = math.Sqrt(dE[i]*dE[i] + dN[i]*dN[i])
	}

	return dE, nil
}

// GeoDistSquared returns the squared distances in meters², skipping the
// square root for pure comparisons (geo-fencing, nearest-of).
// Complexity: O(n).
func (c Coordinate) GeoDistSquared(other Coordinate) ([]float64, error) {
	dE, dN, err := c.deltaEastNorth(other)
	if err != nil {
		return nil, err
	}
	for i := range dE {
		dE[i] = dE[i]*dE[i] + dN[i]*dN[i]
	}

	return dE, nil
}

// Bearing returns the per-row initial heading from c to other in radians,
// normalized into [0, 2π): 0 is north, π/2 is east.
// Complexity: O(n).
func (c Coordinate) Bearing(other Coordinate) ([]float64, error) {
	dE, dN, err := c.deltaEastNorth(other)
	if err != nil {
		return nil, err
	}
	for i := range dE {
		dE[i] = units.NormalizeAngle(math.Atan2(dE[i], dN[i]))
	}

	return dE, nil
}

// GeoDistAndBearing returns distances (meters) and bearings (radians) in a
// single east/north pass — use it when a caller needs both, e.g. to chase a
// moving target.
// Complexity: O(n).
func (c Coordinate) GeoDistAndBearing(other Coordinate) (dist, bearing []float64, err error) {
	dE, dN, err := c.deltaEastNorth(other)
	if err != nil {
		return nil, nil, err
	}
	dist = make([]float64, len(dE))
	for i := range dE {
		dist[i] = math.Sqrt(dE[i]*dE[i] + dN[i]*dN[i])
		dE[i] = units.NormalizeAngle(math.Atan2(dE[i], dN[i]))
	}

	return dist, dE, nil
}

// Shifted moves each coordinate by the given distance (meters) and bearing
// (radians, 0 = north) along a great circle on a sphere of radius
// units.EarthRadiusMeters. The receiver rows, geoDist and bearing all
// broadcast 1↔N against each other.
//
// Returns ErrEmptyInput on empty slices and ErrSizeMismatch on lengths that
// neither match nor broadcast.
//
// Complexity: O(n) time and space.
func (c Coordinate) Shifted(geoDist, bearing []float64) (Coordinate, error) {
	if len(geoDist) == 0 || len(bearing) == 0 {
		return Coordinate{}, ErrEmptyInput
	}
	if c.Rows() == 0 {
		return c, nil // nothing to shift
	}

	n := c.Rows()
	if len(geoDist) > n {
		n = len(geoDist)
	}
	if len(bearing) > n {
		n = len(bearing)
	}
	if (c.Rows() != n && c.Rows() != 1) ||
		(len(geoDist) != n && len(geoDist) != 1) ||
		(len(bearing) != n && len(bearing) != 1) {
		return Coordinate{}, ErrSizeMismatch
	}

	craw := c.Raw()
	sc, sd, sb := 0, 0, 0
	if c.Rows() == n {
		sc = array2d.Cols
	}
	if len(geoDist) == n {
		sd = 1
	}
	if len(bearing) == n {
		sb = 1
	}

	data := make([]float64, n*array2d.Cols)
	for i, jc, jd, jb := 0, 0, 0, 0; i < n; i, jc, jd, jb = i+1, jc+sc, jd+sd, jb+sb {
		lat, lon := craw[jc], craw[jc+1]
		brg := bearing[jb]

		angular := geoDist[jd] / units.EarthRadiusMeters
		sinAng, cosAng := math.Sin(angular), math.Cos(angular)
		sinLat, cosLat := math.Sin(lat), math.Cos(lat)

		sinShiftedLat := sinLat*cosAng + cosLat*sinAng*math.Cos(brg)
		data[array2d.Cols*i] = math.Asin(sinShiftedLat)
		data[array2d.Cols*i+1] = lon + math.Atan2(
			math.Sin(brg)*sinAng*cosLat,
			cosAng-sinLat*sinShiftedLat,
		)
	}
	out, _ := FromBuffer(data)

	return out, nil
}

// CircleAround samples count points on the circle of the given radius
// (meters) around a single coordinate, sweeping bearings from 0 (north)
// clockwise in equal steps of 2π/count.
//
// Returns ErrNotSingle when the receiver has more or fewer than one row and
// ErrBadCount when count ≤ 0.
//
// Complexity: O(count) time and space.
func (c Coordinate) CircleAround(radius float64, count int) (Coordinate, error) {
	if c.Rows() != 1 {
		return Coordinate{}, ErrNotSingle
	}
	if count <= 0 {
		return Coordinate{}, ErrBadCount
	}

	bearings := make([]float64, count)
	step := units.TwoPi / float64(count)
	for i := range bearings {
		bearings[i] = float64(i) * step
	}

	return c.Shifted([]float64{radius}, bearings)
}
