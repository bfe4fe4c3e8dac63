// Package coordinate core type: construction and accessors.
package coordinate

import (
	"github.com/katalvlaran/vec2d/array2d"
	"github.com/katalvlaran/vec2d/internal/units"
	"github.com/katalvlaran/vec2d/point2d"
)

// Coordinate is a point2d.Point whose rows are geographic (lat, lon) pairs
// in radians: latitude in column 0, longitude in column 1. Structurally it
// is the same flat N×2 view as everywhere else in the module; only the
// operations differ (geodesic instead of Cartesian).
type Coordinate struct {
	point2d.Point
}

// Wrap refines an existing Array into a Coordinate without copying.
// The caller asserts the rows already hold radians.
// Complexity: O(1).
func Wrap(a array2d.Array) Coordinate {
	return Coordinate{Point: point2d.Wrap(a)}
}

// FromBuffer views a flat row-major (lat, lon, lat, lon, ...) buffer as a
// Coordinate without copying. Returns array2d.ErrBadShape on odd length.
// Complexity: O(1).
func FromBuffer(buf []float64) (Coordinate, error) {
	p, err := point2d.FromBuffer(buf)
	if err != nil {
		return Coordinate{}, err
	}

	return Coordinate{Point: p}, nil
}

// New builds coordinates from latitude and longitude slices, which
// broadcast 1↔N against each other. Inputs are radians unless WithDegrees
// is given; input slices are never mutated.
//
// Returns ErrEmptyInput when either slice is empty and ErrSizeMismatch when
// lengths neither match nor broadcast.
//
// Complexity: O(n) time and space.
func New(lat, lon []float64, opts ...Option) (Coordinate, error) {
	if len(lat) == 0 || len(lon) == 0 {
		return Coordinate{}, ErrEmptyInput
	}
	n := len(lat)
	if len(lon) > n {
		n = len(lon)
	}
	if (len(lat) != n && len(lat) != 1) || (len(lon) != n && len(lon) != 1) {
		return Coordinate{}, ErrSizeMismatch
	}
	o := gatherOptions(opts...)

	// Broadcast strides: a length-1 input repeats its single value.
	sla, slo := 1, 1
	if len(lat) == 1 {
		sla = 0
	}
	if len(lon) == 1 {
		slo = 0
	}

	data := make([]float64, n*array2d.Cols)
	for i, ja, jo := 0, 0, 0; i < n; i, ja, jo = i+1, ja+sla, jo+slo {
		la, lo := lat[ja], lon[jo]
		if o.unit == Degrees {
			la, lo = units.Deg2Rad(la), units.Deg2Rad(lo)
		}
		data[array2d.Cols*i] = la
		data[array2d.Cols*i+1] = lo
	}

	// Shape is even by construction, so FromBuffer cannot fail.
	c, _ := FromBuffer(data)

	return c, nil
}

// Lat returns a fresh slice of the latitude values (column 0), in radians.
// Complexity: O(n).
func (c Coordinate) Lat() []float64 {
	return c.X1()
}

// Lon returns a fresh slice of the longitude values (column 1), in radians.
// Complexity: O(n).
func (c Coordinate) Lon() []float64 {
	return c.X2()
}
