// Package point2d core type: construction and point-space operations.
package point2d

import (
	"github.com/katalvlaran/vec2d/array2d"
	"github.com/katalvlaran/vec2d/vector2d"
)

// Point is an array2d.Array whose rows are Cartesian coordinate pairs.
// The refinement is semantic only; storage and aliasing behavior are
// inherited unchanged from array2d.
type Point struct {
	array2d.Array
}

// Wrap refines an existing Array into a Point without copying.
// Complexity: O(1).
func Wrap(a array2d.Array) Point {
	return Point{Array: a}
}

// FromBuffer views a flat row-major buffer as a Point without copying.
// Returns array2d.ErrBadShape when len(buf) is odd.
// Complexity: O(1).
func FromBuffer(buf []float64) (Point, error) {
	a, err := array2d.Wrap(buf)
	if err != nil {
		return Point{}, err
	}

	return Point{Array: a}, nil
}

// FromRows copies row pairs into a fresh Point; see array2d.FromRows for
// the numeric policy.
// Complexity: O(n).
func FromRows(rows [][2]float64, opts ...array2d.Option) (Point, error) {
	a, err := array2d.FromRows(rows, opts...)
	if err != nil {
		return Point{}, err
	}

	return Point{Array: a}, nil
}

// Displacement returns the per-row displacement vectors p_i − other_i.
// Subtracting two locations is exactly what turns points into vectors, so
// the result is a vector2d.Vector.
// Row counts must match or broadcast (1↔N); otherwise array2d.ErrRowMismatch.
//
// Complexity: O(n) time and space.
func (p Point) Displacement(other Point) (vector2d.Vector, error) {
	diff, err := p.Array.Sub(other.Array)
	if err != nil {
		return vector2d.Vector{}, err
	}

	return vector2d.Wrap(diff), nil
}

// EuclidDist returns the per-row straight-line distances |p_i − other_i|.
// Row counts must match or broadcast (1↔N); otherwise array2d.ErrRowMismatch.
// Complexity: O(n).
func (p Point) EuclidDist(other Point) ([]float64, error) {
	d, err := p.Displacement(other)
	if err != nil {
		return nil, err
	}

	return d.Norm(), nil
}

// EuclidDistSquared returns the per-row squared distances, skipping the
// square root for pure comparisons (nearest-of, radius checks).
// Complexity: O(n).
func (p Point) EuclidDistSquared(other Point) ([]float64, error) {
	d, err := p.Displacement(other)
	if err != nil {
		return nil, err
	}

	return d.NormSquared(), nil
}

// Translate moves every point by the corresponding displacement vector,
// yielding new locations. Row counts must match or broadcast (1↔N).
// Complexity: O(n) time and space.
func (p Point) Translate(v vector2d.Vector) (Point, error) {
	moved, err := p.Array.Add(v.Array)
	if err != nil {
		return Point{}, err
	}

	return Point{Array: moved}, nil
}
