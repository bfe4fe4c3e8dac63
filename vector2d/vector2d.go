// Package vector2d core type: construction and vector-space operations.
package vector2d

import (
	"math"

	"github.com/katalvlaran/vec2d/array2d"
	"github.com/katalvlaran/vec2d/internal/units"
)

// Vector is an array2d.Array whose rows are 2D physical vectors.
// The refinement is purely semantic: embedding keeps the view zero-copy,
// so a Vector aliases whatever buffer its Array aliases.
type Vector struct {
	array2d.Array
}

// Wrap refines an existing Array into a Vector without copying.
// Complexity: O(1).
func Wrap(a array2d.Array) Vector {
	return Vector{Array: a}
}

// FromBuffer views a flat row-major buffer as a Vector without copying.
// Returns array2d.ErrBadShape when len(buf) is odd.
// Complexity: O(1).
func FromBuffer(buf []float64) (Vector, error) {
	a, err := array2d.Wrap(buf)
	if err != nil {
		return Vector{}, err
	}

	return Vector{Array: a}, nil
}

// FromPolar builds vectors from magnitudes and directions: row i is
// (m·cos θ, m·sin θ). The two inputs broadcast 1↔N; directions are radians
// unless WithDegrees is given. Input slices are never mutated.
//
// Returns ErrEmptyInput when either slice is empty and ErrSizeMismatch when
// lengths neither match nor broadcast.
//
// Complexity: O(n) time and space.
func FromPolar(magnitude, direction []float64, opts ...Option) (Vector, error) {
	if len(magnitude) == 0 || len(direction) == 0 {
		return Vector{}, ErrEmptyInput
	}
	n := len(magnitude)
	if len(direction) > n {
		n = len(direction)
	}
	if (len(magnitude) != n && len(magnitude) != 1) ||
		(len(direction) != n && len(direction) != 1) {
		return Vector{}, ErrSizeMismatch
	}
	o := gatherOptions(opts...)

	// Broadcast strides: a length-1 input repeats its single value.
	sm, sd := 1, 1
	if len(magnitude) == 1 {
		sm = 0
	}
	if len(direction) == 1 {
		sd = 0
	}

	data := make([]float64, n*array2d.Cols)
	for i, jm, jd := 0, 0, 0; i < n; i, jm, jd = i+1, jm+sm, jd+sd {
		m, d := magnitude[jm], direction[jd]
		if o.unit == Degrees {
			d = units.Deg2Rad(d)
		}
		data[array2d.Cols*i] = m * math.Cos(d)
		data[array2d.Cols*i+1] = m * math.Sin(d)
	}

	// Shape is even by construction, so Wrap cannot fail.
	a, _ := array2d.Wrap(data)

	return Vector{Array: a}, nil
}

// Direction returns the per-row angle atan2(y, x), normalized into [0, 2π).
// Complexity: O(n) time, O(n) result space.
func (v Vector) Direction() []float64 {
	raw := v.Raw()
	out := make([]float64, v.Rows())
	for i := range out {
		out[i] = units.NormalizeAngle(math.Atan2(raw[array2d.Cols*i+1], raw[array2d.Cols*i]))
	}

	return out
}

// Dot returns the per-row scalar products v_i·other_i.
// Row counts must match or broadcast (1↔N); otherwise array2d.ErrRowMismatch.
// Complexity: O(n).
func (v Vector) Dot(other Vector) ([]float64, error) {
	return v.Array.Dot(other.Array)
}

// ProjectOnto returns the per-row projection of v onto `onto`:
// (v_i·û_i)·û_i where û is the unit vector of `onto`. Zero rows in `onto`
// have no direction and project everything to the zero vector.
// Row counts must match or broadcast (1↔N); otherwise array2d.ErrRowMismatch.
//
// Complexity: O(n) time and space.
func (v Vector) ProjectOnto(onto Vector) (Vector, error) {
	unit := onto.Normalized()
	mag, err := v.Array.Dot(unit.Array)
	if err != nil {
		return Vector{}, err
	}

	n := len(mag)
	uraw := unit.Raw()
	su := 0 // broadcast stride over the unit rows
	if unit.Rows() == n {
		su = array2d.Cols
	}
	data := make([]float64, n*array2d.Cols)
	for i, ju := 0, 0; i < n; i, ju = i+1, ju+su {
		data[array2d.Cols*i] = mag[i] * uraw[ju]
		data[array2d.Cols*i+1] = mag[i] * uraw[ju+1]
	}
	a, _ := array2d.Wrap(data)

	return Vector{Array: a}, nil
}

// Add returns the per-row sums as a Vector; see array2d.Array.Add for the
// broadcast and error contract.
func (v Vector) Add(other Vector) (Vector, error) {
	a, err := v.Array.Add(other.Array)

	return Vector{Array: a}, err
}

// Sub returns the per-row differences as a Vector; see array2d.Array.Sub.
func (v Vector) Sub(other Vector) (Vector, error) {
	a, err := v.Array.Sub(other.Array)

	return Vector{Array: a}, err
}

// Scale returns v with every component multiplied by c, as a Vector.
func (v Vector) Scale(c float64) Vector {
	return Vector{Array: v.Array.Scale(c)}
}

// Normalized returns the per-row unit vectors, as a Vector.
// Zero rows pass through unchanged; see array2d.Array.Normalized.
func (v Vector) Normalized() Vector {
	return Vector{Array: v.Array.Normalized()}
}
