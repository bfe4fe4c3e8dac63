// Package array2d core type: constructors, accessors and aliasing sub-views.
// Array is a thin header over a flat row-major slice for performance and
// cache friendliness; every row is the adjacent pair (data[2i], data[2i+1]).
package array2d

import (
	"fmt"
	"strings"
)

// Cols is the fixed trailing dimension of every Array. The whole package
// exists to enforce it.
const Cols = 2

// Array is a typed view over a flat row-major []float64 holding N rows of
// two columns. The zero value is a valid empty (0×2) array.
//
// An Array built with Wrap aliases the caller's buffer: writes through
// either are visible in both. Copying constructors (New, FromRows,
// FromColumns, Zeros, Concat) own their storage.
type Array struct {
	data []float64 // flat backing storage, length == Cols*rows
}

// Wrap reinterprets buf as an N×2 Array without copying.
// Returns ErrBadShape when len(buf) is not a multiple of 2.
//
// Aliasing contract: the returned Array shares buf's memory. Mutations via
// Set are visible in buf and mutations of buf are visible via At. Wrap never
// scans the buffer, so the numeric policy options do not apply here.
//
// Complexity: O(1) time and space.
func Wrap(buf []float64) (Array, error) {
	if len(buf)%Cols != 0 {
		return Array{}, ErrBadShape
	}

	return Array{data: buf}, nil
}

// New copies values into a fresh Array.
// Returns ErrBadShape on odd len(values), and ErrNaNInf when a non-finite
// value is present under the default numeric policy (see WithNoValidateNaNInf).
//
// Complexity: O(n) time and space.
func New(values []float64, opts ...Option) (Array, error) {
	if len(values)%Cols != 0 {
		return Array{}, ErrBadShape
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return Array{}, err
		}
	}
	data := make([]float64, len(values))
	copy(data, values)

	return Array{data: data}, nil
}

// FromRows copies row pairs into a fresh Array. The shape is correct by
// construction, so only the numeric policy can reject input.
//
// Complexity: O(n) time and space.
func FromRows(rows [][2]float64, opts ...Option) (Array, error) {
	data := make([]float64, 0, len(rows)*Cols)
	for _, r := range rows {
		data = append(data, r[0], r[1])
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(data); err != nil {
			return Array{}, err
		}
	}

	return Array{data: data}, nil
}

// FromColumns zips two equal-length column slices into a fresh Array, where
// x fills column 0 and y fills column 1.
// Returns ErrRowMismatch when len(x) != len(y), and ErrNaNInf per the
// numeric policy.
//
// Complexity: O(n) time and space.
func FromColumns(x, y []float64, opts ...Option) (Array, error) {
	if len(x) != len(y) {
		return Array{}, ErrRowMismatch
	}
	data := make([]float64, 0, len(x)*Cols)
	for i := range x {
		data = append(data, x[i], y[i])
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(data); err != nil {
			return Array{}, err
		}
	}

	return Array{data: data}, nil
}

// Zeros allocates an n×2 Array initialized to zeros.
// Returns ErrBadShape when n is negative; n == 0 is a valid empty array.
//
// Complexity: O(n) time and space.
func Zeros(n int) (Array, error) {
	if n < 0 {
		return Array{}, ErrBadShape
	}

	return Array{data: make([]float64, n*Cols)}, nil
}

// Concat stacks the given arrays vertically into a fresh (copying) Array:
// shapes (N1×2), (N2×2), ... yield ((N1+N2+...)×2). Zero inputs yield an
// empty array.
//
// Complexity: O(total rows) time and space.
func Concat(arrays ...Array) Array {
	total := 0
	for _, a := range arrays {
		total += len(a.data)
	}
	data := make([]float64, 0, total)
	for _, a := range arrays {
		data = append(data, a.data...)
	}

	return Array{data: data}
}

// Rows returns the number of rows N.
// Complexity: O(1).
func (a Array) Rows() int {
	return len(a.data) / Cols
}

// At returns the pair stored at row i.
// Returns ErrOutOfRange on a bad index; never panics.
// Complexity: O(1).
func (a Array) At(i int) (x, y float64, err error) {
	if err = validateIndex(i, a.Rows()); err != nil {
		return 0, 0, fmt.Errorf("At(%d): %w", i, err)
	}

	return a.data[Cols*i], a.data[Cols*i+1], nil
}

// Set assigns the pair (x, y) at row i, writing through to the backing
// buffer (and therefore to every aliasing view).
// Returns ErrOutOfRange on a bad index.
// Complexity: O(1).
func (a Array) Set(i int, x, y float64) error {
	if err := validateIndex(i, a.Rows()); err != nil {
		return fmt.Errorf("Set(%d): %w", i, err)
	}
	a.data[Cols*i] = x
	a.data[Cols*i+1] = y

	return nil
}

// X1 returns a fresh slice holding column 0 (the first axis values).
// The result is a materialized copy — the interleaved layout has no
// contiguous column to alias. Use At/Raw for aliasing access.
// Complexity: O(n) time and space.
func (a Array) X1() []float64 {
	out := make([]float64, a.Rows())
	for i := range out {
		out[i] = a.data[Cols*i]
	}

	return out
}

// X2 returns a fresh slice holding column 1 (the second axis values).
// See X1 for the copy semantics.
// Complexity: O(n) time and space.
func (a Array) X2() []float64 {
	out := make([]float64, a.Rows())
	for i := range out {
		out[i] = a.data[Cols*i+1]
	}

	return out
}

// Row returns a 1×2 aliasing sub-view of row i: writes through the returned
// Array are visible in a (and in the original buffer for wrapped arrays).
// Returns ErrOutOfRange on a bad index.
// Complexity: O(1).
func (a Array) Row(i int) (Array, error) {
	if err := validateIndex(i, a.Rows()); err != nil {
		return Array{}, fmt.Errorf("Row(%d): %w", i, err)
	}

	return Array{data: a.data[Cols*i : Cols*i+Cols]}, nil
}

// Split breaks an N×2 Array into N aliasing 1×2 sub-views.
// Complexity: O(n) time (slice headers only), shared storage.
func (a Array) Split() []Array {
	out := make([]Array, a.Rows())
	for i := range out {
		out[i] = Array{data: a.data[Cols*i : Cols*i+Cols]}
	}

	return out
}

// Raw exposes the flat row-major backing slice itself. Mutating the result
// mutates the Array — this is the aliasing escape hatch, mirroring Wrap.
// Complexity: O(1).
func (a Array) Raw() []float64 {
	return a.data
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n) time and space.
func (a Array) Clone() Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)

	return Array{data: data}
}

// String implements fmt.Stringer for debugging: one "[x, y]" per row.
// Complexity: O(n).
func (a Array) String() string {
	var sb strings.Builder
	for i := 0; i < a.Rows(); i++ {
		fmt.Fprintf(&sb, "[%g, %g]\n", a.data[Cols*i], a.data[Cols*i+1])
	}

	return sb.String()
}
