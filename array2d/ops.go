// SPDX-License-Identifier: MIT

// Package array2d: public row-wise and elementwise operations.
// Row-wise reductions go through the strided kernels in kernels.go; equal
// shape elementwise arithmetic runs through gonum/floats over the flat
// backing storage, with a broadcast fallback for 1-row operands.
package array2d

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// alignRows resolves the output row count of a pairwise operation.
// Operands are compatible when row counts match or either side has exactly
// one row (broadcast). Anything else is ErrRowMismatch.
// Complexity: O(1).
func alignRows(a, b Array) (int, error) {
	ra, rb := a.Rows(), b.Rows()
	switch {
	case ra == rb:
		return ra, nil
	case ra == 1:
		return rb, nil
	case rb == 1:
		return ra, nil
	}

	return 0, ErrRowMismatch
}

// stride returns the flat-index step for an operand with the given row
// count inside an n-row loop: Cols when the operand advances row by row,
// 0 when its single row is broadcast.
func stride(rows, n int) int {
	if rows == n {
		return Cols
	}

	return 0
}

// Norm returns the per-row Euclidean length sqrt(x_i² + y_i²) as a fresh
// 1-D slice of length N. This is the strided fast path; see kernels.go.
//
// Complexity: O(n) time, O(n) result space.
func (a Array) Norm() []float64 {
	out := make([]float64, a.Rows())
	rowNorms(out, a.data)

	return out
}

// NormSquared returns the per-row squared length x_i² + y_i², avoiding the
// square root when callers only compare magnitudes.
//
// Complexity: O(n) time, O(n) result space.
func (a Array) NormSquared() []float64 {
	out := make([]float64, a.Rows())
	rowNormsSquared(out, a.data)

	return out
}

// Normalized returns a fresh Array whose rows have unit length. Zero-norm
// rows pass through unchanged rather than dividing by zero.
//
// Complexity: O(n) time and space.
func (a Array) Normalized() Array {
	out := a.Clone()
	for i := 0; i < out.Rows(); i++ {
		x, y := out.data[Cols*i], out.data[Cols*i+1]
		n := x*x + y*y
		if n == 0 {
			continue // leave the zero row as-is
		}
		inv := 1 / math.Sqrt(n)
		out.data[Cols*i] = x * inv
		out.data[Cols*i+1] = y * inv
	}

	return out
}

// Add returns a fresh Array with per-row sums a_i + b_i.
// Row counts must match or broadcast (1↔N); otherwise ErrRowMismatch.
//
// Complexity: O(n) time and space.
func (a Array) Add(b Array) (Array, error) {
	n, err := alignRows(a, b)
	if err != nil {
		return Array{}, err
	}
	out := Array{data: make([]float64, n*Cols)}

	// Equal-shape fast path: one flat pass via gonum.
	if a.Rows() == b.Rows() {
		floats.AddTo(out.data, a.data, b.data)
		return out, nil
	}

	// Broadcast fallback: one operand advances, the other repeats its row.
	sa, sb := stride(a.Rows(), n), stride(b.Rows(), n)
	for i, ja, jb := 0, 0, 0; i < n; i, ja, jb = i+1, ja+sa, jb+sb {
		out.data[Cols*i] = a.data[ja] + b.data[jb]
		out.data[Cols*i+1] = a.data[ja+1] + b.data[jb+1]
	}

	return out, nil
}

// Sub returns a fresh Array with per-row differences a_i - b_i.
// Row counts must match or broadcast (1↔N); otherwise ErrRowMismatch.
//
// Complexity: O(n) time and space.
func (a Array) Sub(b Array) (Array, error) {
	n, err := alignRows(a, b)
	if err != nil {
		return Array{}, err
	}
	out := Array{data: make([]float64, n*Cols)}

	if a.Rows() == b.Rows() {
		floats.SubTo(out.data, a.data, b.data)
		return out, nil
	}

	sa, sb := stride(a.Rows(), n), stride(b.Rows(), n)
	for i, ja, jb := 0, 0, 0; i < n; i, ja, jb = i+1, ja+sa, jb+sb {
		out.data[Cols*i] = a.data[ja] - b.data[jb]
		out.data[Cols*i+1] = a.data[ja+1] - b.data[jb+1]
	}

	return out, nil
}

// Scale returns a fresh Array with every element multiplied by c.
// Complexity: O(n) time and space.
func (a Array) Scale(c float64) Array {
	out := Array{data: make([]float64, len(a.data))}
	floats.ScaleTo(out.data, c, a.data)

	return out
}

// Dot returns the per-row scalar products a_i·b_i as a 1-D slice.
// Row counts must match or broadcast (1↔N); otherwise ErrRowMismatch.
//
// Complexity: O(n) time, O(n) result space.
func (a Array) Dot(b Array) ([]float64, error) {
	n, err := alignRows(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)

	// Equal-shape fast path: strided kernel over both flat buffers.
	if a.Rows() == b.Rows() {
		rowDots(out, a.data, b.data)
		return out, nil
	}

	sa, sb := stride(a.Rows(), n), stride(b.Rows(), n)
	for i, ja, jb := 0, 0, 0; i < n; i, ja, jb = i+1, ja+sa, jb+sb {
		out[i] = a.data[ja]*b.data[jb] + a.data[ja+1]*b.data[jb+1]
	}

	return out, nil
}

// Equal reports exact element-wise equality (same rows, same values).
// Complexity: O(n).
func (a Array) Equal(b Array) bool {
	return floats.Equal(a.data, b.data)
}

// EqualApprox reports element-wise equality within an absolute tolerance
// (DefaultEpsilon unless overridden via WithEpsilon).
// Complexity: O(n).
func (a Array) EqualApprox(b Array, opts ...Option) bool {
	o := gatherOptions(opts...)

	return len(a.data) == len(b.data) && floats.EqualApprox(a.data, b.data, o.eps)
}
