// SPDX-License-Identifier: MIT
// Package: array2d
//
// Purpose:
//   - Provide small, *private* row-wise reduction kernels over the flat
//     row-major layout (stride 2), to avoid duplicating tight loops across
//     the public ops.
//   - These replace a generic column/axis reduction: the interleaved layout
//     has no contiguous column, so generic slice routines cannot serve here.
//
// Determinism & Performance:
//   - Fixed ascending row order, 4-row unrolled main loop plus a scalar tail.
//   - No allocations: every kernel writes into a caller-provided dst.
//   - O(n) time, O(1) extra space for n rows.

package array2d

import "math"

// rowNorms writes sqrt(x_i² + y_i²) of each row of src into dst.
// len(dst) rows are processed; src must hold at least 2*len(dst) values.
func rowNorms(dst, src []float64) {
	n := len(dst)
	i := 0
	// 4-row unrolled main loop.
	for ; i+4 <= n; i += 4 {
		j := Cols * i
		x0, y0 := src[j], src[j+1]
		x1, y1 := src[j+2], src[j+3]
		x2, y2 := src[j+4], src[j+5]
		x3, y3 := src[j+6], src[j+7]
		dst[i] = math.Sqrt(x0*x0 + y0*y0)
		dst[i+1] = math.Sqrt(x1*x1 + y1*y1)
		dst[i+2] = math.Sqrt(x2*x2 + y2*y2)
		dst[i+3] = math.Sqrt(x3*x3 + y3*y3)
	}
	// Scalar tail.
	for ; i < n; i++ {
		x, y := src[Cols*i], src[Cols*i+1]
		dst[i] = math.Sqrt(x*x + y*y)
	}
}

// rowNormsSquared writes x_i² + y_i² of each row of src into dst.
func rowNormsSquared(dst, src []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		j := Cols * i
		x0, y0 := src[j], src[j+1]
		x1, y1 := src[j+2], src[j+3]
		x2, y2 := src[j+4], src[j+5]
		x3, y3 := src[j+6], src[j+7]
		dst[i] = x0*x0 + y0*y0
		dst[i+1] = x1*x1 + y1*y1
		dst[i+2] = x2*x2 + y2*y2
		dst[i+3] = x3*x3 + y3*y3
	}
	for ; i < n; i++ {
		x, y := src[Cols*i], src[Cols*i+1]
		dst[i] = x*x + y*y
	}
}

// rowDots writes the per-row scalar product a_i·b_i into dst.
// a and b must both hold at least 2*len(dst) values.
func rowDots(dst, a, b []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		j := Cols * i
		dst[i] = a[j]*b[j] + a[j+1]*b[j+1]
		dst[i+1] = a[j+2]*b[j+2] + a[j+3]*b[j+3]
		dst[i+2] = a[j+4]*b[j+4] + a[j+5]*b[j+5]
		dst[i+3] = a[j+6]*b[j+6] + a[j+7]*b[j+7]
	}
	for ; i < n; i++ {
		j := Cols * i
		dst[i] = a[j]*b[j] + a[j+1]*b[j+1]
	}
}
