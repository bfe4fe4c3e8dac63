// Package array2d provides the core typed view over flat N×2 numeric buffers.
//
// 🚀 What is array2d?
//
//	One []float64 slice, interpreted row-major as N rows of two columns:
//	row i lives at (buf[2i], buf[2i+1]). An Array never owns more than that
//	slice header, so viewing an existing buffer costs nothing and aliases
//	the original storage — mutations flow both ways.
//
// ✨ Key features:
//   - zero-copy Wrap over caller-supplied buffers (shape-checked)
//   - copying constructors: New, FromRows, FromColumns, Zeros, Concat
//   - aliasing sub-views: Row, Split, Raw
//   - row-wise derived quantities through unrolled strided kernels:
//     Norm, NormSquared, Normalized
//   - broadcast-aware pairwise arithmetic: Add, Sub, Dot (1-row operands
//     broadcast against N-row operands), plus Scale
//
// ⚙️ Usage:
//
//	buf := []float64{3, 4, 0, 5}
//	a, err := array2d.Wrap(buf)      // no copy; a aliases buf
//	if err != nil { ... }            // ErrBadShape on odd-length buffers
//
//	a.Norm()                          // [5 5]
//	a.Set(0, 6, 8)                    // buf is now {6, 8, 0, 5}
//
// Numeric policy: copying constructors reject NaN/±Inf by default
// (ErrNaNInf); disable with WithNoValidateNaNInf. Wrap never scans — a view
// trusts the caller's buffer.
//
// Performance: row-wise reductions (Norm, Dot) walk the interleaved layout
// with hand-unrolled kernels; elementwise arithmetic on equal shapes runs
// through gonum/floats over the flat backing storage.
package array2d
