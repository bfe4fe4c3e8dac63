// Package vec2d is a friendly, allocation-conscious toolkit for working
// with fixed-width N×2 numeric buffers — arrays of 2D samples — through
// typed, zero-copy views.
//
// 🚀 What is vec2d?
//
//	A pure-math library that reinterprets one flat []float64 buffer as
//	whatever your rows actually mean:
//		• array2d    — the core N×2 view: accessors, split/concat, row-wise
//		               norms through hand-tuned strided kernels
//		• vector2d   — rows as physical vectors: polar construction,
//		               direction, per-row dot products and projections
//		• point2d    — rows as Cartesian locations: displacements and
//		               Euclidean distances
//		• coordinate — rows as geographic (lat, lon) pairs in radians:
//		               approximate geodesic distance, bearing, shifting
//
// ✨ Why choose vec2d?
//
//   - Zero-copy views — wrapping a buffer never duplicates it; mutations
//     flow both ways between the view and the original storage
//   - Row-wise fast paths — norm/dot kernels are unrolled over the flat
//     row-major layout instead of going through a generic reduction
//   - Broadcast-aware — pairwise operations accept 1-row operands against
//     N-row operands, the way array-language users expect
//   - Predictable errors — every failure is a package sentinel matched
//     with errors.Is; nothing panics on user input
//
// ⚙️ Quick taste:
//
//	buf := []float64{3, 4, 0, 5}              // two rows: (3,4) and (0,5)
//	v, _ := vector2d.FromBuffer(buf)          // zero-copy vector view
//	fmt.Println(v.Norm())                     // [5 5]
//
// Each subpackage documents its own contract in doc.go; see examples/ for
// end-to-end navigation and geo-fencing demos.
//
//	go get github.com/katalvlaran/vec2d
package vec2d
