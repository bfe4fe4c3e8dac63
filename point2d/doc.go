// Package point2d refines array2d.Array into arrays of Cartesian
// locations, one point per row.
//
// 🚀 What is point2d?
//
//	Points are locations, vectors are differences of locations — point2d
//	keeps that distinction honest:
//	  • Displacement(p2) — per-row p1_i − p2_i, yielding a vector2d.Vector
//	  • EuclidDist / EuclidDistSquared — per-row straight-line distances
//	  • Translate(v) — move points by displacement vectors, yielding points
//
// ⚙️ Usage:
//
//	from, _ := point2d.FromBuffer([]float64{0, 0, 1, 1})
//	to, _   := point2d.FromBuffer([]float64{3, 4, 1, 2})
//
//	d, _ := to.Displacement(from) // Vector rows: (3,4), (0,1)
//	d.Norm()                      // [5 1]
//
// Pairwise operations broadcast 1↔N like the rest of the library and
// reject anything else with array2d.ErrRowMismatch.
package point2d
