// Package vector2d refines array2d.Array into arrays of 2D physical
// vectors — velocities, displacements, forces — one vector per row.
//
// 🚀 What is vector2d?
//
//	The same flat N×2 storage as array2d, plus the operations that only
//	make sense once a row *means* a vector:
//	  • FromPolar — build rows from magnitude(s) and direction(s),
//	    with 1↔N broadcasting between the two inputs
//	  • Direction — per-row angle atan2(y, x), normalized into [0, 2π)
//	  • Dot       — per-row scalar products
//	  • ProjectOnto — per-row projection onto another vector array
//
// ⚙️ Usage:
//
//	// three unit vectors pointing at 0°, 90° and 180°
//	v, err := vector2d.FromPolar(
//		[]float64{1},            // magnitude broadcasts across directions
//		[]float64{0, 90, 180},
//		vector2d.WithDegrees(),
//	)
//	if err != nil { ... }
//	v.Norm()      // [1 1 1]
//	v.Direction() // [0 π/2 π]
//
// Everything array2d offers (Norm, Normalized, Add, Sub, views, aliasing)
// is available through embedding; Add/Sub/Scale are re-exported so vector
// arithmetic stays in vector space.
package vector2d
