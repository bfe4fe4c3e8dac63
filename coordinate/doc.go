// Package coordinate refines point2d.Point into arrays of geographic
// coordinates: each row is a (latitude, longitude) pair in radians.
//
// 🚀 What is coordinate?
//
//	Structurally identical to every other N×2 view in this module, but the
//	rows live on a sphere, so the interesting operations are geodesic:
//	  • GeoDist / GeoDistSquared — approximate ground distance in meters,
//	    via a local equirectangular east/north decomposition
//	  • Bearing — initial heading from row i to row i, in [0, 2π)
//	  • GeoDistAndBearing — both of the above in one pass
//	  • Shifted — move coordinates by distance + bearing on a sphere
//	  • CircleAround — sample n points on a circle around one coordinate
//
// ⚙️ Usage:
//
//	tlv, _ := coordinate.New([]float64{32.0853}, []float64{34.7818},
//		coordinate.WithDegrees())
//	jlm, _ := coordinate.New([]float64{31.7683}, []float64{35.2137},
//		coordinate.WithDegrees())
//
//	dist, bearing, _ := tlv.GeoDistAndBearing(jlm) // ≈54 km, roughly SE
//
// Accuracy: the east/north decomposition is a flat-Earth approximation
// around the segment midpoint — excellent for distances up to a few hundred
// kilometers away from the poles, and an order of magnitude cheaper than a
// full great-circle solution. Shifted, in contrast, is a true spherical
// shift (radius 6 378 100 m) so circles stay circles at any distance.
//
// All pairwise operations broadcast 1↔N; slice inputs that neither match
// nor broadcast return ErrSizeMismatch, typed operands array2d.ErrRowMismatch.
package coordinate
