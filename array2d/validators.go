// SPDX-License-Identifier: MIT

package array2d

import "math"

// validateFinite returns ErrNaNInf when s contains NaN or ±Inf.
// Called by copying constructors under the default numeric policy.
// Complexity: O(n).
func validateFinite(s []float64) error {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// validateIndex returns ErrOutOfRange unless 0 ≤ i < rows.
// Complexity: O(1).
func validateIndex(i, rows int) error {
	if i < 0 || i >= rows {
		return ErrOutOfRange
	}

	return nil
}
