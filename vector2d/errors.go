// SPDX-License-Identifier: MIT

package vector2d

import "errors"

var (
	// ErrEmptyInput indicates that magnitude or direction was empty.
	ErrEmptyInput = errors.New("vector2d: magnitude and direction must be non-empty")

	// ErrSizeMismatch indicates magnitude/direction lengths that neither
	// match nor broadcast (one of them having exactly one element).
	ErrSizeMismatch = errors.New("vector2d: magnitude/direction size mismatch")
)
