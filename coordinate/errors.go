// SPDX-License-Identifier: MIT

package coordinate

import "errors"

var (
	// ErrEmptyInput indicates that lat or lon was empty at construction.
	ErrEmptyInput = errors.New("coordinate: lat and lon must be non-empty")

	// ErrSizeMismatch indicates slice inputs whose lengths neither match
	// nor broadcast (one of them having exactly one element).
	ErrSizeMismatch = errors.New("coordinate: input size mismatch")

	// ErrNotSingle marks operations that are only defined for a single
	// (1×2) coordinate, such as CircleAround.
	ErrNotSingle = errors.New("coordinate: operation requires exactly one coordinate")

	// ErrBadCount indicates a non-positive sample count.
	ErrBadCount = errors.New("coordinate: sample count must be positive")
)
