// SPDX-License-Identifier: MIT
// Package array2d: sentinel error set.
// All public operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered conditions; panics are
// reserved for programmer errors in option constructors.

package array2d

import "errors"

var (
	// ErrBadShape is returned when a buffer cannot be viewed as an N×2
	// array, i.e. its length is odd, or a requested row count is negative.
	ErrBadShape = errors.New("array2d: buffer length must be a multiple of 2")

	// ErrOutOfRange indicates a row index outside [0, Rows()).
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("array2d: row index out of range")

	// ErrRowMismatch indicates incompatible row counts between operands of
	// a pairwise operation. Operands are compatible when their row counts
	// are equal or when either side has exactly one row (broadcast).
	ErrRowMismatch = errors.New("array2d: row count mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered by a copying
	// constructor under the default numeric policy. Wrapping views never
	// scan; see Wrap.
	ErrNaNInf = errors.New("array2d: NaN or Inf encountered")
)
