// SPDX-License-Identifier: MIT

package fixed

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	// Checked accessors (At/Set) return it instead of panicking.
	ErrOutOfRange = errors.New("fixed: index out of range")

	// ErrLengthMismatch indicates that a runtime sequence does not have
	// exactly the length carried by the container's dimension type.
	ErrLengthMismatch = errors.New("fixed: length mismatch")
)

// arrayErrorf wraps err with Array method context and the offending index.
func arrayErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, idx, err)
}

// LengthError reports a length mismatch between a runtime sequence of length
// got and a dimension of length want. The result matches ErrLengthMismatch.
func LengthError(op string, want, got int) error {
	return fmt.Errorf("%s: want %d, got %d: %w", op, want, got, ErrLengthMismatch)
}
