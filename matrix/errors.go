// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Matrix accessors reuse the storage sentinels of package fixed so that
// errors.Is works the same way for vectors and matrices. They are re-exported
// here for callers that only import matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixvec/fixed"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	ErrOutOfRange = fixed.ErrOutOfRange

	// ErrLengthMismatch indicates that a runtime sequence of rows or columns
	// does not match the dimension types of the requested matrix.
	ErrLengthMismatch = fixed.ErrLengthMismatch
)

// method tags used in error wrappers
const (
	ctxRow        = "Row"
	ctxCol        = "Col"
	ctxElem       = "Elem"
	ctxSetElem    = "SetElem"
	ctxFromRows   = "matrix.FromRows"
	ctxFromNested = "matrix.FromNested"
)

// lineErrorf wraps err with Matrix method context and a row or column index.
func lineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, idx, err)
}

// matrixErrorf wraps err with Matrix method context and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
