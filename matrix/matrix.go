// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[N, M, T], a fixed-shape numeric matrix made
// of N row vectors of type vector.Vector[M, T].
//
// Like vectors, matrices are plain values with no heap storage, and their
// shape lives in the type: the product Dot(a, b) only compiles when the column
// dimension of a is the row dimension of b.
//
// Arithmetic, equality and reductions delegate row by row to package vector,
// so the promotion and comparison rules are the same: the left operand decides
// the element type and floating-point equality is tolerant.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/fixed"
	"github.com/katalvlaran/fixvec/numeric"
	"github.com/katalvlaran/fixvec/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen   = "[ "
	_fmtClose  = " ]"
	_fmtRowSep = ",\n  "
)

// Matrix is an N×M matrix of T stored as N rows of vector.Vector[M, T].
// The zero value is the all-zero matrix.
type Matrix[N, M dim.Dim, T numeric.Number] struct {
	fixed.Array[N, vector.Vector[M, T]]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix[dim.D2, dim.D2, float64]{}

// fromRowValues builds a matrix from exactly N rows (caller guarantees count).
func fromRowValues[N, M dim.Dim, T numeric.Number](rows ...vector.Vector[M, T]) Matrix[N, M, T] {
	var m Matrix[N, M, T]
	copy(m.Slice(), rows)
	return m
}

// Of1 returns the matrix with the single row r0.
func Of1[M dim.Dim, T numeric.Number](r0 vector.Vector[M, T]) Matrix[dim.D1, M, T] {
	return fromRowValues[dim.D1](r0)
}

// Of2 returns the matrix with rows r0, r1.
func Of2[M dim.Dim, T numeric.Number](r0, r1 vector.Vector[M, T]) Matrix[dim.D2, M, T] {
	return fromRowValues[dim.D2](r0, r1)
}

// Of3 returns the matrix with rows r0, r1, r2.
func Of3[M dim.Dim, T numeric.Number](r0, r1, r2 vector.Vector[M, T]) Matrix[dim.D3, M, T] {
	return fromRowValues[dim.D3](r0, r1, r2)
}

// Of4 returns the matrix with rows r0, r1, r2, r3.
func Of4[M dim.Dim, T numeric.Number](r0, r1, r2, r3 vector.Vector[M, T]) Matrix[dim.D4, M, T] {
	return fromRowValues[dim.D4](r0, r1, r2, r3)
}

// FromRows converts a runtime sequence of rows into a Matrix[N, M, T].
// The column count is checked by the row type; the row count must equal
// dim.Len[N]() or ErrLengthMismatch is returned.
func FromRows[N, M dim.Dim, T, U numeric.Number](rows []vector.Vector[M, U]) (Matrix[N, M, T], error) {
	var m Matrix[N, M, T]
	if len(rows) != m.Rows() {
		return m, fixed.LengthError(ctxFromRows, m.Rows(), len(rows))
	}
	for i, r := range rows {
		*m.Ref(i) = vector.Convert[T](r)
	}

	return m, nil
}

// FromNested converts a nested slice into a Matrix[N, M, T]. Both the outer
// and every inner length are checked; the first mismatch is reported.
func FromNested[N, M dim.Dim, T, U numeric.Number](rows [][]U) (Matrix[N, M, T], error) {
	var m Matrix[N, M, T]
	if len(rows) != m.Rows() {
		return m, fixed.LengthError(ctxFromNested, m.Rows(), len(rows))
	}
	for i, r := range rows {
		v, err := vector.FromSlice[M, T](r)
		if err != nil {
			return Matrix[N, M, T]{}, fmt.Errorf("%s: row %d: %w", ctxFromNested, i, err)
		}
		*m.Ref(i) = v
	}

	return m, nil
}

// Convert returns m with every element converted to T.
func Convert[T numeric.Number, N, M dim.Dim, U numeric.Number](m Matrix[N, M, U]) Matrix[N, M, T] {
	var out Matrix[N, M, T]
	for i, r := range m.All() {
		*out.Ref(i) = vector.Convert[T](r)
	}
	return out
}

// Fill returns a matrix with x in every element.
func Fill[N, M dim.Dim, T numeric.Number](x T) Matrix[N, M, T] {
	var m Matrix[N, M, T]
	m.Fill(vector.Fill[M](x))
	return m
}

// Ones returns the matrix of ones.
func Ones[N, M dim.Dim, T numeric.Number]() Matrix[N, M, T] {
	return Fill[N, M, T](1)
}

// Zeros returns the matrix of zeros.
func Zeros[N, M dim.Dim, T numeric.Number]() Matrix[N, M, T] {
	return Matrix[N, M, T]{}
}

// Rows returns N.
func (m Matrix[N, M, T]) Rows() int { return m.Len() }

// Cols returns M.
func (m Matrix[N, M, T]) Cols() int { return dim.Len[M]() }

// Size returns (N, M).
func (m Matrix[N, M, T]) Size() (int, int) { return m.Rows(), m.Cols() }

// Row returns a copy of row i or ErrOutOfRange.
func (m Matrix[N, M, T]) Row(i int) (vector.Vector[M, T], error) {
	if i < 0 || i >= m.Rows() {
		return vector.Vector[M, T]{}, lineErrorf(ctxRow, i, ErrOutOfRange)
	}
	return m.Index(i), nil
}

// Col returns a copy of column j or ErrOutOfRange.
func (m Matrix[N, M, T]) Col(j int) (vector.Vector[N, T], error) {
	var out vector.Vector[N, T]
	if j < 0 || j >= m.Cols() {
		return out, lineErrorf(ctxCol, j, ErrOutOfRange)
	}
	for i, r := range m.All() {
		*out.Ref(i) = r.Index(j)
	}

	return out, nil
}

// Elem returns the element at (i, j) or ErrOutOfRange.
func (m Matrix[N, M, T]) Elem(i, j int) (T, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		var zero T
		return zero, matrixErrorf(ctxElem, i, j, ErrOutOfRange)
	}
	return m.Index(i).Index(j), nil
}

// SetElem stores x at (i, j) or returns ErrOutOfRange.
func (m *Matrix[N, M, T]) SetElem(i, j int, x T) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrixErrorf(ctxSetElem, i, j, ErrOutOfRange)
	}
	*m.Ref(i).Ref(j) = x

	return nil
}

// String formats m one row per line, each row formatted like a Vector:
//
//	[ [ 1, 2 ],
//	  [ 3, 4 ] ]
func (m Matrix[N, M, T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, r := range m.All() {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(r.String())
	}
	b.WriteString(_fmtClose)

	return b.String()
}
