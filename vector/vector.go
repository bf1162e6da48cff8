// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/fixed"
	"github.com/katalvlaran/fixvec/numeric"
)

// formatting literals
const (
	_fmtOpen  = "[ "
	_fmtClose = " ]"
	_fmtSep   = ", "
)

// Vector is an ordered sequence of exactly dim.Len[N]() elements of type T.
// The zero value is the all-zero vector.
type Vector[N dim.Dim, T numeric.Number] struct {
	fixed.Array[N, T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector[dim.D3, float64]{}

// fromValues builds a vector from exactly Len values (caller guarantees count).
func fromValues[N dim.Dim, T numeric.Number](vals ...T) Vector[N, T] {
	var v Vector[N, T]
	copy(v.Slice(), vals)
	return v
}

// New1 returns the one-element vector (x).
func New1[T numeric.Number](x T) Vector[dim.D1, T] {
	return fromValues[dim.D1](x)
}

// New2 returns the vector (x, y).
func New2[T numeric.Number](x, y T) Vector[dim.D2, T] {
	return fromValues[dim.D2](x, y)
}

// New3 returns the vector (x, y, z).
func New3[T numeric.Number](x, y, z T) Vector[dim.D3, T] {
	return fromValues[dim.D3](x, y, z)
}

// New4 returns the vector (x, y, z, w).
func New4[T numeric.Number](x, y, z, w T) Vector[dim.D4, T] {
	return fromValues[dim.D4](x, y, z, w)
}

// FromSlice converts s element by element into a Vector[N, T].
// It returns fixed.ErrLengthMismatch unless len(s) == dim.Len[N]().
func FromSlice[N dim.Dim, T, U numeric.Number](s []U) (Vector[N, T], error) {
	var v Vector[N, T]
	if len(s) != v.Len() {
		return v, fixed.LengthError("vector.FromSlice", v.Len(), len(s))
	}
	for i, x := range s {
		*v.Ref(i) = T(x)
	}

	return v, nil
}

// Convert returns v with every element converted to T.
// Float to integer conversion truncates toward zero.
func Convert[T numeric.Number, N dim.Dim, U numeric.Number](v Vector[N, U]) Vector[N, T] {
	var out Vector[N, T]
	for i, x := range v.All() {
		*out.Ref(i) = T(x)
	}
	return out
}

// Fill returns a vector with x in every slot.
func Fill[N dim.Dim, T numeric.Number](x T) Vector[N, T] {
	var v Vector[N, T]
	v.Fill(x)
	return v
}

// Ones returns the vector of ones.
func Ones[N dim.Dim, T numeric.Number]() Vector[N, T] {
	return Fill[N, T](1)
}

// Zeros returns the vector of zeros.
func Zeros[N dim.Dim, T numeric.Number]() Vector[N, T] {
	return Vector[N, T]{}
}

// String formats v as "[ e0, e1, ..., eN-1 ]".
func (v Vector[N, T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.All() {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
