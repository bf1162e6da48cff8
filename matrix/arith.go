// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
	"github.com/katalvlaran/fixvec/vector"
)

// Apply combines dst and src element-wise in place, row by row, with the
// promotion rule of vector.Apply: src elements are converted to T.
//
// For op == numeric.Div with an integral T, all N×M divisors are checked
// before any row of dst is touched, so a panic with numeric.ErrDivideByZero
// leaves dst unchanged.
func Apply[N, M dim.Dim, T, U numeric.Number](dst *Matrix[N, M, T], op numeric.Op, src Matrix[N, M, U]) {
	if op == numeric.Div {
		for r := range src.Values() {
			for x := range r.Values() {
				numeric.CheckDivisor(T(x))
			}
		}
	}
	for i, r := range src.All() {
		vector.Apply(dst.Ref(i), op, r)
	}
}

// ApplyScalar broadcasts s over every element of dst in place.
func ApplyScalar[N, M dim.Dim, T, S numeric.Number](dst *Matrix[N, M, T], op numeric.Op, s S) {
	if op == numeric.Div {
		numeric.CheckDivisor(T(s))
	}
	n := dst.Rows()
	for i := 0; i < n; i++ {
		vector.ApplyScalar(dst.Ref(i), op, s)
	}
}

// ---------- matrix <> matrix ----------

// Add returns a + b with the element type of a.
func Add[N, M dim.Dim, T, U numeric.Number](a Matrix[N, M, T], b Matrix[N, M, U]) Matrix[N, M, T] {
	Apply(&a, numeric.Add, b)
	return a
}

// Sub returns a - b with the element type of a.
func Sub[N, M dim.Dim, T, U numeric.Number](a Matrix[N, M, T], b Matrix[N, M, U]) Matrix[N, M, T] {
	Apply(&a, numeric.Sub, b)
	return a
}

// Mul returns the element-wise (Hadamard) product of a and b. For the matrix
// product use Dot.
func Mul[N, M dim.Dim, T, U numeric.Number](a Matrix[N, M, T], b Matrix[N, M, U]) Matrix[N, M, T] {
	Apply(&a, numeric.Mul, b)
	return a
}

// Div returns the element-wise quotient a / b.
func Div[N, M dim.Dim, T, U numeric.Number](a Matrix[N, M, T], b Matrix[N, M, U]) Matrix[N, M, T] {
	Apply(&a, numeric.Div, b)
	return a
}

// AddAssign performs dst += src.
func AddAssign[N, M dim.Dim, T, U numeric.Number](dst *Matrix[N, M, T], src Matrix[N, M, U]) {
	Apply(dst, numeric.Add, src)
}

// SubAssign performs dst -= src.
func SubAssign[N, M dim.Dim, T, U numeric.Number](dst *Matrix[N, M, T], src Matrix[N, M, U]) {
	Apply(dst, numeric.Sub, src)
}

// MulAssign performs dst *= src element-wise.
func MulAssign[N, M dim.Dim, T, U numeric.Number](dst *Matrix[N, M, T], src Matrix[N, M, U]) {
	Apply(dst, numeric.Mul, src)
}

// DivAssign performs dst /= src element-wise.
func DivAssign[N, M dim.Dim, T, U numeric.Number](dst *Matrix[N, M, T], src Matrix[N, M, U]) {
	Apply(dst, numeric.Div, src)
}

// ---------- matrix <> scalar ----------

// AddScalar returns a with s added to every element.
func AddScalar[N, M dim.Dim, T, S numeric.Number](a Matrix[N, M, T], s S) Matrix[N, M, T] {
	ApplyScalar(&a, numeric.Add, s)
	return a
}

// SubScalar returns a with s subtracted from every element.
func SubScalar[N, M dim.Dim, T, S numeric.Number](a Matrix[N, M, T], s S) Matrix[N, M, T] {
	ApplyScalar(&a, numeric.Sub, s)
	return a
}

// MulScalar returns a scaled by s.
func MulScalar[N, M dim.Dim, T, S numeric.Number](a Matrix[N, M, T], s S) Matrix[N, M, T] {
	ApplyScalar(&a, numeric.Mul, s)
	return a
}

// DivScalar returns a with every element divided by s.
func DivScalar[N, M dim.Dim, T, S numeric.Number](a Matrix[N, M, T], s S) Matrix[N, M, T] {
	ApplyScalar(&a, numeric.Div, s)
	return a
}

// AddScalarAssign performs dst += s on every element.
func AddScalarAssign[N, M dim.Dim, T, S numeric.Number](dst *Matrix[N, M, T], s S) {
	ApplyScalar(dst, numeric.Add, s)
}

// SubScalarAssign performs dst -= s on every element.
func SubScalarAssign[N, M dim.Dim, T, S numeric.Number](dst *Matrix[N, M, T], s S) {
	ApplyScalar(dst, numeric.Sub, s)
}

// MulScalarAssign performs dst *= s on every element.
func MulScalarAssign[N, M dim.Dim, T, S numeric.Number](dst *Matrix[N, M, T], s S) {
	ApplyScalar(dst, numeric.Mul, s)
}

// DivScalarAssign performs dst /= s on every element.
func DivScalarAssign[N, M dim.Dim, T, S numeric.Number](dst *Matrix[N, M, T], s S) {
	ApplyScalar(dst, numeric.Div, s)
}
