// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
)

// Apply combines dst and src element-wise in place: dst[i] = dst[i] op src[i].
// Each src element is converted to T first; the element type of dst never
// changes.
//
// For op == numeric.Div with an integral T, every divisor is checked before
// dst is touched, and a zero panics with numeric.ErrDivideByZero.
func Apply[N dim.Dim, T, U numeric.Number](dst *Vector[N, T], op numeric.Op, src Vector[N, U]) {
	n := dst.Len()
	if op == numeric.Div {
		for i := 0; i < n; i++ {
			numeric.CheckDivisor(T(src.Index(i)))
		}
	}
	for i := 0; i < n; i++ {
		p := dst.Ref(i)
		*p = numeric.Apply(op, *p, src.Index(i))
	}
}

// ApplyScalar broadcasts s over dst in place: dst[i] = dst[i] op T(s).
//
// For op == numeric.Div with an integral T and T(s) == 0, it panics with
// numeric.ErrDivideByZero and leaves dst unchanged.
func ApplyScalar[N dim.Dim, T, S numeric.Number](dst *Vector[N, T], op numeric.Op, s S) {
	if op == numeric.Div {
		numeric.CheckDivisor(T(s))
	}
	n := dst.Len()
	for i := 0; i < n; i++ {
		p := dst.Ref(i)
		*p = numeric.Apply(op, *p, s)
	}
}

// ---------- vector <> vector ----------

// Add returns a + b with the element type of a.
func Add[N dim.Dim, T, U numeric.Number](a Vector[N, T], b Vector[N, U]) Vector[N, T] {
	Apply(&a, numeric.Add, b)
	return a
}

// Sub returns a - b with the element type of a.
func Sub[N dim.Dim, T, U numeric.Number](a Vector[N, T], b Vector[N, U]) Vector[N, T] {
	Apply(&a, numeric.Sub, b)
	return a
}

// Mul returns the element-wise product a * b with the element type of a.
func Mul[N dim.Dim, T, U numeric.Number](a Vector[N, T], b Vector[N, U]) Vector[N, T] {
	Apply(&a, numeric.Mul, b)
	return a
}

// Div returns the element-wise quotient a / b with the element type of a.
func Div[N dim.Dim, T, U numeric.Number](a Vector[N, T], b Vector[N, U]) Vector[N, T] {
	Apply(&a, numeric.Div, b)
	return a
}

// AddAssign performs dst += src.
func AddAssign[N dim.Dim, T, U numeric.Number](dst *Vector[N, T], src Vector[N, U]) {
	Apply(dst, numeric.Add, src)
}

// SubAssign performs dst -= src.
func SubAssign[N dim.Dim, T, U numeric.Number](dst *Vector[N, T], src Vector[N, U]) {
	Apply(dst, numeric.Sub, src)
}

// MulAssign performs dst *= src element-wise.
func MulAssign[N dim.Dim, T, U numeric.Number](dst *Vector[N, T], src Vector[N, U]) {
	Apply(dst, numeric.Mul, src)
}

// DivAssign performs dst /= src element-wise.
func DivAssign[N dim.Dim, T, U numeric.Number](dst *Vector[N, T], src Vector[N, U]) {
	Apply(dst, numeric.Div, src)
}

// ---------- vector <> scalar ----------

// AddScalar returns a + s.
func AddScalar[N dim.Dim, T, S numeric.Number](a Vector[N, T], s S) Vector[N, T] {
	ApplyScalar(&a, numeric.Add, s)
	return a
}

// SubScalar returns a - s.
func SubScalar[N dim.Dim, T, S numeric.Number](a Vector[N, T], s S) Vector[N, T] {
	ApplyScalar(&a, numeric.Sub, s)
	return a
}

// MulScalar returns a * s.
func MulScalar[N dim.Dim, T, S numeric.Number](a Vector[N, T], s S) Vector[N, T] {
	ApplyScalar(&a, numeric.Mul, s)
	return a
}

// DivScalar returns a / s. An integral zero divisor panics.
func DivScalar[N dim.Dim, T, S numeric.Number](a Vector[N, T], s S) Vector[N, T] {
	ApplyScalar(&a, numeric.Div, s)
	return a
}

// AddScalarAssign performs dst += s.
func AddScalarAssign[N dim.Dim, T, S numeric.Number](dst *Vector[N, T], s S) {
	ApplyScalar(dst, numeric.Add, s)
}

// SubScalarAssign performs dst -= s.
func SubScalarAssign[N dim.Dim, T, S numeric.Number](dst *Vector[N, T], s S) {
	ApplyScalar(dst, numeric.Sub, s)
}

// MulScalarAssign performs dst *= s.
func MulScalarAssign[N dim.Dim, T, S numeric.Number](dst *Vector[N, T], s S) {
	ApplyScalar(dst, numeric.Mul, s)
}

// DivScalarAssign performs dst /= s.
func DivScalarAssign[N dim.Dim, T, S numeric.Number](dst *Vector[N, T], s S) {
	ApplyScalar(dst, numeric.Div, s)
}
