// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
	"github.com/katalvlaran/fixvec/vector"
)

// Eye returns the N×N identity matrix.
func Eye[N dim.Dim, T numeric.Number]() Matrix[N, N, T] {
	return FromDiag(vector.Ones[N, T]())
}

// FromDiag returns the square matrix with v on the main diagonal and zeros
// elsewhere.
func FromDiag[N dim.Dim, T numeric.Number](v vector.Vector[N, T]) Matrix[N, N, T] {
	var out Matrix[N, N, T]
	for i, x := range v.All() {
		*out.Ref(i).Ref(i) = x
	}
	return out
}

// Diag returns the main diagonal of a square matrix.
func Diag[N dim.Dim, T numeric.Number](m Matrix[N, N, T]) vector.Vector[N, T] {
	var out vector.Vector[N, T]
	for i, r := range m.All() {
		*out.Ref(i) = r.Index(i)
	}
	return out
}

// Diagonal returns the leading diagonal m[k][k] for k < min(N, M). Unlike
// Diag it accepts rectangular matrices, so its length is only known at run
// time.
func (m Matrix[N, M, T]) Diagonal() []T {
	n := min(m.Rows(), m.Cols())
	out := make([]T, n)
	for k := range out {
		out[k] = m.Index(k).Index(k)
	}
	return out
}

// Det returns the determinant of a square matrix.
//
// The value is computed by gonum in float64 (LU factorisation) and converted
// back to T; for integral T it is rounded to the nearest integer first, since
// the factorisation of an integer matrix is exact only up to rounding.
func Det[N dim.Dim, T numeric.Number](m Matrix[N, N, T]) T {
	n := m.Rows()
	data := make([]float64, 0, n*n)
	for r := range m.Values() {
		for x := range r.Values() {
			data = append(data, float64(x))
		}
	}
	d := mat.Det(mat.NewDense(n, n, data))
	if !numeric.IsFloat[T]() {
		d = math.Round(d)
	}

	return T(d)
}
