// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
)

// Min returns the smallest element.
func (v Vector[N, T]) Min() T {
	ret := v.Index(0)
	for x := range v.Values() {
		ret = min(ret, x)
	}
	return ret
}

// Max returns the largest element.
func (v Vector[N, T]) Max() T {
	ret := v.Index(0)
	for x := range v.Values() {
		ret = max(ret, x)
	}
	return ret
}

// Sum returns the sum of all elements, accumulated in T.
func (v Vector[N, T]) Sum() T {
	var ret T
	for x := range v.Values() {
		ret += x
	}
	return ret
}

// Mean returns Sum()/Len() in T. Integral means truncate.
func (v Vector[N, T]) Mean() T {
	return MeanAs[T](v)
}

// Std returns the population standard deviation computed in T.
func (v Vector[N, T]) Std() T {
	return StdAs[T](v)
}

// Length returns the Euclidean norm computed in T.
func (v Vector[N, T]) Length() T {
	return LengthAs[T](v)
}

// Dot returns the inner product of v and w, accumulated in T.
func (v Vector[N, T]) Dot(w Vector[N, T]) T {
	return DotAs[T](v, w)
}

// MeanAs returns U(v.Sum()) / Len(). The sum itself is taken in T.
func MeanAs[U numeric.Number, N dim.Dim, T numeric.Number](v Vector[N, T]) U {
	return U(v.Sum()) / U(v.Len())
}

// StdAs returns the population standard deviation sqrt(sum((x-mean)^2)/N)
// with every step computed in U.
func StdAs[U numeric.Number, N dim.Dim, T numeric.Number](v Vector[N, T]) U {
	m := MeanAs[U](v)
	var acc U
	for x := range v.Values() {
		d := U(x) - m
		acc += d * d
	}

	return numeric.Sqrt(acc / U(v.Len()))
}

// LengthAs returns sqrt(sum(x*x)) with every step computed in U.
func LengthAs[U numeric.Number, N dim.Dim, T numeric.Number](v Vector[N, T]) U {
	return numeric.Sqrt(DotAs[U](v, v))
}

// DotAs returns the inner product of a and b. Both operands are converted to
// U element by element and the products are accumulated in U, so the two
// vectors may have different element types.
func DotAs[U numeric.Number, N dim.Dim, T, T2 numeric.Number](a Vector[N, T], b Vector[N, T2]) U {
	var acc U
	n := a.Len()
	for i := 0; i < n; i++ {
		acc += U(a.Index(i)) * U(b.Index(i))
	}
	return acc
}
