// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
	"github.com/katalvlaran/fixvec/vector"
)

// Min returns the smallest element.
func (m Matrix[N, M, T]) Min() T {
	ret := m.Index(0).Min()
	for r := range m.Values() {
		ret = min(ret, r.Min())
	}
	return ret
}

// Max returns the largest element.
func (m Matrix[N, M, T]) Max() T {
	ret := m.Index(0).Max()
	for r := range m.Values() {
		ret = max(ret, r.Max())
	}
	return ret
}

// Sum returns the sum of all elements, accumulated in T.
func (m Matrix[N, M, T]) Sum() T {
	var acc T
	for r := range m.Values() {
		acc += r.Sum()
	}
	return acc
}

// Mean returns Sum() / (N*M) in T.
func (m Matrix[N, M, T]) Mean() T { return MeanAs[T](m) }

// Std returns the population standard deviation over all elements in T.
func (m Matrix[N, M, T]) Std() T { return StdAs[T](m) }

// Equal reports whether m and o are equal row by row under vector equality.
func (m Matrix[N, M, T]) Equal(o Matrix[N, M, T]) bool {
	return Equal(m, o)
}

// MeanAs returns U(m.Sum()) / U(N*M).
func MeanAs[U numeric.Number, N, M dim.Dim, T numeric.Number](m Matrix[N, M, T]) U {
	return U(m.Sum()) / U(m.Rows()*m.Cols())
}

// StdAs returns sqrt(sum((x-mean)^2)/(N*M)) with every step computed in U.
func StdAs[U numeric.Number, N, M dim.Dim, T numeric.Number](m Matrix[N, M, T]) U {
	mean := MeanAs[U](m)
	var acc U
	for r := range m.Values() {
		for x := range r.Values() {
			d := U(x) - mean
			acc += d * d
		}
	}

	return numeric.Sqrt(acc / U(m.Rows()*m.Cols()))
}

// Equal reports whether every row of a equals the matching row of b under
// vector.Equal, i.e. each element pair is compared in both T and U.
func Equal[N, M dim.Dim, T, U numeric.Number](a Matrix[N, M, T], b Matrix[N, M, U]) bool {
	for i, r := range a.All() {
		if !vector.Equal(r, b.Index(i)) {
			return false
		}
	}
	return true
}

// NotEqual is !Equal(a, b).
func NotEqual[N, M dim.Dim, T, U numeric.Number](a Matrix[N, M, T], b Matrix[N, M, U]) bool {
	return !Equal(a, b)
}
