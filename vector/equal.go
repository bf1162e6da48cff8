// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
)

// Equal reports whether v and w are element-wise equal under numeric.Equal.
func (v Vector[N, T]) Equal(w Vector[N, T]) bool {
	return Equal(v, w)
}

// Equal reports whether a and b are element-wise equal. Vectors of different
// element types are compared twice per element, once in T and once in U, and
// both comparisons must succeed, so 1.5 never equals the int 1.
func Equal[N dim.Dim, T, U numeric.Number](a Vector[N, T], b Vector[N, U]) bool {
	n := a.Len()
	for i := 0; i < n; i++ {
		x, y := a.Index(i), b.Index(i)
		if !numeric.Equal(x, T(y)) || !numeric.Equal(U(x), y) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual[N dim.Dim, T, U numeric.Number](a Vector[N, T], b Vector[N, U]) bool {
	return !Equal(a, b)
}
