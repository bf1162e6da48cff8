// SPDX-License-Identifier: MIT
//
// Matrix products. Shapes are carried by the dimension type parameters, so an
// inner-dimension mismatch is a compile error rather than a runtime error.
//
// Implementation:
//   - DotAs uses the fixed i→k→j loop order: the k-th element of row i of a
//     is loaded once and streamed across row k of b.
//   - Every (i, j) sum is still accumulated in ascending k, so results match
//     the textbook i→j→k order bit for bit.
//
// Complexity: O(N·M·P) time, no allocations.

package matrix

import (
	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
	"github.com/katalvlaran/fixvec/vector"
)

// Dot returns the matrix product a·b in T.
func Dot[N, M, P dim.Dim, T numeric.Number](a Matrix[N, M, T], b Matrix[M, P, T]) Matrix[N, P, T] {
	return DotAs[T](a, b)
}

// DotAs returns the matrix product a·b with both operands converted to U and
// all products accumulated in U. The operands may have different element
// types.
func DotAs[U numeric.Number, N, M, P dim.Dim, T, T2 numeric.Number](a Matrix[N, M, T], b Matrix[M, P, T2]) Matrix[N, P, U] {
	var out Matrix[N, P, U]
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	for i := 0; i < rows; i++ {
		ar := a.Index(i)
		or := out.Ref(i)
		for k := 0; k < inner; k++ {
			aik := U(ar.Index(k))
			br := b.Index(k)
			for j := 0; j < cols; j++ {
				*or.Ref(j) += aik * U(br.Index(j))
			}
		}
	}

	return out
}

// DotVec returns the matrix-vector product m·v in T.
func (m Matrix[N, M, T]) DotVec(v vector.Vector[M, T]) vector.Vector[N, T] {
	return DotVecAs[T](m, v)
}

// DotVecAs returns m·v accumulated in U: element i is vector.DotAs[U] of row
// i and v.
func DotVecAs[U numeric.Number, N, M dim.Dim, T, T2 numeric.Number](m Matrix[N, M, T], v vector.Vector[M, T2]) vector.Vector[N, U] {
	var out vector.Vector[N, U]
	for i, r := range m.All() {
		*out.Ref(i) = vector.DotAs[U](r, v)
	}
	return out
}

// VecDot returns the row-vector product v·m in T.
func VecDot[N, M dim.Dim, T numeric.Number](v vector.Vector[N, T], m Matrix[N, M, T]) vector.Vector[M, T] {
	return VecDotAs[T](v, m)
}

// VecDotAs returns v·m accumulated in U.
func VecDotAs[U numeric.Number, N, M dim.Dim, T, T2 numeric.Number](v vector.Vector[N, T], m Matrix[N, M, T2]) vector.Vector[M, U] {
	var out vector.Vector[M, U]
	cols := m.Cols()
	for k, r := range m.All() {
		vk := U(v.Index(k))
		for j := 0; j < cols; j++ {
			*out.Ref(j) += vk * U(r.Index(j))
		}
	}

	return out
}

// Transpose returns the M×N matrix with out[j][i] = m[i][j].
func (m Matrix[N, M, T]) Transpose() Matrix[M, N, T] {
	var out Matrix[M, N, T]
	cols := m.Cols()
	for i, r := range m.All() {
		for j := 0; j < cols; j++ {
			*out.Ref(j).Ref(i) = r.Index(j)
		}
	}

	return out
}
