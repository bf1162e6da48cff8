// SPDX-License-Identifier: MIT

// Package vector provides Vector[N, T], a fixed-length numeric vector with
// value semantics.
//
// The length N is a dimension type from package dim, so vectors of different
// lengths are different types and never mix by accident. The element type T
// is any integer or floating-point kind.
//
// Arithmetic between vectors (or a vector and a scalar) of different element
// types is left-anchored: the result always has the element type of the left
// operand, and the right operand is converted into it element by element.
// Reductions that are sensitive to precision (Dot, Mean, Std, Length) default
// to T and have ...As variants taking an explicit accumulation type:
//
//	a := vector.New2(1, 2)
//	b := vector.New2[float32](3.5, 4.5)
//	vector.DotAs[float32](a, b) // 12.5
//
// Equality between floating-point vectors is tolerant, see numeric.Equal.
//
// Ref[N, T] is the aliasing variant: it holds pointers to values owned by
// someone else. Vector2 and Vector3 add named accessors for the common small
// dimensions.
package vector
