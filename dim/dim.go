// SPDX-License-Identifier: MIT

// Package dim encodes container dimensions as types.
//
// Go has no constant type parameters, so every supported length is a distinct
// empty struct type. A Vector[dim.D3, T] and a Vector[dim.D2, T] are different
// types, which turns every shape mismatch into a compile error.
//
// The Dim constraint is sealed: only D1..D8 satisfy it. There is no D0, so a
// zero-length container cannot be named.
package dim

// MaxLen is the largest supported dimension and the capacity of every
// fixed backing array in this module.
const MaxLen = 8

// Dim is the sealed set of dimension types.
type Dim interface {
	D1 | D2 | D3 | D4 | D5 | D6 | D7 | D8

	// Len returns the length this dimension stands for.
	Len() int
}

// D1 is the dimension of length 1.
type D1 struct{}

// D2 is the dimension of length 2.
type D2 struct{}

// D3 is the dimension of length 3.
type D3 struct{}

// D4 is the dimension of length 4.
type D4 struct{}

// D5 is the dimension of length 5.
type D5 struct{}

// D6 is the dimension of length 6.
type D6 struct{}

// D7 is the dimension of length 7.
type D7 struct{}

// D8 is the dimension of length 8.
type D8 struct{}

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }

// Len returns the length carried by the dimension type N.
func Len[N Dim]() int {
	var n N
	return n.Len()
}
