// SPDX-License-Identifier: MIT

// Package fixed provides the storage shared by vectors and matrices.
//
// Array[N, E] holds exactly dim.Len[N]() elements of type E inside a fixed
// backing array. It is a plain value: assignment copies the elements, nothing
// is allocated on the heap, and the zero value is a valid all-zero Array.
//
// Access comes in two flavours:
//
//   - At/Set check the index and return ErrOutOfRange on misuse.
//   - Index/Ref trust the caller. Passing an index outside [0, Len()) is a
//     contract violation; it is not detected when the index is below
//     dim.MaxLen and panics like any Go array access above it.
package fixed

import (
	"iter"

	"github.com/katalvlaran/fixvec/dim"
)

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Array is a fixed-length sequence of N elements of type E.
// Slots at index >= Len() are never written and stay zero.
//
// Storage is always dim.MaxLen slots, so an Array[D2, float64] occupies 64
// bytes. The dimension type carries no element type, which is what lets a
// [M]T row and a [M]U column share the same M in a product.
type Array[N dim.Dim, E any] struct {
	data [dim.MaxLen]E
}

// Len returns the number of elements, fixed by N.
func (a Array[N, E]) Len() int {
	return dim.Len[N]()
}

// inRange reports whether idx addresses a live slot.
func (a Array[N, E]) inRange(idx int) bool {
	return idx >= 0 && idx < a.Len()
}

// At returns the element at idx or ErrOutOfRange.
func (a Array[N, E]) At(idx int) (E, error) {
	if !a.inRange(idx) {
		var zero E
		return zero, arrayErrorf(ctxAt, idx, ErrOutOfRange)
	}

	return a.data[idx], nil
}

// Set stores e at idx or returns ErrOutOfRange.
func (a *Array[N, E]) Set(idx int, e E) error {
	if !a.inRange(idx) {
		return arrayErrorf(ctxSet, idx, ErrOutOfRange)
	}
	a.data[idx] = e

	return nil
}

// Index returns the element at idx without checking it against Len().
func (a Array[N, E]) Index(idx int) E {
	return a.data[idx]
}

// Ref returns a pointer to the slot at idx without checking it against Len().
// The pointer is valid as long as the Array itself is.
func (a *Array[N, E]) Ref(idx int) *E {
	return &a.data[idx]
}

// Fill stores e in every slot.
func (a *Array[N, E]) Fill(e E) {
	n := a.Len()
	for i := 0; i < n; i++ {
		a.data[i] = e
	}
}

// Slice returns a mutable view over the Len() live slots.
// Writes through the slice are visible in a.
func (a *Array[N, E]) Slice() []E {
	return a.data[:a.Len()]
}

// All iterates over (index, element) pairs in index order.
func (a Array[N, E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		n := a.Len()
		for i := 0; i < n; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in index order.
func (a Array[N, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		n := a.Len()
		for i := 0; i < n; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}
