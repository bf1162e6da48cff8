// SPDX-License-Identifier: MIT

package vector

import (
	"slices"
	"sort"
)

// Flip reverses the elements of v in place: (1,2,3) becomes (3,2,1).
func (v *Vector[N, T]) Flip() {
	slices.Reverse(v.Slice())
}

// Flipped returns a reversed copy of v.
func (v Vector[N, T]) Flipped() Vector[N, T] {
	v.Flip()
	return v
}

// Sort sorts v in place in ascending order.
func (v *Vector[N, T]) Sort() {
	v.SortFunc(func(a, b T) bool { return a < b })
}

// SortFunc sorts v in place using less, which must be a strict weak order.
func (v *Vector[N, T]) SortFunc(less func(a, b T) bool) {
	s := v.Slice()
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
}

// Sorted returns an ascending copy of v.
func (v Vector[N, T]) Sorted() Vector[N, T] {
	v.Sort()
	return v
}

// SortedFunc returns a copy of v sorted by less.
func (v Vector[N, T]) SortedFunc(less func(a, b T) bool) Vector[N, T] {
	v.SortFunc(less)
	return v
}
