// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/fixed"
	"github.com/katalvlaran/fixvec/numeric"
)

// ErrNilBinding indicates that a Ref was asked to bind a nil pointer.
var ErrNilBinding = errors.New("vector: nil binding")

// Ref is the aliasing variant of Vector: each slot is a binding to a value
// owned elsewhere. Reads and writes go through the bindings, so several Refs
// (or plain variables) may observe the same storage.
//
// A Ref owns only its bindings. It never allocates, frees or copies the
// referenced values, and it must not outlive them. Copying a Ref copies the
// bindings, not the values.
type Ref[N dim.Dim, T numeric.Number] struct {
	fixed.Array[N, *T]
}

// Bind binds a Ref to ptrs. It returns fixed.ErrLengthMismatch unless
// len(ptrs) == dim.Len[N]() and ErrNilBinding if any pointer is nil.
func Bind[N dim.Dim, T numeric.Number](ptrs ...*T) (Ref[N, T], error) {
	var r Ref[N, T]
	if len(ptrs) != r.Len() {
		return r, fixed.LengthError("vector.Bind", r.Len(), len(ptrs))
	}
	for i, p := range ptrs {
		if p == nil {
			return Ref[N, T]{}, fmt.Errorf("vector.Bind(%d): %w", i, ErrNilBinding)
		}
		*r.Ref(i) = p
	}

	return r, nil
}

// Bind2 binds x and y. A nil pointer is a programmer error and panics.
func Bind2[T numeric.Number](x, y *T) Ref[dim.D2, T] {
	return mustBind[dim.D2](x, y)
}

// Bind3 binds x, y and z. A nil pointer is a programmer error and panics.
func Bind3[T numeric.Number](x, y, z *T) Ref[dim.D3, T] {
	return mustBind[dim.D3](x, y, z)
}

func mustBind[N dim.Dim, T numeric.Number](ptrs ...*T) Ref[N, T] {
	r, err := Bind[N](ptrs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Load returns a snapshot of the referenced values.
func (r Ref[N, T]) Load() Vector[N, T] {
	var v Vector[N, T]
	for i, p := range r.All() {
		*v.Ref(i) = *p
	}
	return v
}

// Store writes v through the bindings.
func (r Ref[N, T]) Store(v Vector[N, T]) {
	for i, p := range r.All() {
		*p = v.Index(i)
	}
}

// Get returns the value referenced by slot idx or fixed.ErrOutOfRange.
func (r Ref[N, T]) Get(idx int) (T, error) {
	p, err := r.At(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Put writes x to the value referenced by slot idx or returns
// fixed.ErrOutOfRange.
func (r Ref[N, T]) Put(idx int, x T) error {
	p, err := r.At(idx)
	if err != nil {
		return err
	}
	*p = x

	return nil
}

// String formats the referenced values like Vector.String.
func (r Ref[N, T]) String() string {
	return r.Load().String()
}

// ApplyRef combines each referenced value with the matching src element and
// writes the result through its binding, slot by slot, with the same rules as
// Apply. Bindings that share storage see each other's updates in index order.
func ApplyRef[N dim.Dim, T, U numeric.Number](r Ref[N, T], op numeric.Op, src Vector[N, U]) {
	if op == numeric.Div {
		for x := range src.Values() {
			numeric.CheckDivisor(T(x))
		}
	}
	for i, p := range r.All() {
		*p = numeric.Apply(op, *p, src.Index(i))
	}
}

// ApplyRefScalar broadcasts s over the referenced values slot by slot, with
// the same rules as ApplyScalar.
func ApplyRefScalar[N dim.Dim, T, S numeric.Number](r Ref[N, T], op numeric.Op, s S) {
	if op == numeric.Div {
		numeric.CheckDivisor(T(s))
	}
	for p := range r.Values() {
		*p = numeric.Apply(op, *p, s)
	}
}
