// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/numeric"
)

// Vector2 is a two-element vector with named accessors.
// It embeds Vector, so every Vector method is available; free functions take
// the embedded value (v.Vector).
type Vector2[T numeric.Number] struct {
	Vector[dim.D2, T]
}

// Planar wraps v as a Vector2.
func Planar[T numeric.Number](v Vector[dim.D2, T]) Vector2[T] {
	return Vector2[T]{v}
}

// X returns the first element.
func (v Vector2[T]) X() T { return v.Index(0) }

// Y returns the second element.
func (v Vector2[T]) Y() T { return v.Index(1) }

// SetX replaces the first element.
func (v *Vector2[T]) SetX(x T) { *v.Ref(0) = x }

// SetY replaces the second element.
func (v *Vector2[T]) SetY(y T) { *v.Ref(1) = y }

// Rotate rotates v counter-clockwise by angle radians. The rotation is
// computed in float64 and converted back to T, so integral vectors truncate.
func (v *Vector2[T]) Rotate(angle float64) {
	x, y := float64(v.X()), float64(v.Y())
	sin, cos := math.Sincos(angle)
	v.SetX(T(x*cos - y*sin))
	v.SetY(T(x*sin + y*cos))
}

// Rotated returns a copy of v rotated by angle radians.
func (v Vector2[T]) Rotated(angle float64) Vector2[T] {
	v.Rotate(angle)
	return v
}

// Vector3 is a three-element vector with named accessors.
type Vector3[T numeric.Number] struct {
	Vector[dim.D3, T]
}

// Spatial wraps v as a Vector3.
func Spatial[T numeric.Number](v Vector[dim.D3, T]) Vector3[T] {
	return Vector3[T]{v}
}

// X returns the first element.
func (v Vector3[T]) X() T { return v.Index(0) }

// Y returns the second element.
func (v Vector3[T]) Y() T { return v.Index(1) }

// Z returns the third element.
func (v Vector3[T]) Z() T { return v.Index(2) }

// SetX replaces the first element.
func (v *Vector3[T]) SetX(x T) { *v.Ref(0) = x }

// SetY replaces the second element.
func (v *Vector3[T]) SetY(y T) { *v.Ref(1) = y }

// SetZ replaces the third element.
func (v *Vector3[T]) SetZ(z T) { *v.Ref(2) = z }

// Cross returns the right-handed cross product a × b.
func Cross[T numeric.Number](a, b Vector[dim.D3, T]) Vector[dim.D3, T] {
	ax, ay, az := a.Index(0), a.Index(1), a.Index(2)
	bx, by, bz := b.Index(0), b.Index(1), b.Index(2)

	return New3(ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx)
}
