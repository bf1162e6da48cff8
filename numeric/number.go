// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of signed and unsigned integer kinds.
type Integer = constraints.Integer

// Float is the set of floating-point kinds.
type Float = constraints.Float

// Number is the set of element types a container may hold.
type Number interface {
	Integer | Float
}

// IsFloat reports whether T is a floating-point kind.
// The check also classifies named types such as `type Meters float64`.
func IsFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// is32 reports whether T occupies four bytes (float32 for floating kinds).
func is32[T Number]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// smallestNormal returns the smallest positive normal value of a float kind.
func smallestNormal[T Number]() T {
	v := 0x1p-1022
	if is32[T]() {
		v = 0x1p-126
	}

	return T(v)
}

// largest returns the largest finite value of a float kind.
func largest[T Number]() T {
	v := math.MaxFloat64
	if is32[T]() {
		v = math.MaxFloat32
	}

	return T(v)
}

// Abs returns |x|. For unsigned kinds it returns x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x, computed in float64 and converted to T.
// Integral results truncate toward zero.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}
