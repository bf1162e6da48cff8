// SPDX-License-Identifier: MIT

package numeric

// Per-precision tolerances used by Equal.
const (
	// Epsilon32 is the relative tolerance for 4-byte floating-point kinds.
	Epsilon32 = 1.0e-5
	// Epsilon64 is the relative tolerance for 8-byte floating-point kinds.
	Epsilon64 = 1.0e-14
)

// Epsilon returns the comparison tolerance of T: Epsilon32 or Epsilon64 for
// floating-point kinds and zero for integer kinds (exact comparison).
func Epsilon[T Number]() T {
	if !IsFloat[T]() {
		return 0
	}
	e := Epsilon64
	if is32[T]() {
		e = Epsilon32
	}

	return T(e)
}

// Equal reports whether a and b are equal under the rules of T.
//
// Integer kinds compare exactly. Floating-point kinds compare with a tolerance:
//
//   - a == b is accepted at once (this also covers equal infinities);
//   - if either value is zero, or |a-b| is below the smallest normal value of T,
//     the absolute test |a-b| < eps*smallestNormal is used;
//   - otherwise the relative test |a-b| / (|a|+|b|) < eps is used, with the
//     denominator clamped to the largest finite value of T.
//
// NaN is never equal to anything, itself included.
func Equal[T Number](a, b T) bool {
	// Exact match, infinities included.
	if a == b {
		return true
	}
	if !IsFloat[T]() {
		return false
	}

	eps := Epsilon[T]()
	tiny := smallestNormal[T]()
	absA, absB := Abs(a), Abs(b)
	diff := Abs(a - b)

	// Near zero the relative error is meaningless.
	if a == 0 || b == 0 || diff < tiny {
		return diff < eps*tiny
	}

	return diff/min(absA+absB, largest[T]()) < eps
}
