// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is the panic value raised when an integral value is divided
// by zero. It models hardware integer-division traps.
var ErrDivideByZero = errors.New("numeric: integer divide by zero")

// Op is an element-wise arithmetic operator.
type Op uint8

// Supported operators.
const (
	Add Op = iota // a + b
	Sub           // a - b
	Mul           // a * b
	Div           // a / b
)

var opNames = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/"}

// String returns the operator symbol.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Apply combines a and b with op and returns a value of the left type T.
// b is converted to T before the operator runs (float to integer conversion
// truncates toward zero).
//
// Apply panics with ErrDivideByZero when op is Div, T is an integer kind and
// the converted divisor is zero.
func Apply[T, U Number](op Op, a T, b U) T {
	v := T(b)
	switch op {
	case Add:
		return a + v
	case Sub:
		return a - v
	case Mul:
		return a * v
	case Div:
		CheckDivisor(v)
		return a / v
	default:
		panic(fmt.Sprintf("numeric: unknown operator %s", op))
	}
}

// CheckDivisor panics with ErrDivideByZero if d is an integral zero.
// Floating-point zero is accepted and yields ±Inf or NaN on division.
func CheckDivisor[T Number](d T) {
	if d == 0 && !IsFloat[T]() {
		panic(ErrDivideByZero)
	}
}
