// SPDX-License-Identifier: MIT

// Package numeric holds the element-level rules shared by every container in
// this module.
//
// It answers three questions for a pair of element values:
//
//   - Which types are allowed: Number (every integer and floating-point kind).
//   - When are two values equal: Equal, exact for integers and tolerant for
//     floating-point types (relative error with an absolute fallback near zero).
//   - How are two values of possibly different types combined: Apply converts
//     the right operand into the left operand's type and then applies the
//     operator there. The left type always wins; there is no "common type".
//
// Integral division by zero is a contract violation and panics with
// ErrDivideByZero. Floating-point division by zero follows IEEE 754.
package numeric
