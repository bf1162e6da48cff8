package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixvec/numeric"
	"github.com/stretchr/testify/require"
)

// TestApplyLeftAnchored verifies the result always has the left operand's type.
func TestApplyLeftAnchored(t *testing.T) {
	var f float32 = 1.5
	var i = 2

	require.Equal(t, float32(3.5), numeric.Apply(numeric.Add, f, i)) // int converted to float32
	require.Equal(t, 3, numeric.Apply(numeric.Add, i, f))            // 1.5 truncated to 1
	require.Equal(t, 2, numeric.Apply(numeric.Mul, i, 1.9))          // 1.9 truncated to 1
	require.Equal(t, -1, numeric.Apply(numeric.Sub, 0, 1.7))         // truncation toward zero
	require.Equal(t, 1.25, numeric.Apply(numeric.Div, 5.0, 4))       // float division
	require.Equal(t, 1, numeric.Apply(numeric.Div, 5, 4))            // integer division
}

// TestApplyIntegerDivideByZero verifies integral division by zero panics.
func TestApplyIntegerDivideByZero(t *testing.T) {
	require.PanicsWithError(t, numeric.ErrDivideByZero.Error(), func() {
		numeric.Apply(numeric.Div, 7, 0) // int / 0
	})
	require.PanicsWithError(t, numeric.ErrDivideByZero.Error(), func() {
		numeric.Apply(numeric.Div, 7, 0.5) // 0.5 converts to int 0 first
	})
}

// TestApplyFloatDivideByZero verifies IEEE semantics for floating-point zero.
func TestApplyFloatDivideByZero(t *testing.T) {
	require.NotPanics(t, func() {
		got := numeric.Apply(numeric.Div, 1.0, 0)
		require.True(t, math.IsInf(got, 1)) // 1/0 == +Inf
	})
	got := numeric.Apply(numeric.Div, 0.0, 0.0)
	require.True(t, math.IsNaN(got)) // 0/0 == NaN
}

// TestOpString checks the operator symbols.
func TestOpString(t *testing.T) {
	require.Equal(t, "+", numeric.Add.String())                      // add
	require.Equal(t, "-", numeric.Sub.String())                      // sub
	require.Equal(t, "*", numeric.Mul.String())                      // mul
	require.Equal(t, "/", numeric.Div.String())                      // div
	require.Equal(t, "Op(9)", numeric.Op(9).String())                // unknown
	require.Panics(t, func() { numeric.Apply(numeric.Op(9), 1, 1) }) // unknown op is a programmer error
}

// TestAbsSqrt checks the small math helpers.
func TestAbsSqrt(t *testing.T) {
	require.Equal(t, 3, numeric.Abs(-3))                     // signed
	require.Equal(t, uint(3), numeric.Abs(uint(3)))          // unsigned passthrough
	require.Equal(t, 2.5, numeric.Abs(-2.5))                 // float
	require.Equal(t, 3, numeric.Sqrt(10))                    // integral sqrt truncates
	require.InDelta(t, math.Sqrt2, numeric.Sqrt(2.0), 1e-15) // float sqrt
}
