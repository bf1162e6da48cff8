package vector_test

import (
	"testing"

	"github.com/katalvlaran/fixvec/numeric"
	"github.com/katalvlaran/fixvec/vector"
	"github.com/stretchr/testify/require"
)

// TestEqualSameType covers exact and tolerant element comparison.
func TestEqualSameType(t *testing.T) {
	require.True(t, vector.New2(1, 2).Equal(vector.New2(1, 2)))  // identical ints
	require.False(t, vector.New2(1, 2).Equal(vector.New2(1, 3))) // one slot differs

	eps := numeric.Epsilon[float64]()
	a := vector.New2(1.0, 2.0)
	b := vector.New2(1.0+0.4*eps, 2.0)
	require.True(t, a.Equal(b)) // within tolerance

	c := vector.New2(1.0, 2.0+10*2*eps)
	require.False(t, a.Equal(c)) // outside tolerance
}

// TestEqualMixedTypes verifies comparison in both element types.
func TestEqualMixedTypes(t *testing.T) {
	i := vector.New2(1, 2)
	require.True(t, vector.Equal(i, vector.New2(1.0, 2.0)))    // same values, different types
	require.True(t, vector.Equal(vector.New2(1.0, 2.0), i))    // symmetric
	require.False(t, vector.Equal(i, vector.New2(1.5, 2.0)))   // 1.5 != 1 in float64
	require.False(t, vector.Equal(vector.New2(1.5, 2.0), i))   // and the other way round
	require.True(t, vector.NotEqual(i, vector.New2(1.5, 2.0))) // negation
	require.False(t, vector.NotEqual(i, vector.New2[uint8](1, 2)))

	f32 := vector.New2[float32](0.1, 0.2)
	f64 := vector.New2(0.1, 0.2)
	require.False(t, vector.Equal(f32, f64))                         // float32 rounding is visible in float64
	require.True(t, vector.Equal(f32, vector.Convert[float32](f64))) // equal once both are float32
}
