package vector_test

import (
	"testing"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/vector"
	"github.com/stretchr/testify/require"
)

// TestFlip covers in-place and copying reversal.
func TestFlip(t *testing.T) {
	v := vector.New3(1, 2, 3)
	require.Equal(t, vector.New3(3, 2, 1), v.Flipped()) // copy reversed
	require.Equal(t, vector.New3(1, 2, 3), v)           // receiver untouched

	v.Flip()
	require.Equal(t, vector.New3(3, 2, 1), v) // in place

	require.Equal(t, v, v.Flipped().Flipped()) // round trip
}

// TestSort covers ascending and comparator-driven sorting.
func TestSort(t *testing.T) {
	v := vector.New4(3.5, -1.0, 2.0, 0.5)
	require.Equal(t, vector.New4(-1.0, 0.5, 2.0, 3.5), v.Sorted()) // ascending copy
	require.Equal(t, vector.New4(3.5, -1.0, 2.0, 0.5), v)          // receiver untouched

	desc := func(a, b float64) bool { return a > b }
	require.Equal(t, vector.New4(3.5, 2.0, 0.5, -1.0), v.SortedFunc(desc)) // descending copy

	v.Sort()
	require.Equal(t, vector.New4(-1.0, 0.5, 2.0, 3.5), v) // in place

	v.SortFunc(desc)
	require.Equal(t, vector.New4(3.5, 2.0, 0.5, -1.0), v) // in place, custom order
}

// TestSortIdempotent ensures sorting twice equals sorting once.
func TestSortIdempotent(t *testing.T) {
	cases := []vector.Vector[dim.D4, int]{
		vector.New4(4, 3, 2, 1),
		vector.New4(1, 1, 1, 1),
		vector.New4(0, -5, 5, 0),
	}
	for _, v := range cases {
		require.Equal(t, v.Sorted(), v.Sorted().Sorted()) // idempotent
		require.Equal(t, v, v.Flipped().Flipped())        // flip round trip
	}
}
