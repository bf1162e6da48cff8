package vector_test

import (
	"testing"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/vector"
)

var (
	sinkVec   vector.Vector[dim.D4, float64]
	sinkFloat float64
	sinkBool  bool
)

// BenchmarkAdd measures a mixed-type element-wise addition.
func BenchmarkAdd(b *testing.B) {
	a := vector.New4(1.0, 2.0, 3.0, 4.0)
	c := vector.New4(4, 3, 2, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec = vector.Add(a, c)
	}
}

// BenchmarkDot measures the same-type inner product.
func BenchmarkDot(b *testing.B) {
	a := vector.New4(1.0, 2.0, 3.0, 4.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = a.Dot(a)
	}
}

// BenchmarkEqual measures tolerant equality on floats.
func BenchmarkEqual(b *testing.B) {
	a := vector.New4(1.0, 2.0, 3.0, 4.0)
	c := vector.AddScalar(a, 1e-16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = a.Equal(c)
	}
}

// BenchmarkSorted measures copying sort.
func BenchmarkSorted(b *testing.B) {
	a := vector.New4(4.0, 1.0, 3.0, 2.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec = a.Sorted()
	}
}
