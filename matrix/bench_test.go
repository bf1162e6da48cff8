package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixvec/dim"
	"github.com/katalvlaran/fixvec/matrix"
	"github.com/katalvlaran/fixvec/vector"
)

var (
	sinkMat matrix.Matrix[dim.D4, dim.D4, float64]
	sinkVec vector.Vector[dim.D4, float64]
	sinkDet float64
)

func bench44() matrix.Matrix[dim.D4, dim.D4, float64] {
	return matrix.Of4(
		vector.New4(4.0, 1.0, 0.5, 2.0),
		vector.New4(1.0, 3.0, 0.0, 1.0),
		vector.New4(0.5, 0.0, 2.0, 0.0),
		vector.New4(2.0, 1.0, 0.0, 5.0),
	)
}

// BenchmarkDot measures a 4×4 by 4×4 product.
func BenchmarkDot(b *testing.B) {
	m := bench44()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat = matrix.Dot(m, m)
	}
}

// BenchmarkDotVec measures a 4×4 by 4 product.
func BenchmarkDotVec(b *testing.B) {
	m := bench44()
	v := vector.New4(1.0, 2.0, 3.0, 4.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec = m.DotVec(v)
	}
}

// BenchmarkAdd measures an element-wise mixed-type sum.
func BenchmarkAdd(b *testing.B) {
	m := bench44()
	n := matrix.Ones[dim.D4, dim.D4, int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat = matrix.Add(m, n)
	}
}

// BenchmarkDet measures the gonum-backed determinant.
func BenchmarkDet(b *testing.B) {
	m := bench44()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkDet = matrix.Det(m)
	}
}
