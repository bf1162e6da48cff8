// Package fixvec is a small library of fixed-dimension numeric vectors and
// matrices for Go: values with their shape in the type, no heap allocation,
// and arithmetic that mixes element types predictably.
//
// What is in the box?
//
//   - Vectors: Vector[N, T] with element-wise and scalar arithmetic,
//     reductions (Min, Max, Sum, Mean, Std, Length, Dot), sorting and
//     tolerant equality, plus Ref[N, T] for vectors that alias caller-owned
//     values, and Vector2/Vector3 helpers for 2D rotation and 3D cross products.
//   - Matrices: Matrix[N, M, T] built from N row vectors, with the same
//     element-wise API, matrix and matrix-vector products, Transpose, Eye,
//     Diag and Det.
//   - Predictable promotion: the left operand decides the result type; the
//     ...As[U] variants pick the accumulation type explicitly.
//
// Shapes are types. Go has no constant type parameters, so lengths are
// written with the dimension types of package dim:
//
//	v := vector.New3(1.0, 2.0, 3.0)                     // Vector[dim.D3, float64]
//	m := matrix.Eye[dim.D3, float64]()                  // Matrix[dim.D3, dim.D3, float64]
//	w := m.DotVec(v)                                    // compiles: inner dims agree
//	u := matrix.DotVecAs[float32](m, vector.New2(1, 2)) // does not compile: D3 vs D2
//
// Under the hood the module is organized as:
//
//	dim/      phantom dimension types D1..D8 and the sealed Dim constraint
//	numeric/  element constraint, tolerant equality, the promotion rule
//	fixed/    Array[N, E], the bounded storage every container embeds
//	vector/   Vector, Ref, Vector2, Vector3
//	matrix/   Matrix and its products
//
// Errors are sentinel values matched with errors.Is (fixed.ErrOutOfRange,
// fixed.ErrLengthMismatch, vector.ErrNilBinding). Integer division by zero
// panics with numeric.ErrDivideByZero before the destination is modified.
//
//	go get github.com/katalvlaran/fixvec
package fixvec
