package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fixvec/matrix"
	"github.com/katalvlaran/fixvec/vector"
)

// ExampleDot multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleDot() {
	a := matrix.Of2(vector.New3(1, 2, 3), vector.New3(4, 5, 6))
	b := matrix.Of3(vector.New2(3, 4), vector.New2(5, 6), vector.New2(7, 8))

	fmt.Println(matrix.Dot(a, b))
	// Output:
	// [ [ 34, 40 ],
	//   [ 79, 94 ] ]
}

// ExampleMatrix_Transpose swaps rows and columns.
func ExampleMatrix_Transpose() {
	m := matrix.Of2(vector.New3(1, 2, 3), vector.New3(4, 5, 6))
	fmt.Println(m.Transpose())
	// Output:
	// [ [ 1, 4 ],
	//   [ 2, 5 ],
	//   [ 3, 6 ] ]
}

// ExampleMeanAs averages an integer matrix in float64.
func ExampleMeanAs() {
	m := matrix.Of2(vector.New2(1, 2), vector.New2(3, 5))
	fmt.Println(m.Mean(), matrix.MeanAs[float64](m))
	// Output: 2 2.75
}
