// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/classics/matrix"
)

// ExampleAddInto reproduces the matrix-add program: A[i][j]=i+j,
// B[i][j]=i-j, print C[3][3].
func ExampleAddInto() {
	var a, b, c matrix.Square
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			a[i][j] = i + j
			b[i][j] = i - j
		}
	}
	matrix.AddInto(&a, &b, &c)
	fmt.Println(c[matrix.N-1][matrix.N-1])
	// Output:
	// 6
}

// ExampleMulInto reproduces the matrix-multiply program: A[i][j]=i+j+1
// times the identity, print C[3][3].
func ExampleMulInto() {
	var a, c matrix.Square
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			a[i][j] = i + j + 1
		}
	}
	id := matrix.IdentitySquare()
	matrix.MulInto(&a, &id, &c)
	fmt.Println(c[matrix.N-1][matrix.N-1])
	// Output:
	// 7
}

// ExampleMul shows the runtime shape check on Dense operands.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]int{{1, 2, 3}})
	b, _ := matrix.NewDenseFrom([][]int{{1, 2, 3}})

	_, err := matrix.Mul(a, b)
	fmt.Println(err)
	// Output:
	// Mul: ValidateMulCompatible: matrix: dimension mismatch
}
