// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/classics/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type, forcing the generic
// (non-*Dense) paths in Add and Mul.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// requireEqualRows asserts m holds exactly want.
func requireEqualRows(t *testing.T, want [][]int, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "at (%d,%d)", i, j)
		}
	}
}

// programOperands returns the operands used by the matrix programs:
// A[i][j]=i+j, B[i][j]=i-j for addition and A[i][j]=i+j+1 for multiplication.
func programOperands() (addA, addB, mulA matrix.Square) {
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			addA[i][j] = i + j
			addB[i][j] = i - j
			mulA[i][j] = i + j + 1
		}
	}

	return addA, addB, mulA
}
