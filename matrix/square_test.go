// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/classics/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInto_ProgramChecksum(t *testing.T) {
	a, b, _ := programOperands()
	var c matrix.Square

	matrix.AddInto(&a, &b, &c)

	assert.Equal(t, 6, c[matrix.N-1][matrix.N-1], "C[3][3] = (3+3)+(3-3)")
	// i+j + i-j = 2i for every cell
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			assert.Equal(t, 2*i, c[i][j])
		}
	}
}

func TestMulInto_ProgramChecksum(t *testing.T) {
	_, _, a := programOperands()
	id := matrix.IdentitySquare()
	var c matrix.Square

	matrix.MulInto(&a, &id, &c)

	assert.Equal(t, 7, c[matrix.N-1][matrix.N-1])
	assert.Equal(t, a, c, "A × I must equal A")
}

// TestSquare_RandomProperties checks A+B element-wise and A×I == I×A == A
// over a fixed-seed sample of matrices.
func TestSquare_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	id := matrix.IdentitySquare()

	for round := 0; round < 50; round++ {
		var a, b, sum, left, right matrix.Square
		for i := 0; i < matrix.N; i++ {
			for j := 0; j < matrix.N; j++ {
				a[i][j] = rng.Intn(201) - 100
				b[i][j] = rng.Intn(201) - 100
			}
		}

		matrix.AddInto(&a, &b, &sum)
		for i := 0; i < matrix.N; i++ {
			for j := 0; j < matrix.N; j++ {
				require.Equal(t, a[i][j]+b[i][j], sum[i][j])
			}
		}

		matrix.MulInto(&a, &id, &right)
		matrix.MulInto(&id, &a, &left)
		require.Equal(t, a, right)
		require.Equal(t, a, left)
	}
}

func TestMulInto_AgreesWithDense(t *testing.T) {
	var a, b, c matrix.Square
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			a[i][j] = i*matrix.N + j
			b[i][j] = j - 2*i
		}
	}
	matrix.MulInto(&a, &b, &c)

	d, err := matrix.Mul(a.Dense(), b.Dense())
	require.NoError(t, err)
	got, err := matrix.ToSquare(d)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestMulInto_Aliasing(t *testing.T) {
	a := matrix.Square{{1, 2, 0, 0}, {3, 4, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	want := matrix.Square{{7, 10, 0, 0}, {15, 22, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}

	matrix.MulInto(&a, &a, &a) // square in place
	assert.Equal(t, want, a)
}

func TestToSquare_Errors(t *testing.T) {
	_, err := matrix.ToSquare(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	small, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	_, err = matrix.ToSquare(small)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSquare_DenseRoundTrip(t *testing.T) {
	_, _, a := programOperands()
	back, err := matrix.ToSquare(hide{a.Dense()})
	require.NoError(t, err)
	assert.Equal(t, a, back)
}
