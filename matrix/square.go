// SPDX-License-Identifier: MIT

package matrix

// N is the fixed dimension of Square.
const N = 4

// Square is a fixed N×N integer matrix. The dimension is part of the type,
// so operands of AddInto and MulInto always match.
type Square [N][N]int

// AddInto stores a + b into c. All three are caller-owned and non-nil; c may
// alias a or b. Nothing is allocated.
func AddInto(a, b, c *Square) {
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
}

// MulInto stores a × b into c using the plain i→j→k triple loop.
// c may alias a or b: the product is accumulated in a stack-local Square
// and copied out at the end.
func MulInto(a, b, c *Square) {
	var out Square
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			sum := 0
			for k := 0; k < N; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	*c = out
}

// IdentitySquare returns the N×N identity.
func IdentitySquare() Square {
	var s Square
	for i := 0; i < N; i++ {
		s[i][i] = 1
	}

	return s
}

// Dense copies s into a new N×N Dense.
func (s *Square) Dense() *Dense {
	d := &Dense{r: N, c: N, data: make([]int, N*N)}
	for i := 0; i < N; i++ {
		copy(d.data[i*N:(i+1)*N], s[i][:])
	}

	return d
}

// ToSquare copies m into a Square.
// Returns ErrNilMatrix for nil input and ErrDimensionMismatch unless m is N×N.
func ToSquare(m Matrix) (Square, error) {
	var s Square
	if err := ValidateNotNil(m); err != nil {
		return s, matrixErrorf(opToSquare, err)
	}
	if m.Rows() != N || m.Cols() != N {
		return s, matrixErrorf(opToSquare, ErrDimensionMismatch)
	}
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return s, matrixErrorf(opToSquare, err)
			}
			s[i][j] = v
		}
	}

	return s, nil
}
