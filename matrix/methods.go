// SPDX-License-Identifier: MIT

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opMul      = "Mul"
	opIdentity = "Identity"
	opToSquare = "ToSquare"
)

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to the interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	// Stage 1: validate
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: allocate
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv int
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication a × b.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense (a.Rows × b.Cols).
// Stage 3 (Execute): triple loop, with a row-major fast path for *Dense.
// Complexity: O(r·n·c) time and O(r·c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: validate
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: allocate
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  int
		sum     int
	)
	// Stage 3: fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				rowA := i * aCols
				rowR := i * bCols
				for j = 0; j < bCols; j++ {
					sum = 0
					for k = 0; k < aCols; k++ {
						sum += da.data[rowA+k] * db.data[k*bCols+j]
					}
					res.data[rowR+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
