// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional mutable array of ints with a fixed shape.
// Users can implement it to provide custom storage layouts; Add and Mul
// accept any implementation and take a fast path for *Dense.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (int, error)

	// Set assigns v at (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
