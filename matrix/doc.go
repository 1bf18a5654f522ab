// SPDX-License-Identifier: MIT

// Package matrix provides dense integer matrix addition and multiplication
// in two flavors.
//
// What & Why:
//
//	Square is a fixed N×N array (N = 4). Its dimension is part of the type,
//	so AddInto and MulInto cannot be handed mismatched operands: the
//	dimension invariant is enforced by the compiler. The caller owns and
//	passes all three buffers; nothing is allocated.
//
//	Dense is a row-major r×c matrix whose shape is fixed at construction.
//	Add and Mul check shapes up front and fail fast with
//	ErrDimensionMismatch instead of reading past a buffer.
//
// Algorithms:
//
//	Add: C[i][j] = A[i][j] + B[i][j]
//	Mul: C[i][j] = Σ_k A[i][k]·B[k][j]   (plain i→j→k triple loop, no tiling)
//
// Complexity:
//
//	Add O(r·c); Mul O(r·n·c). At/Set O(1) with bounds checks.
//
// Integer overflow is unchecked two's-complement wraparound, as for any Go int.
package matrix
