// Package checksum reproduces the fixed "compute and print" programs of the
// classics library. Each Scenario runs one algorithm family on a built-in
// input and folds every result into a single integer.
//
// Scenarios and their expected outputs:
//
//	fibonacci      Σ over strategies of F(20)                        20295
//	linked-list    sum + count of the list 1→2→3→4→5                   20
//	matrix-add     C[3][3] of (i+j) + (i-j) on 4×4                      6
//	matrix-mult    C[3][3] of (i+j+1) × I on 4×4                        7
//	popcount       Σ over methods and five reference words             372
//	quicksort      Σ of the sorted 15-element array                    624
//	string-search  Σ of first offsets of fox, lazy, cat (-1)            50
//
// A Runner executes scenarios by name and can Verify all of them at once;
// it logs through an injected *zap.Logger (a no-op logger by default).
package checksum
