// Package fibonacci computes the n-th Fibonacci number with three classic
// strategies that must always agree.
//
// 🚀 What is the Fibonacci sequence?
//
//	F(0) = 0, F(1) = 1, F(n) = F(n-1) + F(n-2) for n ≥ 2:
//	  0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, ...
//
// ✨ Strategies:
//   - Recursive     - the direct recurrence; O(φⁿ) time, used as an oracle
//     for small n.
//   - Iterative     - one forward pass keeping the last two values;
//     O(n) time, O(1) memory.
//   - TailRecursive - the accumulator form step(n, a, b) → step(n-1, b, a+b),
//     executed as an explicit loop so stack usage stays constant.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/classics/fibonacci"
//
//	v, err := fibonacci.Iterative(20) // 6765
//	if err != nil {
//	  // ErrNegativeIndex or ErrOverflow
//	}
//
// Integer width & overflow:
//
//	All strategies return int64. F(92) is the largest Fibonacci number that
//	fits, so any n > MaxIndex is rejected with ErrOverflow before any work
//	is done. Negative n is rejected with ErrNegativeIndex.
//
// See example_test.go for runnable examples.
package fibonacci
