package fibonacci

import "fmt"

// Operation name constants used to tag wrapped errors.
const (
	opRecursive     = "Recursive"
	opIterative     = "Iterative"
	opTailRecursive = "TailRecursive"
	opCompute       = "Compute"
)

// fibErrorf wraps a sentinel with the operation tag and offending index.
func fibErrorf(op string, n int, err error) error {
	return fmt.Errorf("%s(%d): %w", op, n, err)
}

// validateIndex checks 0 ≤ n ≤ MaxIndex.
func validateIndex(op string, n int) error {
	if n < 0 {
		return fibErrorf(op, n, ErrNegativeIndex)
	}
	if n > MaxIndex {
		return fibErrorf(op, n, ErrOverflow)
	}

	return nil
}

// Recursive returns F(n) using the direct recurrence F(n) = F(n-1) + F(n-2).
//
// Complexity: O(φⁿ) time, O(n) stack. Intended as a correctness oracle for
// small n; the index is still bounded by MaxIndex.
func Recursive(n int) (int64, error) {
	if err := validateIndex(opRecursive, n); err != nil {
		return 0, err
	}

	return recurse(n), nil
}

// recurse is the unchecked recurrence; n must already be validated.
func recurse(n int) int64 {
	if n <= 1 {
		return int64(n)
	}

	return recurse(n-1) + recurse(n-2)
}

// Iterative returns F(n) with a single forward pass.
// Stage 1 (Validate): reject n < 0 and n > MaxIndex.
// Stage 2 (Execute): slide the pair (a, b) = (F(i-2), F(i-1)) up to n.
// Complexity: O(n) time, O(1) memory.
func Iterative(n int) (int64, error) {
	if err := validateIndex(opIterative, n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return int64(n), nil
	}

	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, nil
}

// TailRecursive returns F(n) using the accumulator recurrence
//
//	step(0, a, b) = a
//	step(1, a, b) = b
//	step(k, a, b) = step(k-1, b, a+b)
//
// started from step(n, 0, 1). Go does not eliminate tail calls, so the
// recurrence is unrolled into a loop over k; stack usage is O(1).
func TailRecursive(n int) (int64, error) {
	if err := validateIndex(opTailRecursive, n); err != nil {
		return 0, err
	}

	var a, b int64 = 0, 1
	for k := n; ; k-- {
		switch k {
		case 0:
			return a, nil
		case 1:
			return b, nil
		}
		a, b = b, a+b
	}
}

// Compute dispatches to the algorithm selected by s.
func Compute(n int, s Strategy) (int64, error) {
	switch s {
	case StrategyRecursive:
		return Recursive(n)
	case StrategyIterative:
		return Iterative(n)
	case StrategyTailRecursive:
		return TailRecursive(n)
	default:
		return 0, fmt.Errorf("%s: %v: %w", opCompute, s, ErrUnknownStrategy)
	}
}
