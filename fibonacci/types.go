package fibonacci

import (
	"errors"
	"fmt"
)

// MaxIndex is the largest n for which F(n) fits in an int64.
// F(92) = 7540113804746346429, F(93) overflows.
const MaxIndex = 92

var (
	// ErrNegativeIndex is returned when n < 0.
	ErrNegativeIndex = errors.New("fibonacci: index must be non-negative")

	// ErrOverflow is returned when F(n) does not fit in an int64 (n > MaxIndex).
	ErrOverflow = errors.New("fibonacci: result overflows int64")

	// ErrUnknownStrategy is returned by Compute for an undefined Strategy.
	ErrUnknownStrategy = errors.New("fibonacci: unknown strategy")
)

// Strategy selects one of the three equivalent algorithms.
type Strategy int

const (
	// StrategyRecursive uses the direct exponential recurrence.
	StrategyRecursive Strategy = iota

	// StrategyIterative uses a single forward pass.
	StrategyIterative

	// StrategyTailRecursive uses the accumulator-passing form as a loop.
	StrategyTailRecursive
)

// String returns a stable, human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyRecursive:
		return "recursive"
	case StrategyIterative:
		return "iterative"
	case StrategyTailRecursive:
		return "tail-recursive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Strategies returns every defined Strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyRecursive, StrategyIterative, StrategyTailRecursive}
}
