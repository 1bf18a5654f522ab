package popcount

import (
	"errors"
	"fmt"
)

// Width is the bit width of the counted word.
const Width = 32

// ErrUnknownMethod is returned by Count for an undefined Method.
var ErrUnknownMethod = errors.New("popcount: unknown method")

// Method selects one of the four algorithms.
type Method int

const (
	// MethodNaive scans bit by bit.
	MethodNaive Method = iota
	// MethodKernighan clears the lowest set bit until zero.
	MethodKernighan
	// MethodLookup sums a nibble table.
	MethodLookup
	// MethodParallel folds bit-group sums (SWAR).
	MethodParallel
)

// String returns a stable, human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodNaive:
		return "naive"
	case MethodKernighan:
		return "kernighan"
	case MethodLookup:
		return "lookup"
	case MethodParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods returns every defined Method in declaration order.
func Methods() []Method {
	return []Method{MethodNaive, MethodKernighan, MethodLookup, MethodParallel}
}
