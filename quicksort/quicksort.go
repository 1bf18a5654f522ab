package quicksort

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when [low, high] is not inside the slice.
var ErrOutOfRange = errors.New("quicksort: index range out of bounds")

// rangeErrorf tags ErrOutOfRange with the offending range and length.
func rangeErrorf(op string, low, high, n int) error {
	return fmt.Errorf("%s[%d,%d] on len %d: %w", op, low, high, n, ErrOutOfRange)
}

// Sort sorts a[low..high] (inclusive) in place.
//
// The range must satisfy 0 ≤ low ≤ high+1 and high < len(a), else
// ErrOutOfRange is returned and a is left untouched. low == high+1 is the
// empty range (Sort(a, 0, len(a)-1) on an empty slice); it and single
// element ranges are no-ops.
func Sort(a []int, low, high int) error {
	if low < 0 || high >= len(a) || low > high+1 {
		return rangeErrorf("Sort", low, high, len(a))
	}
	quicksort(a, low, high)

	return nil
}

// SortAll sorts the whole slice in place.
func SortAll(a []int) {
	quicksort(a, 0, len(a)-1)
}

// Partition performs one Lomuto partition of a[low..high] and returns the
// pivot's final index. It requires 0 ≤ low ≤ high < len(a).
func Partition(a []int, low, high int) (int, error) {
	if low < 0 || low > high || high >= len(a) {
		return 0, rangeErrorf("Partition", low, high, len(a))
	}

	return partition(a, low, high), nil
}

// quicksort is the unchecked recursion; bounds are validated by callers.
func quicksort(a []int, low, high int) {
	if low >= high {
		return
	}
	p := partition(a, low, high)
	quicksort(a, low, p-1)
	quicksort(a, p+1, high)
}

// partition uses a[high] as pivot; i marks the end of the "< pivot" prefix.
func partition(a []int, low, high int) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]

	return i + 1
}
