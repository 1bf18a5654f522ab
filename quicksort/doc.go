// Package quicksort sorts integer slices in place with the classic
// Lomuto-partition quicksort.
//
// Algorithm Outline:
//  1. Partition [low, high]: take a[high] as pivot, sweep j from low to
//     high-1 swapping every a[j] < pivot into a growing prefix, then swap
//     the pivot to the prefix boundary p.
//  2. After partitioning, a[low..p-1] < pivot ≤ a[p+1..high] and a[p] is
//     in its final sorted position.
//  3. Recurse on [low, p-1] and [p+1, high]; ranges of fewer than two
//     elements are already sorted.
//
// Properties:
//   - In place, no allocation, not stable.
//   - Deterministic pivot (last element). Already-sorted or reverse-sorted
//     input degrades to O(n²) comparisons and O(n) recursion depth; this is
//     the accepted cost of the textbook variant.
//
// Index ranges are inclusive. Sort and Partition reject ranges that fall
// outside the slice with ErrOutOfRange instead of touching memory they do
// not own; Sort additionally accepts the empty range low == high+1.
package quicksort
