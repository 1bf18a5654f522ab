package popcount

import "fmt"

// nibbleBits[v] is the number of set bits in the 4-bit value v.
var nibbleBits = [16]int{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

// Naive examines each bit via repeated shift-and-mask.
func Naive(x uint32) int {
	count := 0
	for x != 0 {
		count += int(x & 1)
		x >>= 1
	}

	return count
}

// Kernighan repeatedly clears the lowest set bit; the loop runs once per
// set bit.
func Kernighan(x uint32) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}

	return count
}

// Lookup splits x into eight nibbles and sums their table counts.
func Lookup(x uint32) int {
	count := 0
	for i := 0; i < Width/4; i++ {
		count += nibbleBits[x&0xF]
		x >>= 4
	}

	return count
}

// Parallel is the SWAR reduction:
//
//	pairs   x - ((x >> 1) & 0x55555555)        each 2-bit field holds 0..2
//	nibbles (x & 0x33333333) + ((x >> 2) & 0x33333333)
//	bytes   (x + (x >> 4)) & 0x0F0F0F0F
//	fold    x + (x >> 8), then x + (x >> 16); the count sits in the low 6 bits
func Parallel(x uint32) int {
	x = x - ((x >> 1) & 0x55555555)
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F
	x = x + (x >> 8)
	x = x + (x >> 16)

	return int(x & 0x3F)
}

// Count dispatches to the algorithm selected by m.
func Count(x uint32, m Method) (int, error) {
	switch m {
	case MethodNaive:
		return Naive(x), nil
	case MethodKernighan:
		return Kernighan(x), nil
	case MethodLookup:
		return Lookup(x), nil
	case MethodParallel:
		return Parallel(x), nil
	default:
		return 0, fmt.Errorf("Count: %v: %w", m, ErrUnknownMethod)
	}
}

// Agree runs all four methods on x. It returns the naive count and whether
// every other method produced the same value.
func Agree(x uint32) (int, bool) {
	want := Naive(x)
	ok := Kernighan(x) == want && Lookup(x) == want && Parallel(x) == want

	return want, ok
}
