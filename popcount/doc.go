// Package popcount counts the set bits of a 32-bit word with four classic
// algorithms that must agree on every input.
//
// ✨ Methods:
//   - Naive     - shift-and-mask each bit; O(w) iterations for w = 32.
//   - Kernighan - x &= x-1 clears the lowest set bit; O(popcount) iterations.
//   - Lookup    - sum a 16-entry table over the eight 4-bit nibbles.
//   - Parallel  - SWAR folding with 0x55555555, 0x33333333, 0x0F0F0F0F;
//     O(log w) branch-free operations.
//
// Every method is a total function from uint32 to a count in [0, 32].
//
// ⚙️ Usage:
//
//	n := popcount.Kernighan(0xAAAAAAAA) // 16
//	c, ok := popcount.Agree(0x12345678) // 13, true
package popcount
