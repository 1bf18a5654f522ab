// Package classics is a small reference library of textbook algorithms,
// each kept simple enough to read in one sitting and checked against a
// fixed program whose output is a single integer.
//
// What is inside?
//
//	• Fibonacci: naive recursion, iteration, accumulator recurrence
//	• Linked list: owned singly linked chain, visitor traversal, teardown
//	• Matrix: fixed 4×4 add/multiply plus a runtime-shaped Dense
//	• Popcount: naive, Kernighan, nibble lookup, SWAR parallel
//	• Quicksort: Lomuto partition, in place
//	• String search: naive first-occurrence scan
//
// Packages:
//
//	fibonacci/  - F(n) three ways, int64 with explicit overflow errors
//	linkedlist/ - Node, Link, Traverse[C], Free, List container
//	matrix/     - Square (N=4) AddInto/MulInto, Dense Add/Mul with validation
//	popcount/   - four 32-bit bit counters and an agreement check
//	quicksort/  - Sort, SortAll, Partition
//	strsearch/  - Index, Contains
//	checksum/   - the fixed scenarios, their expected outputs and a Runner
//	cmd/classics - CLI printing one checksum per subcommand
//
// Quick example:
//
//	$ classics fibonacci
//	20295
//	$ classics verify
//	fibonacci 20295 ok
//	linked-list 20 ok
//	...
//
//	go install github.com/katalvlaran/classics/cmd/classics@latest
package classics
