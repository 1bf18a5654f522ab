package checksum

import (
	"fmt"

	"github.com/katalvlaran/classics/fibonacci"
	"github.com/katalvlaran/classics/linkedlist"
	"github.com/katalvlaran/classics/matrix"
	"github.com/katalvlaran/classics/popcount"
	"github.com/katalvlaran/classics/quicksort"
	"github.com/katalvlaran/classics/strsearch"
)

// Scenario names, also used as CLI subcommand names.
const (
	NameFibonacci    = "fibonacci"
	NameLinkedList   = "linked-list"
	NameMatrixAdd    = "matrix-add"
	NameMatrixMult   = "matrix-mult"
	NamePopcount     = "popcount"
	NameQuicksort    = "quicksort"
	NameStringSearch = "string-search"
)

// Scenarios returns every scenario in program order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: NameFibonacci, Want: 20295, Run: runFibonacci},
		{Name: NameLinkedList, Want: 20, Run: runLinkedList},
		{Name: NameMatrixAdd, Want: 6, Run: runMatrixAdd},
		{Name: NameMatrixMult, Want: 7, Run: runMatrixMult},
		{Name: NamePopcount, Want: 372, Run: runPopcount},
		{Name: NameQuicksort, Want: 624, Run: runQuicksort},
		{Name: NameStringSearch, Want: 50, Run: runStringSearch},
	}
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, nil
		}
	}

	return Scenario{}, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
}

// runFibonacci sums F(20) over the three strategies.
func runFibonacci() (int, error) {
	const n = 20
	var total int64
	for _, s := range fibonacci.Strategies() {
		v, err := fibonacci.Compute(n, s)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return int(total), nil
}

// runLinkedList links 1→2→3→4→5 node by node, sums and counts it with the
// built-in visitors, then releases it.
func runLinkedList() (int, error) {
	head := linkedlist.NewNode(1)
	tail := head
	for v := 2; v <= 5; v++ {
		next := linkedlist.NewNode(v)
		if err := tail.Link(next); err != nil {
			return 0, err
		}
		tail = next
	}

	var sum, count int
	linkedlist.Traverse(head, linkedlist.Sum, &sum)
	linkedlist.Traverse(head, linkedlist.Count, &count)

	released, err := linkedlist.Free(head)
	if err != nil {
		return 0, err
	}
	if released != count {
		return 0, fmt.Errorf("linked list: released %d of %d nodes", released, count)
	}

	return sum + count, nil
}

// runMatrixAdd adds A[i][j]=i+j and B[i][j]=i-j and reads C[N-1][N-1].
func runMatrixAdd() (int, error) {
	var a, b, c matrix.Square
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			a[i][j] = i + j
			b[i][j] = i - j
		}
	}
	matrix.AddInto(&a, &b, &c)

	return c[matrix.N-1][matrix.N-1], nil
}

// runMatrixMult multiplies A[i][j]=i+j+1 by the identity and reads C[N-1][N-1].
func runMatrixMult() (int, error) {
	var a, c matrix.Square
	for i := 0; i < matrix.N; i++ {
		for j := 0; j < matrix.N; j++ {
			a[i][j] = i + j + 1
		}
	}
	id := matrix.IdentitySquare()
	matrix.MulInto(&a, &id, &c)

	return c[matrix.N-1][matrix.N-1], nil
}

// popcountWords is the reference input of the popcount program.
var popcountWords = [...]uint32{0x12345678, 0xFFFFFFFF, 0xAAAAAAAA, 0x55555555, 0x0F0F0F0F}

// runPopcount sums every method's count over the reference words.
func runPopcount() (int, error) {
	total := 0
	for _, w := range popcountWords {
		for _, m := range popcount.Methods() {
			c, err := popcount.Count(w, m)
			if err != nil {
				return 0, err
			}
			total += c
		}
	}

	return total, nil
}

// runQuicksort sorts the fixed array and returns the sum of its elements.
func runQuicksort() (int, error) {
	a := []int{64, 34, 25, 12, 22, 11, 90, 88, 45, 50, 23, 36, 18, 77, 29}
	if err := quicksort.Sort(a, 0, len(a)-1); err != nil {
		return 0, err
	}

	sum := 0
	for _, v := range a {
		sum += v
	}

	return sum, nil
}

// runStringSearch sums the first-match offsets of three patterns; a missing
// pattern contributes NotFound (-1).
func runStringSearch() (int, error) {
	const text = "The quick brown fox jumps over the lazy dog"
	sum := 0
	for _, p := range []string{"fox", "lazy", "cat"} {
		sum += strsearch.Index(text, p)
	}

	return sum, nil
}
