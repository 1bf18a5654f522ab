package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/classics/linkedlist"
)

// ExampleTraverse reproduces the list program: build 1→2→3→4→5, sum and
// count it with visitors, then tear it down.
func ExampleTraverse() {
	head := linkedlist.FromSlice(1, 2, 3, 4, 5)

	var sum, count int
	linkedlist.Traverse(head, linkedlist.Sum, &sum)
	linkedlist.Traverse(head, linkedlist.Count, &count)

	released, err := linkedlist.Free(head)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum, count, sum+count, released)
	// Output:
	// 15 5 20 5
}

// ExampleFree shows the teardown order reported by WithOnRelease.
func ExampleFree() {
	var l linkedlist.List
	l.PushBack(7)
	l.PushBack(8)
	l.PushBack(9)

	_, _ = l.Free(linkedlist.WithOnRelease(func(v int) {
		fmt.Println("release", v)
	}))
	// Output:
	// release 7
	// release 8
	// release 9
}
