package linkedlist

// Traverse walks the chain starting at head and calls visit(node, ctx) once
// per node in chain order. A nil head or a nil visit is a no-op. Released
// nodes are no longer part of any chain, so the walk stops at the first one.
func Traverse[C any](head *Node, visit Visitor[C], ctx C) {
	if visit == nil {
		return
	}
	for cur := head; cur != nil && !cur.released; cur = cur.next {
		visit(cur, ctx)
	}
}

// Sum adds the node value to *acc.
func Sum(n *Node, acc *int) {
	*acc += n.value
}

// Count increments *acc once per node.
func Count(_ *Node, acc *int) {
	*acc++
}

// Len returns the number of nodes reachable from head.
func Len(head *Node) int {
	var count int
	Traverse(head, Count, &count)

	return count
}

// Values returns the node values in chain order, or nil for an empty chain.
func Values(head *Node) []int {
	var out []int
	Traverse(head, func(n *Node, acc *[]int) {
		*acc = append(*acc, n.value)
	}, &out)

	return out
}

// FromSlice builds a fresh chain holding values in order and returns its head.
// It returns nil when values is empty.
func FromSlice(values ...int) *Node {
	var l List
	for _, v := range values {
		l.PushBack(v)
	}

	return l.Head()
}
