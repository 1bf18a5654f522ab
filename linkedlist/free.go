package linkedlist

import "fmt"

// Free releases every node reachable from head exactly once, in traversal
// order, and returns how many nodes were released.
//
// Stage 1 (Validate): head must not be owned by a predecessor; a node in the
// middle of a chain belongs to the node before it, so ErrNotHead is returned
// and nothing is released.
// Stage 2 (Prepare): apply options.
// Stage 3 (Execute): for each node, remember the successor, fire OnRelease,
// cut the link and mark the node released.
//
// A nil head returns 0. The walk stops at the first node that is already
// released, so calling Free twice on the same head releases nothing the
// second time.
func Free(head *Node, opts ...Option) (int, error) {
	if head != nil && head.owned {
		return 0, fmt.Errorf("Free(%s): %w", describe(head), ErrNotHead)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	released := 0
	for cur := head; cur != nil && !cur.released; {
		next := cur.next
		o.OnRelease(cur.value)
		cur.next = nil
		cur.owned = false
		cur.released = true
		released++
		cur = next
	}

	return released, nil
}

// List owns a chain through its head and keeps a tail pointer for O(1)
// appends. The zero value is an empty list ready to use.
type List struct {
	head, tail *Node
	n          int
}

// PushBack appends v and returns the new node.
func (l *List) PushBack(v int) *Node {
	node := NewNode(v)
	if l.head == nil || l.head.released {
		// empty, or the whole chain was freed through its head
		l.head, l.tail, l.n = node, node, 0
	} else {
		// tail has no successor and node is fresh; Link cannot fail here.
		_ = l.tail.Link(node)
		l.tail = node
	}
	l.n++

	return node
}

// Head returns the first node, or nil when the list is empty.
func (l *List) Head() *Node { return l.head }

// Len returns the number of nodes in the list.
func (l *List) Len() int { return l.n }

// Free releases the whole chain and leaves l empty.
// It returns the number of released nodes. If the head was since linked
// behind another node, the chain is not l's to release: ErrNotHead is
// returned and l is left unchanged.
func (l *List) Free(opts ...Option) (int, error) {
	released, err := Free(l.head, opts...)
	if err != nil {
		return 0, err
	}
	l.head, l.tail, l.n = nil, nil, 0

	return released, nil
}
