package linkedlist

import "fmt"

// Node is a single list cell. The value is fixed at NewNode; the successor
// link changes only through Link and Free.
type Node struct {
	value    int
	next     *Node
	owned    bool // true once a predecessor links to this node
	released bool
}

// NewNode allocates an unlinked node holding v.
func NewNode(v int) *Node {
	return &Node{value: v}
}

// Value returns the payload stored in n.
func (n *Node) Value() int { return n.value }

// Next returns the successor, or nil at the end of the chain.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}

	return n.next
}

// Released reports whether the node was torn down by Free.
func (n *Node) Released() bool {
	return n != nil && n.released
}

// Link makes next the successor of n, transferring ownership of next to n.
//
// Errors:
//   - ErrNilNode       - n or next is nil.
//   - ErrReleased      - n or next was already released.
//   - ErrAlreadyLinked - n already has a successor.
//   - ErrAlreadyOwned  - next already has a predecessor.
//   - ErrCycle         - n is reachable from next (including n == next).
//
// Complexity: O(len(next chain)).
func (n *Node) Link(next *Node) error {
	if n == nil || next == nil {
		return linkErrorf(n, next, ErrNilNode)
	}
	if n.released || next.released {
		return linkErrorf(n, next, ErrReleased)
	}
	if n.next != nil {
		return linkErrorf(n, next, ErrAlreadyLinked)
	}
	if next.owned {
		return linkErrorf(n, next, ErrAlreadyOwned)
	}
	for cur := next; cur != nil; cur = cur.next {
		if cur == n {
			return linkErrorf(n, next, ErrCycle)
		}
	}

	n.next = next
	next.owned = true

	return nil
}

// linkErrorf tags a Link failure with the values on both sides.
func linkErrorf(n, next *Node, err error) error {
	return fmt.Errorf("Link(%s→%s): %w", describe(n), describe(next), err)
}

// describe renders a node for error messages.
func describe(n *Node) string {
	if n == nil {
		return "nil"
	}

	return fmt.Sprintf("%d", n.value)
}
