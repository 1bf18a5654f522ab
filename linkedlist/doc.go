// Package linkedlist provides a singly linked integer list with explicit
// single-owner links, visitor-based traversal, and an explicit teardown.
//
// 🚀 Model
//
//	head ─▶ [1] ─▶ [2] ─▶ [3] ─▶ nil
//
//	Every Node is owned by exactly one predecessor (or by the caller holding
//	the head). Links are created only through Node.Link, which refuses to
//	create a second owner, a cycle, or a link to a released node, so every
//	chain is acyclic and every traversal terminates.
//
// ✨ Key features:
//   - Traverse walks a chain in order and hands every node to a Visitor
//     together with an arbitrary, caller-typed context value.
//   - Sum and Count are ready-made visitors accumulating into an *int.
//   - Free releases every node exactly once, in traversal order; freeing an
//     empty or already-released chain is a no-op. Only the head of a chain
//     may be freed: a node owned by a predecessor yields ErrNotHead.
//   - List is a small owning container (head + tail) for building chains.
//
// ⚙️ Usage:
//
//	head := linkedlist.FromSlice(1, 2, 3, 4, 5)
//
//	var sum, count int
//	linkedlist.Traverse(head, linkedlist.Sum, &sum)
//	linkedlist.Traverse(head, linkedlist.Count, &count)
//
//	released, err := linkedlist.Free(head) // 5, nil
//
// Complexity: Traverse, Free, Len and Values are O(n); Link is O(n) because
// it walks the successor chain to rule out cycles.
package linkedlist
