package linkedlist

import "errors"

// Sentinel errors returned by Node.Link and Free.
var (
	// ErrNilNode is returned when either side of a link is nil.
	ErrNilNode = errors.New("linkedlist: nil node")

	// ErrReleased is returned when a released node is linked.
	ErrReleased = errors.New("linkedlist: node already released")

	// ErrAlreadyLinked is returned when the predecessor already has a successor.
	ErrAlreadyLinked = errors.New("linkedlist: node already has a successor")

	// ErrAlreadyOwned is returned when the successor already has a predecessor.
	ErrAlreadyOwned = errors.New("linkedlist: node already owned by a predecessor")

	// ErrCycle is returned when the link would close a cycle.
	ErrCycle = errors.New("linkedlist: link would create a cycle")

	// ErrNotHead is returned by Free when the node is owned by a predecessor.
	ErrNotHead = errors.New("linkedlist: node is not the head of its chain")
)

// Visitor receives every node of a chain in order, together with the
// caller-supplied context. A Visitor may mutate state reachable through ctx
// but sees the node read-only: Value and Next are accessors.
type Visitor[C any] func(n *Node, ctx C)

// Option configures Free via functional arguments.
type Option func(*Options)

// Options holds hooks invoked during teardown.
type Options struct {
	// OnRelease is called once per node, in traversal order, just before the
	// node is released. It receives the node's value.
	OnRelease func(value int)
}

// DefaultOptions returns Options with a no-op OnRelease hook.
func DefaultOptions() Options {
	return Options{
		OnRelease: func(int) {},
	}
}

// WithOnRelease registers a teardown observer. A nil fn is ignored.
func WithOnRelease(fn func(value int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelease = fn
		}
	}
}
