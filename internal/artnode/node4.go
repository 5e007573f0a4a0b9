package artnode

import "github.com/alcolic-to/finder-sub000/internal/debug"

// Node4 is the smallest inner node: up to 4 children kept in parallel
// sorted arrays, found by linear scan. Grounded on
// pkg/arena/art/node/node4.go and kellydunn/go-art's artNode4.
type Node4[V any] struct {
	base
	keys     [4]byte
	children [4]Ref[V]
}

// NewNode4 allocates an empty Node4.
func NewNode4[V any]() *Node4[V] { return &Node4[V]{} }

func (n *Node4[V]) Type() Type { return TypeNode4 }
func (n *Node4[V]) Full() bool { return n.numChildren == 4 }

func (n *Node4[V]) Minimum() *Leaf[V] { return n.children[0].Minimum() }
func (n *Node4[V]) Maximum() *Leaf[V] { return n.children[n.numChildren-1].Maximum() }

func (n *Node4[V]) FindChild(b byte) *Ref[V] {
	for i := 0; i < n.numChildren; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}
	return nil
}

// AddChild inserts child at its sorted position. The caller must ensure
// !n.Full().
func (n *Node4[V]) AddChild(b byte, child Ref[V]) {
	debug.Assert(!n.Full(), "node must not be full")

	i := 0
	for i < n.numChildren && n.keys[i] < b {
		i++
	}
	copy(n.keys[i+1:n.numChildren+1], n.keys[i:n.numChildren])
	copy(n.children[i+1:n.numChildren+1], n.children[i:n.numChildren])
	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

func (n *Node4[V]) RemoveChild(b byte, child *Ref[V]) {
	idx := n.indexOf(child)
	debug.Assert(idx >= 0, "child must be in the node")

	copy(n.keys[idx:n.numChildren-1], n.keys[idx+1:n.numChildren])
	copy(n.children[idx:n.numChildren-1], n.children[idx+1:n.numChildren])
	n.numChildren--
	n.children[n.numChildren] = Ref[V]{}
	n.keys[n.numChildren] = 0
}

func (n *Node4[V]) indexOf(child *Ref[V]) int {
	for i := 0; i < n.numChildren; i++ {
		if &n.children[i] == child {
			return i
		}
	}
	return -1
}

// Each visits every child in ascending key-byte order.
func (n *Node4[V]) Each(fn func(b byte, child Ref[V]) bool) bool {
	for i := 0; i < n.numChildren; i++ {
		if !fn(n.keys[i], n.children[i]) {
			return false
		}
	}
	return true
}

// Grow promotes this node to a Node16 holding the same children.
func (n *Node4[V]) Grow() Node[V] {
	g := &Node16[V]{}
	g.prefix = n.prefix
	g.numChildren = n.numChildren
	copy(g.keys[:], n.keys[:n.numChildren])
	copy(g.children[:], n.children[:n.numChildren])
	return g
}

// Shrink collapses a single-child Node4 into that child, merging the
// absorbed key byte and the child's own prefix into one compressed
// prefix. A Node4 with more than one child is returned unchanged.
func (n *Node4[V]) Shrink() Ref[V] {
	if n.numChildren != 1 {
		return NodeRef[V](n)
	}
	absorbed := n.keys[0]
	child := n.children[0]
	if sub := child.AsNode(); sub != nil {
		merged := make([]byte, 0, len(n.prefix)+1+len(sub.Prefix()))
		merged = append(merged, n.prefix...)
		merged = append(merged, absorbed)
		merged = append(merged, sub.Prefix()...)
		sub.SetPrefix(merged)
	}
	return child
}
