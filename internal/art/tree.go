// Package art implements a generic adaptive radix tree keyed by bytes,
// shared by the file-path index (pkg/fileindex) and the symbol index
// (pkg/symbolindex), and used as the backing structure one layer below
// the adaptive suffix tree (pkg/suffixtree).
//
// Grounded on github.com/flier/goutil's pkg/arena/art.Tree and its
// tree subpackage (insert.go, search.go, delete.go, prefix.go), adapted
// to operate on internal/artnode's safe Ref[V] rather than an arena
// allocator and a tagged uintptr.
package art

import "github.com/alcolic-to/finder-sub000/internal/artnode"

// Tree is an adaptive radix tree mapping byte-slice keys to values of
// type V.
type Tree[V any] struct {
	root artnode.Ref[V]
	size int
}

// New returns an empty Tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len reports the number of keys currently stored.
func (t *Tree[V]) Len() int { return t.size }

// terminated returns a copy of key with a trailing 0x00 sentinel appended,
// mirroring the byte key's implicit terminal-zero semantics. Grounded on
// kellydunn/go-art's ensureNullTerminatedKey.
func terminated(key []byte) []byte {
	buf := make([]byte, len(key)+1)
	copy(buf, key)
	return buf
}

// Search returns the value stored for key, if any.
func (t *Tree[V]) Search(key []byte) (V, bool) {
	return search[V](t.root, terminated(key))
}

func search[V any](ref artnode.Ref[V], key []byte) (V, bool) {
	depth := 0
	for {
		if ref.Empty() {
			var zero V
			return zero, false
		}
		if leaf := ref.AsLeaf(); leaf != nil {
			if leaf.Matches(key) {
				return leaf.Value, true
			}
			var zero V
			return zero, false
		}
		n := ref.AsNode()
		if p := n.Prefix(); len(p) > 0 {
			if checkPrefix(p, key, depth) != len(p) {
				var zero V
				return zero, false
			}
			depth += len(p)
		}
		if depth >= len(key) {
			var zero V
			return zero, false
		}
		child := n.FindChild(key[depth])
		if child == nil {
			var zero V
			return zero, false
		}
		ref = *child
		depth++
	}
}

// checkPrefix reports how many leading bytes of prefix match key starting
// at depth, bounded by however much of key remains.
func checkPrefix(prefix, key []byte, depth int) int {
	max := len(prefix)
	if rem := len(key) - depth; rem < max {
		max = rem
	}
	i := 0
	for i < max && prefix[i] == key[depth+i] {
		i++
	}
	return i
}

// longestCommonPrefix returns how many leading bytes a and b (from a's
// start and from depth into b) have in common.
func longestCommonPrefix(a, b []byte, depth int) int {
	max := len(a)
	if rem := len(b) - depth; rem < max {
		max = rem
	}
	i := 0
	for i < max && a[i] == b[depth+i] {
		i++
	}
	return i
}

// Insert stores value under key, replacing any existing value. It reports
// the previous value and whether one existed.
func (t *Tree[V]) Insert(key []byte, value V) (old V, replaced bool) {
	return t.insert(key, value, true)
}

// InsertNoReplace stores value under key only if key is absent. When key
// was already present, the stored value is left unchanged and it reports
// that value with replaced set to true; otherwise the insert succeeds and
// replaced is false.
func (t *Tree[V]) InsertNoReplace(key []byte, value V) (old V, replaced bool) {
	return t.insert(key, value, false)
}

func (t *Tree[V]) insert(key []byte, value V, replace bool) (old V, existed bool) {
	full := terminated(key)
	newRoot, old, existed := insertAt(t.root, full, value, 0, replace)
	t.root = newRoot
	if !existed {
		t.size++
	}
	return old, existed
}

func insertAt[V any](ref artnode.Ref[V], key []byte, value V, depth int, replace bool) (artnode.Ref[V], V, bool) {
	if ref.Empty() {
		var zero V
		return artnode.LeafRef(artnode.NewLeaf(key, value)), zero, false
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		if leaf.Matches(key) {
			old := leaf.Value
			if replace {
				leaf.Value = value
			}
			return ref, old, true
		}
		// Split: build a Node4 holding both the existing leaf and the new
		// one, absorbing whatever prefix they share beyond depth.
		common := longestCommonPrefix(leaf.Key[depth:], key, depth)
		n := artnode.NewNode4[V]()
		n.SetPrefix(append([]byte(nil), key[depth:depth+common]...))
		n.AddChild(leaf.Key[depth+common], ref)
		n.AddChild(key[depth+common], artnode.LeafRef(artnode.NewLeaf(key, value)))
		var zero V
		return artnode.NodeRef[V](n), zero, false
	}

	n := ref.AsNode()
	prefix := n.Prefix()
	matched := checkPrefix(prefix, key, depth)
	if matched != len(prefix) {
		// The new key diverges partway through this node's compressed
		// prefix: split the prefix itself, inserting a new Node4 above n.
		split := artnode.NewNode4[V]()
		split.SetPrefix(append([]byte(nil), prefix[:matched]...))

		n.SetPrefix(append([]byte(nil), prefix[matched+1:]...))
		split.AddChild(prefix[matched], ref)
		split.AddChild(key[depth+matched], artnode.LeafRef(artnode.NewLeaf(key, value)))

		var zero V
		return artnode.NodeRef[V](split), zero, false
	}

	depth += len(prefix)
	if child := n.FindChild(key[depth]); child != nil {
		newChild, old, existed := insertAt(*child, key, value, depth+1, replace)
		child.Replace(newChild)
		return ref, old, existed
	}

	var zero V
	if n.Full() {
		grown := n.Grow()
		grown.AddChild(key[depth], artnode.LeafRef(artnode.NewLeaf(key, value)))
		return artnode.NodeRef[V](grown), zero, false
	}
	n.AddChild(key[depth], artnode.LeafRef(artnode.NewLeaf(key, value)))
	return ref, zero, false
}

// Erase removes key, reporting its value and whether it was present.
func (t *Tree[V]) Erase(key []byte) (V, bool) {
	full := terminated(key)
	newRoot, old, ok := eraseAt(t.root, full, 0)
	if ok {
		t.root = newRoot
		t.size--
	}
	return old, ok
}

func eraseAt[V any](ref artnode.Ref[V], key []byte, depth int) (artnode.Ref[V], V, bool) {
	if ref.Empty() {
		var zero V
		return ref, zero, false
	}
	if leaf := ref.AsLeaf(); leaf != nil {
		if leaf.Matches(key) {
			return artnode.Ref[V]{}, leaf.Value, true
		}
		var zero V
		return ref, zero, false
	}

	n := ref.AsNode()
	prefix := n.Prefix()
	if checkPrefix(prefix, key, depth) != len(prefix) {
		var zero V
		return ref, zero, false
	}
	depth += len(prefix)

	child := n.FindChild(key[depth])
	if child == nil {
		var zero V
		return ref, zero, false
	}

	newChild, old, ok := eraseAt(*child, key, depth+1)
	if !ok {
		return ref, old, false
	}

	if newChild.Empty() {
		n.RemoveChild(key[depth], child)
	} else {
		child.Replace(newChild)
	}
	return n.Shrink(), old, true
}

// SearchPrefixNode returns the Ref rooted at the subtree whose keys all
// begin with prefix, or an empty Ref if no key has that prefix. It is the
// early-reject check used by pkg/fileindex's partitioned path search.
func (t *Tree[V]) SearchPrefixNode(prefix []byte) artnode.Ref[V] {
	ref := t.root
	depth := 0
	for {
		if ref.Empty() {
			return ref
		}
		if leaf := ref.AsLeaf(); leaf != nil {
			if hasPrefixAt(leaf.Key, prefix, depth) {
				return ref
			}
			return artnode.Ref[V]{}
		}
		n := ref.AsNode()
		p := n.Prefix()
		remaining := len(prefix) - depth
		if remaining <= 0 {
			return ref
		}
		cmpLen := len(p)
		if remaining < cmpLen {
			cmpLen = remaining
		}
		matched := checkPrefix(p[:cmpLen], prefix, depth)
		if matched != cmpLen {
			return artnode.Ref[V]{}
		}
		depth += cmpLen
		if depth >= len(prefix) {
			return ref
		}
		child := n.FindChild(prefix[depth])
		if child == nil {
			return artnode.Ref[V]{}
		}
		ref = *child
		depth++
	}
}

func hasPrefixAt(key, prefix []byte, depth int) bool {
	if len(prefix) > len(key) {
		return false
	}
	for i := depth; i < len(prefix); i++ {
		if key[i] != prefix[i] {
			return false
		}
	}
	return true
}

// SearchPrefix returns every value whose key begins with prefix, in key
// order. A non-positive limit means unbounded; otherwise at most limit
// values are returned.
func (t *Tree[V]) SearchPrefix(prefix []byte, limit int) []V {
	root := t.SearchPrefixNode(prefix)
	var out []V
	visit(root, func(_ []byte, v V) bool {
		out = append(out, v)
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Visit walks every leaf in key order, calling fn with each key (without
// its trailing sentinel) and value. Iteration stops early if fn returns
// false.
func (t *Tree[V]) Visit(fn func(key []byte, value V) bool) {
	visit(t.root, fn)
}

func visit[V any](ref artnode.Ref[V], fn func(key []byte, value V) bool) bool {
	if ref.Empty() {
		return true
	}
	if leaf := ref.AsLeaf(); leaf != nil {
		k := leaf.Key
		if len(k) > 0 {
			k = k[:len(k)-1]
		}
		return fn(k, leaf.Value)
	}
	return visitNode(ref.AsNode(), fn)
}

func visitNode[V any](n artnode.Node[V], fn func(key []byte, value V) bool) bool {
	return n.Each(func(_ byte, child artnode.Ref[V]) bool {
		return visit(child, fn)
	})
}
