package artnode

// Leaf is a terminal node holding the full key (sentinel-terminated) and
// its associated value. Grounded on flier-goutil's pkg/arena/art/node
// Leaf[T], minus the arena allocator: a Leaf here is an ordinary
// heap-allocated Go value.
type Leaf[V any] struct {
	Key   []byte
	Value V
}

// NewLeaf allocates a new leaf holding key and value. key is retained, not
// copied; callers that mutate their key buffers after insertion must copy
// first.
func NewLeaf[V any](key []byte, value V) *Leaf[V] {
	return &Leaf[V]{Key: key, Value: value}
}

// Matches reports whether this leaf's key is byte-identical to key.
func (l *Leaf[V]) Matches(key []byte) bool {
	return string(l.Key) == string(key)
}
