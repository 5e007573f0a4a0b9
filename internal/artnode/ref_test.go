package artnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefEmpty(t *testing.T) {
	var r Ref[int]
	assert.True(t, r.Empty())
	assert.False(t, r.IsLeaf())
	assert.False(t, r.IsNode())
	assert.Nil(t, r.AsLeaf())
	assert.Nil(t, r.AsNode())
}

func TestRefLeaf(t *testing.T) {
	leaf := NewLeaf([]byte("k"), 7)
	r := LeafRef(leaf)

	assert.False(t, r.Empty())
	assert.True(t, r.IsLeaf())
	assert.False(t, r.IsNode())
	assert.Same(t, leaf, r.AsLeaf())
	assert.Equal(t, leaf, r.Minimum())
	assert.Equal(t, leaf, r.Maximum())
}

func TestRefNode(t *testing.T) {
	n := NewNode4[int]()
	r := NodeRef[int](n)

	assert.True(t, r.IsNode())
	assert.Same(t, n, r.AsNode())
}

func TestRefReplace(t *testing.T) {
	var r Ref[int]
	leaf := LeafRef(NewLeaf([]byte("a"), 1))

	old := r.Replace(leaf)
	assert.True(t, old.Empty())
	assert.True(t, r.IsLeaf())
}
