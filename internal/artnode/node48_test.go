package artnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode48Basics(t *testing.T) {
	n := NewNode48[int]()
	for i := 0; i < 48; i++ {
		n.AddChild(byte(i), LeafRef(NewLeaf([]byte{byte(i)}, i)))
	}
	assert.True(t, n.Full())
	assert.Equal(t, 0, n.Minimum().Value)
	assert.Equal(t, 47, n.Maximum().Value)

	found := n.FindChild(10)
	assert.NotNil(t, found)
	assert.Equal(t, 10, found.AsLeaf().Value)

	grown := n.Grow()
	assert.Equal(t, TypeNode256, grown.Type())
	assert.Equal(t, 48, grown.(*Node256[int]).NumChildren())
}

func TestNode48RemoveChildFixesUpIndex(t *testing.T) {
	n := NewNode48[int]()
	n.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
	n.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))
	n.AddChild('c', LeafRef(NewLeaf([]byte("c"), 3)))

	ref := n.FindChild('a')
	n.RemoveChild('a', ref)

	assert.Equal(t, 2, n.NumChildren())
	assert.Nil(t, n.FindChild('a'))
	assert.NotNil(t, n.FindChild('b'))
	assert.NotNil(t, n.FindChild('c'))
}

func TestNode48Shrink(t *testing.T) {
	n := NewNode48[int]()
	n.SetPrefix([]byte("p"))
	for i := 0; i < 14; i++ {
		n.AddChild(byte('a'+i), LeafRef(NewLeaf([]byte{byte('a' + i)}, i)))
	}
	shrunk := n.Shrink()
	assert.Equal(t, TypeNode16, shrunk.AsNode().Type())
	assert.Equal(t, 14, shrunk.AsNode().(*Node16[int]).NumChildren())
}
