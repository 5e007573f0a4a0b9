package artnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode256Basics(t *testing.T) {
	n := NewNode256[int]()
	for i := 0; i < 256; i++ {
		n.AddChild(byte(i), LeafRef(NewLeaf([]byte{byte(i)}, i)))
	}
	assert.True(t, n.Full())
	assert.Equal(t, 0, n.Minimum().Value)
	assert.Equal(t, 255, n.Maximum().Value)
	assert.Equal(t, 200, n.FindChild(200).AsLeaf().Value)

	assert.Panics(t, func() { n.Grow() })
}

func TestNode256RemoveChild(t *testing.T) {
	n := NewNode256[int]()
	n.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
	n.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))

	n.RemoveChild('a', n.FindChild('a'))

	assert.Nil(t, n.FindChild('a'))
	assert.NotNil(t, n.FindChild('b'))
	assert.Equal(t, 1, n.NumChildren())
}

func TestNode256Shrink(t *testing.T) {
	n := NewNode256[int]()
	n.SetPrefix([]byte("p"))
	for i := 0; i < 46; i++ {
		n.AddChild(byte(i), LeafRef(NewLeaf([]byte{byte(i)}, i)))
	}
	shrunk := n.Shrink()
	assert.Equal(t, TypeNode48, shrunk.AsNode().Type())
	assert.Equal(t, 46, shrunk.AsNode().(*Node48[int]).NumChildren())
}

func TestNode256NoShrinkAboveThreshold(t *testing.T) {
	n := NewNode256[int]()
	for i := 0; i < 47; i++ {
		n.AddChild(byte(i), LeafRef(NewLeaf([]byte{byte(i)}, i)))
	}
	shrunk := n.Shrink()
	So := shrunk.IsNode()
	assert.True(t, So)
	assert.Equal(t, TypeNode256, shrunk.AsNode().Type())
}
