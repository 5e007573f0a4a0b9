package artnode

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNode4(t *testing.T) {
	Convey("Given a Node4", t, func() {
		node := NewNode4[int]()

		Convey("When checking basic properties", func() {
			So(node.Type(), ShouldEqual, TypeNode4)
			So(node.Full(), ShouldBeFalse)
			So(node.NumChildren(), ShouldEqual, 0)
		})

		Convey("When adding children in order", func() {
			node.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
			node.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))
			node.AddChild('c', LeafRef(NewLeaf([]byte("c"), 3)))

			So(node.NumChildren(), ShouldEqual, 3)
			So(node.keys[0], ShouldEqual, byte('a'))
			So(node.keys[1], ShouldEqual, byte('b'))
			So(node.keys[2], ShouldEqual, byte('c'))
		})

		Convey("When adding children out of order", func() {
			node.AddChild('d', LeafRef(NewLeaf([]byte("d"), 4)))
			node.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))
			node.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
			node.AddChild('c', LeafRef(NewLeaf([]byte("c"), 3)))

			So(node.NumChildren(), ShouldEqual, 4)
			So(node.keys[:4], ShouldResemble, []byte{'a', 'b', 'c', 'd'})
			So(node.Full(), ShouldBeTrue)
		})

		Convey("When finding children", func() {
			node.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
			node.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))

			found := node.FindChild('a')
			So(found, ShouldNotBeNil)
			So(found.AsLeaf().Value, ShouldEqual, 1)

			So(node.FindChild('z'), ShouldBeNil)
		})

		Convey("When growing to Node16", func() {
			for i := 0; i < 4; i++ {
				node.AddChild(byte('a'+i), LeafRef(NewLeaf([]byte{byte('a' + i)}, i)))
			}

			grown := node.Grow()
			So(grown.Type(), ShouldEqual, TypeNode16)
			So(grown.(*Node16[int]).NumChildren(), ShouldEqual, 4)
		})

		Convey("When only one child remains it collapses into that child", func() {
			node.SetPrefix([]byte("pre"))
			leaf := NewLeaf([]byte("preXsuffix"), 42)
			node.AddChild('X', LeafRef(leaf))

			repl := node.Shrink()
			So(repl.IsLeaf(), ShouldBeTrue)
			So(repl.AsLeaf(), ShouldEqual, leaf)
		})

		Convey("When it still has multiple children, Shrink is a no-op", func() {
			node.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
			node.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))

			repl := node.Shrink()
			So(repl.IsNode(), ShouldBeTrue)
			So(repl.AsNode(), ShouldEqual, node)
		})

		Convey("When getting minimum and maximum", func() {
			node.AddChild('c', LeafRef(NewLeaf([]byte("c"), 3)))
			node.AddChild('a', LeafRef(NewLeaf([]byte("a"), 1)))
			node.AddChild('b', LeafRef(NewLeaf([]byte("b"), 2)))

			So(node.Minimum().Value, ShouldEqual, 1)
			So(node.Maximum().Value, ShouldEqual, 3)
		})
	})
}
