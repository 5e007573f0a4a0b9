package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesInsertWithinLimit(t *testing.T) {
	m := New[int](3)
	m.Insert(1)
	m.Insert(2)

	assert.Equal(t, []int{1, 2}, m.Items())
	assert.Equal(t, 2, m.Objects())
	assert.False(t, m.Full())
}

func TestMatchesInsertBeyondLimitTracksObjectsButDropsItems(t *testing.T) {
	m := New[int](2)
	m.Insert(1)
	m.Insert(2)
	m.Insert(3)

	assert.Equal(t, []int{1, 2}, m.Items())
	assert.Equal(t, 3, m.Objects())
	assert.True(t, m.Full())
}

func TestMatchesDefaultLimit(t *testing.T) {
	m := New[int](0)
	for i := 0; i < DefaultLimit+5; i++ {
		m.Insert(i)
	}
	assert.Equal(t, DefaultLimit, m.Len())
	assert.Equal(t, DefaultLimit+5, m.Objects())
}

func TestMatchesMerge(t *testing.T) {
	a := New[int](5)
	a.Insert(1)
	a.Insert(2)

	b := New[int](5)
	b.Insert(3)
	b.Insert(4)

	a.Merge(b)
	assert.Equal(t, []int{1, 2, 3, 4}, a.Items())
	assert.Equal(t, 4, a.Objects())
}

func TestMatchesMergeRespectsLimit(t *testing.T) {
	a := New[int](3)
	a.Insert(1)
	a.Insert(2)

	b := New[int](5)
	b.Insert(3)
	b.Insert(4)

	a.Merge(b)
	assert.Equal(t, []int{1, 2, 3}, a.Items())
	assert.Equal(t, 4, a.Objects())
}

func TestMatchesClear(t *testing.T) {
	m := New[int](5)
	m.Insert(1)
	m.Clear()

	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Objects())
}
