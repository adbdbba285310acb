package set_test

import (
	"testing"

	"github.com/denismitr/setkit/set"
	"github.com/stretchr/testify/assert"
)

func TestLinked_StableRemoval(t *testing.T) {
	t.Run("remove from the middle keeps order", func(t *testing.T) {
		s := set.NewLinked[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("bar"))
		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("remove from the beginning keeps order", func(t *testing.T) {
		s := set.NewLinked[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")

		assert.True(t, s.Remove("foo"))
		assert.Equal(t, []string{"bar", "baz"}, s.Items())
		assert.False(t, s.Has("foo"))
	})

	t.Run("remove from the end keeps order", func(t *testing.T) {
		s := set.NewLinked[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")

		assert.True(t, s.Remove("baz"))
		assert.Equal(t, []string{"foo", "bar"}, s.Items())
	})

	t.Run("removing an absent item reports false", func(t *testing.T) {
		s := set.NewLinked[string]()
		s.Insert("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestLinked_Insert(t *testing.T) {
	t.Run("duplicates are rejected and order kept", func(t *testing.T) {
		s := set.NewLinked[int]()
		assert.True(t, s.Insert(3))
		assert.True(t, s.Insert(1))
		assert.False(t, s.Insert(3))
		assert.True(t, s.Insert(2))

		assert.Equal(t, []int{3, 1, 2}, s.Items())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("insert slice counts newly added", func(t *testing.T) {
		s := set.NewLinked[int]()
		s.Insert(3)

		assert.Equal(t, 1, s.InsertSlice([]int{9, 3}))
		assert.Equal(t, []int{3, 9}, s.Items())
	})

	t.Run("insert set appends in the source's order", func(t *testing.T) {
		s1 := set.NewLinked[int]()
		s1.Insert(3)

		s2 := set.NewLinked[int]()
		s2.Insert(9)
		s2.Insert(3)

		assert.True(t, s1.InsertSet(s2))
		assert.Equal(t, []int{3, 9}, s1.Items())
		assert.Equal(t, []int{9, 3}, s2.Items(), "source must be untouched")
	})
}

func TestLinked_CloneAndEqual(t *testing.T) {
	s := set.NewLinked[int]()
	s.Insert(5)
	s.Insert(1)
	s.Insert(9)

	c := s.Clone()
	assert.True(t, c.Equal(s))
	assert.Equal(t, []int{5, 1, 9}, c.Items())

	c.Remove(1)
	assert.False(t, c.Equal(s))
	assert.Equal(t, []int{5, 1, 9}, s.Items())
}

func TestLinked_EachAndClear(t *testing.T) {
	s := set.NewLinked[int]()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	var visited []int
	s.Each(func(item int) bool {
		visited = append(visited, item)
		return item < 2
	})
	assert.Equal(t, []int{1, 2}, visited)

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Insert(1))
}
