package set_test

import (
	"testing"

	"github.com/denismitr/setkit/alloc"
	"github.com/denismitr/setkit/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManaged_ForwardsToTheEngine(t *testing.T) {
	t.Run("same behaviour as unmanaged for the same calls", func(t *testing.T) {
		m := set.NewManaged[int](alloc.Heap())
		u := set.NewUnmanaged[int]()

		for _, item := range []int{4, 8, 15, 16, 23, 42, 8, 15} {
			mAdded, err := m.Insert(item)
			require.NoError(t, err)
			uAdded, err := u.Insert(heap, item)
			require.NoError(t, err)
			assert.Equal(t, uAdded, mAdded)
		}

		m.Remove(15)
		u.Remove(15)

		assert.Equal(t, u.Len(), m.Len())
		assert.Equal(t, set.Sorted(u), set.Sorted(m.Unmanaged()))
	})

	t.Run("exposes its allocator and engine", func(t *testing.T) {
		b := alloc.NewBudget(64)
		m := set.NewManaged[int](b)

		assert.Same(t, b, m.Allocator())

		_, err := m.Insert(1)
		require.NoError(t, err)
		assert.True(t, m.Unmanaged().Has(1))
	})
}

func TestManaged_Algebra(t *testing.T) {
	newManaged := func(t *testing.T, items ...int) *set.Managed[int] {
		t.Helper()
		m := set.NewManaged[int](alloc.Heap())
		_, err := m.InsertSlice(items)
		require.NoError(t, err)
		return m
	}

	t.Run("union, intersection, differences", func(t *testing.T) {
		a := newManaged(t, 1, 2, 3, 4)
		b := newManaged(t, 3, 4, 5)

		u, err := a.Union(b)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, set.Sorted(u.Unmanaged()))

		i, err := a.Intersection(b)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4}, set.Sorted(i.Unmanaged()))

		d, err := a.Difference(b)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, set.Sorted(d.Unmanaged()))

		sd, err := a.SymmetricDifference(b)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 5}, set.Sorted(sd.Unmanaged()))
	})

	t.Run("in-place updates", func(t *testing.T) {
		a := newManaged(t, 1, 2, 3)
		b := newManaged(t, 3, 4)

		require.NoError(t, a.UnionWith(b))
		assert.Equal(t, []int{1, 2, 3, 4}, set.Sorted(a.Unmanaged()))

		require.NoError(t, a.IntersectionWith(b))
		assert.Equal(t, []int{3, 4}, set.Sorted(a.Unmanaged()))

		require.NoError(t, a.DifferenceWith(b))
		assert.True(t, a.IsEmpty())
	})

	t.Run("relations", func(t *testing.T) {
		a := newManaged(t, 1, 2)
		b := newManaged(t, 1, 2, 3)

		assert.True(t, a.SubsetOf(b))
		assert.True(t, a.ProperSubsetOf(b))
		assert.True(t, b.SupersetOf(a))
		assert.True(t, b.ProperSupersetOf(a))
		assert.False(t, a.Equal(b))

		_, err := a.Insert(3)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
		assert.False(t, a.ProperSubsetOf(b))
	})

	t.Run("remove set and pop", func(t *testing.T) {
		a := newManaged(t, 1, 2, 3, 4)
		b := newManaged(t, 2, 4)

		a.RemoveSet(b)
		assert.Equal(t, []int{1, 3}, set.Sorted(a.Unmanaged()))

		_, ok := a.Pop()
		assert.True(t, ok)
		_, ok = a.Pop()
		assert.True(t, ok)
		_, ok = a.Pop()
		assert.False(t, ok)
	})
}

func TestManaged_CloneWith(t *testing.T) {
	t.Run("clone re-homes under the new allocator", func(t *testing.T) {
		original := alloc.NewCounting(alloc.Heap())
		scratch := alloc.NewCounting(alloc.Heap())

		m := set.NewManaged[int](original)
		_, err := m.InsertSlice([]int{1, 2, 3, 4, 5})
		require.NoError(t, err)

		grownBefore := original.Grown()

		c, err := m.CloneWith(scratch)
		require.NoError(t, err)
		assert.True(t, c.Unmanaged().Equal(m.Unmanaged()))
		assert.Same(t, scratch, c.Allocator())
		assert.Equal(t, grownBefore, original.Grown(), "clone must not charge the source allocator")
		assert.Greater(t, scratch.Grown(), 0)

		// future growth of the clone stays on the new allocator
		for i := 10; i < 40; i++ {
			_, err := c.Insert(i)
			require.NoError(t, err)
		}
		assert.Equal(t, grownBefore, original.Grown())

		c.Release()
		assert.Equal(t, 0, scratch.InUse())
	})

	t.Run("clone under the same allocator", func(t *testing.T) {
		m := set.NewManaged[int](alloc.Heap())
		_, err := m.InsertSlice([]int{1, 2, 3})
		require.NoError(t, err)

		c, err := m.Clone()
		require.NoError(t, err)
		assert.True(t, c.Equal(m))

		c.Remove(1)
		assert.True(t, m.Has(1))
	})

	t.Run("clone into an exhausted budget fails", func(t *testing.T) {
		m := set.NewManaged[int](alloc.Heap())
		_, err := m.InsertSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		require.NoError(t, err)

		_, err = m.CloneWith(alloc.NewBudget(4))
		assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
	})
}

func TestManaged_ReleaseReturnsMemory(t *testing.T) {
	c := alloc.NewCounting(alloc.Heap())
	m := set.NewManaged[string](c)

	_, err := m.InsertSlice([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"})
	require.NoError(t, err)
	require.Greater(t, c.InUse(), 0)

	m.Release()
	assert.Equal(t, 0, c.InUse())
}

func TestDenseManaged(t *testing.T) {
	t.Run("keeps dense semantics through the wrapper", func(t *testing.T) {
		m := set.NewDenseManaged[string](alloc.Heap())
		_, err := m.InsertSlice([]string{"foo", "bar", "baz", "123"})
		require.NoError(t, err)

		assert.Equal(t, []string{"foo", "bar", "baz", "123"}, m.Items())

		m.Remove("bar")
		assert.Equal(t, []string{"foo", "123", "baz"}, m.Items())
	})

	t.Run("capacity constructor", func(t *testing.T) {
		m, err := set.NewDenseManagedCap[int](alloc.Heap(), 12)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m.Cap(), 12)
	})
}

func TestManaged_LoadFactor(t *testing.T) {
	m := set.NewManagedLoadFactor[int](alloc.Heap(), 50)
	for i := 0; i < 10; i++ {
		_, err := m.Insert(i)
		require.NoError(t, err)
	}
	assert.Equal(t, 10, m.Len())
	assert.GreaterOrEqual(t, m.Cap(), m.Len())
}
