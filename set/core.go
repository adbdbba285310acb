// Package set provides generic sets with explicit capacity control.
//
// Every variant is a view over one engine parameterized by its backing
// store: Unmanaged and Managed sit on a hash table, DenseUnmanaged and
// DenseManaged on a dense array with swap-removal, ContextUnmanaged and
// ContextManaged on a bucket table driven by a caller-supplied hashing
// Context. Unmanaged variants take an alloc.Allocator on every call
// that may grow the set; Managed variants store one at construction.
//
// Sets are not safe for concurrent use.
package set

import (
	"github.com/denismitr/setkit/alloc"
	"github.com/denismitr/setkit/utils"
)

type core[S store[S, E], E any] struct {
	s S
}

// Insert adds item to the set. It reports whether the set grew; false
// means an equal item was already present. The only possible error is
// an allocation failure while growing the backing store.
func (c *core[S, E]) Insert(a alloc.Allocator, item E) (bool, error) {
	return c.s.Put(a, item)
}

// InsertSlice adds every item, ignoring duplicates, and returns how
// many were newly added. On allocation failure the items inserted
// before the failing one stay in the set and the count covers them.
func (c *core[S, E]) InsertSlice(a alloc.Allocator, items []E) (int, error) {
	added := 0
	for _, item := range items {
		ok, err := c.s.Put(a, item)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Remove discards item and reports whether it was present. Never
// allocates.
func (c *core[S, E]) Remove(item E) bool {
	return c.s.Delete(item)
}

// RemoveSlice discards every given item; absent items are ignored.
func (c *core[S, E]) RemoveSlice(items ...E) {
	for _, item := range items {
		c.s.Delete(item)
	}
}

// RemoveSet discards every item present in other.
func (c *core[S, E]) RemoveSet(other *core[S, E]) {
	other.s.Each(func(item E) bool {
		c.s.Delete(item)
		return true
	})
}

// Pop removes and returns an arbitrary item. The second return is
// false when the set is empty. The item is captured first and removed
// only after iteration has stopped.
func (c *core[S, E]) Pop() (E, bool) {
	if c.s.Len() == 0 {
		return utils.GetZero[E](), false
	}
	var item E
	c.s.Each(func(it E) bool {
		item = it
		return false
	})
	c.s.Delete(item)
	return item, true
}

func (c *core[S, E]) Has(item E) bool {
	return c.s.Has(item)
}

// HasAll reports whether every given item is in the set.
func (c *core[S, E]) HasAll(items ...E) bool {
	for _, item := range items {
		if !c.s.Has(item) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given items is in the set.
func (c *core[S, E]) HasAny(items ...E) bool {
	for _, item := range items {
		if c.s.Has(item) {
			return true
		}
	}
	return false
}

// Len is the number of distinct items in the set.
func (c *core[S, E]) Len() int { return c.s.Len() }

func (c *core[S, E]) IsEmpty() bool { return c.s.Len() == 0 }

// Cap is the slot capacity charged to the allocator. Cap never drops
// below Len and never shrinks except through Release.
func (c *core[S, E]) Cap() int { return c.s.Cap() }

// Items returns the stored items. Hash-backed sets yield them in
// unspecified order; dense sets in insertion order until the first
// removal.
func (c *core[S, E]) Items() []E {
	items := make([]E, 0, c.s.Len())
	c.s.Each(func(item E) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Each calls fn for every item until fn returns false. The set must
// not be mutated while Each is running.
func (c *core[S, E]) Each(fn func(item E) bool) {
	c.s.Each(fn)
}

// Clear discards all items but keeps the reserved capacity.
func (c *core[S, E]) Clear() {
	c.s.Clear()
}

// Reserve grows capacity so that n items fit without further
// allocation.
func (c *core[S, E]) Reserve(a alloc.Allocator, n int) error {
	return c.s.Reserve(a, n)
}

// Release returns all backing memory to the allocator. The set must
// not be used afterwards.
func (c *core[S, E]) Release(a alloc.Allocator) {
	c.s.Release(a)
}

// Clone returns an independent copy charged to a. Items are copied by
// value; reference-like items share their referents with the source.
func (c *core[S, E]) Clone(a alloc.Allocator) (*core[S, E], error) {
	out, err := c.s.Clone(a)
	if err != nil {
		return nil, err
	}
	return &core[S, E]{s: out}, nil
}

// Equal reports whether both sets hold the same items. Differing
// cardinalities reject without a scan.
func (c *core[S, E]) Equal(other *core[S, E]) bool {
	if c.s.Len() != other.s.Len() {
		return false
	}
	equal := true
	c.s.Each(func(item E) bool {
		if !other.s.Has(item) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// SubsetOf reports whether every item of the set is in other.
func (c *core[S, E]) SubsetOf(other *core[S, E]) bool {
	if c.s.Len() > other.s.Len() {
		return false
	}
	subset := true
	c.s.Each(func(item E) bool {
		if !other.s.Has(item) {
			subset = false
			return false
		}
		return true
	})
	return subset
}

// SupersetOf reports whether every item of other is in the set.
func (c *core[S, E]) SupersetOf(other *core[S, E]) bool {
	return other.SubsetOf(c)
}

// ProperSubsetOf is SubsetOf with strictly smaller cardinality.
func (c *core[S, E]) ProperSubsetOf(other *core[S, E]) bool {
	return c.s.Len() < other.s.Len() && c.SubsetOf(other)
}

// ProperSupersetOf is SupersetOf with strictly larger cardinality.
func (c *core[S, E]) ProperSupersetOf(other *core[S, E]) bool {
	return other.ProperSubsetOf(c)
}

// Union returns a new set with every item of both sets. Capacity is
// hinted at the larger of the two cardinalities; the result may still
// grow past it while inserting.
func (c *core[S, E]) Union(a alloc.Allocator, other *core[S, E]) (*core[S, E], error) {
	hint := c.s.Len()
	if other.s.Len() > hint {
		hint = other.s.Len()
	}
	out, err := c.s.New(a, hint)
	if err != nil {
		return nil, err
	}
	if err := insertAll(a, out, c.s); err != nil {
		out.Release(a)
		return nil, err
	}
	if err := insertAll(a, out, other.s); err != nil {
		out.Release(a)
		return nil, err
	}
	return &core[S, E]{s: out}, nil
}

// Intersection returns a new set with the items present in both sets.
// It walks the smaller operand and probes the larger, bounding the
// work by the smaller cardinality.
func (c *core[S, E]) Intersection(a alloc.Allocator, other *core[S, E]) (*core[S, E], error) {
	small, large := c.s, other.s
	if small.Len() > large.Len() {
		small, large = large, small
	}
	out, err := c.s.New(a, 0)
	if err != nil {
		return nil, err
	}
	var failed error
	small.Each(func(item E) bool {
		if !large.Has(item) {
			return true
		}
		if _, err := out.Put(a, item); err != nil {
			failed = err
			return false
		}
		return true
	})
	if failed != nil {
		out.Release(a)
		return nil, failed
	}
	return &core[S, E]{s: out}, nil
}

// Difference returns a new set with the items of the set that are not
// in other.
func (c *core[S, E]) Difference(a alloc.Allocator, other *core[S, E]) (*core[S, E], error) {
	out, err := c.s.New(a, 0)
	if err != nil {
		return nil, err
	}
	if err := insertMissing(a, out, c.s, other.s); err != nil {
		out.Release(a)
		return nil, err
	}
	return &core[S, E]{s: out}, nil
}

// SymmetricDifference returns a new set with the items present in
// exactly one of the two sets.
func (c *core[S, E]) SymmetricDifference(a alloc.Allocator, other *core[S, E]) (*core[S, E], error) {
	out, err := c.s.New(a, 0)
	if err != nil {
		return nil, err
	}
	if err := insertMissing(a, out, c.s, other.s); err != nil {
		out.Release(a)
		return nil, err
	}
	if err := insertMissing(a, out, other.s, c.s); err != nil {
		out.Release(a)
		return nil, err
	}
	return &core[S, E]{s: out}, nil
}

// UnionWith replaces the set's contents with the union of both sets.
func (c *core[S, E]) UnionWith(a alloc.Allocator, other *core[S, E]) error {
	out, err := c.Union(a, other)
	if err != nil {
		return err
	}
	c.swapIn(a, out)
	return nil
}

// IntersectionWith replaces the set's contents with the intersection
// of both sets.
func (c *core[S, E]) IntersectionWith(a alloc.Allocator, other *core[S, E]) error {
	out, err := c.Intersection(a, other)
	if err != nil {
		return err
	}
	c.swapIn(a, out)
	return nil
}

// DifferenceWith removes every item present in other.
func (c *core[S, E]) DifferenceWith(a alloc.Allocator, other *core[S, E]) error {
	out, err := c.Difference(a, other)
	if err != nil {
		return err
	}
	c.swapIn(a, out)
	return nil
}

// SymmetricDifferenceWith replaces the set's contents with the items
// present in exactly one of the two sets.
func (c *core[S, E]) SymmetricDifferenceWith(a alloc.Allocator, other *core[S, E]) error {
	out, err := c.SymmetricDifference(a, other)
	if err != nil {
		return err
	}
	c.swapIn(a, out)
	return nil
}

// swapIn releases the current store and adopts the replacement's. The
// in-place algebra goes through here so that a store is never mutated
// while it is being iterated: the result is built fully first, then
// swapped in. On the error paths above the receiver is untouched.
func (c *core[S, E]) swapIn(a alloc.Allocator, repl *core[S, E]) {
	c.s.Release(a)
	c.s = repl.s
}

func insertAll[S store[S, E], E any](a alloc.Allocator, dst S, src S) error {
	var failed error
	src.Each(func(item E) bool {
		if _, err := dst.Put(a, item); err != nil {
			failed = err
			return false
		}
		return true
	})
	return failed
}

// insertMissing copies into dst the items of src that are absent from
// probe.
func insertMissing[S store[S, E], E any](a alloc.Allocator, dst S, src S, probe S) error {
	var failed error
	src.Each(func(item E) bool {
		if probe.Has(item) {
			return true
		}
		if _, err := dst.Put(a, item); err != nil {
			failed = err
			return false
		}
		return true
	})
	return failed
}
