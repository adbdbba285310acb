package set

import "github.com/denismitr/setkit/alloc"

// store is the backing-table contract the engine is generic over. The
// self-referential S parameter lets Clone and New return the concrete
// store type instead of an interface.
//
// Stores own their memory exclusively; two stores never share state.
// Any mutation (Put, Delete, Clear, Reserve, Release) invalidates a
// running Each over the same store.
type store[S any, E any] interface {
	// Put inserts item unless an equal one is present. It reports
	// whether the store grew by one.
	Put(a alloc.Allocator, item E) (bool, error)

	// Delete discards item if present and reports whether it did.
	// Never allocates.
	Delete(item E) bool

	Has(item E) bool
	Len() int

	// Cap is the slot capacity currently charged to the allocator.
	// Always >= Len; never shrinks except through Release.
	Cap() int

	// Each calls fn for every item until fn returns false.
	Each(fn func(item E) bool)

	// Reserve grows capacity so that n items fit without further
	// allocation.
	Reserve(a alloc.Allocator, n int) error

	// Clear discards all items but keeps the reserved capacity.
	Clear()

	// Clone returns an independent copy charged to a.
	Clone(a alloc.Allocator) (S, error)

	// New returns an empty store sharing this store's configuration
	// (load factor, context) but none of its state, with room for at
	// least n items.
	New(a alloc.Allocator, n int) (S, error)

	// Release returns every charged slot to a. The store must not be
	// used afterwards.
	Release(a alloc.Allocator)
}
