package set

import (
	"fmt"

	"github.com/denismitr/setkit/alloc"
)

type (
	// Unmanaged is a hash-backed set taking an allocator on every call
	// that may grow it. Iteration order is unspecified and may change
	// after any insert that resizes the table.
	Unmanaged[E comparable] = core[*hashStore[E], E]

	// DenseUnmanaged is an array-backed set. Iteration follows
	// insertion order until the first removal; removal swaps the last
	// item into the vacated slot, so any removal may reorder the rest.
	DenseUnmanaged[E comparable] = core[*denseStore[E], E]

	// ContextUnmanaged is a set whose hashing and equality come from a
	// caller-supplied Context. The element type does not have to be
	// comparable.
	ContextUnmanaged[E any] = core[*bucketStore[E], E]
)

// NewUnmanaged returns an empty hash-backed set. No memory is charged
// until the first insert.
func NewUnmanaged[E comparable]() *Unmanaged[E] {
	return &Unmanaged[E]{s: newHashStore[E](defaultLoadFactor)}
}

// NewUnmanagedCap returns a hash-backed set with room for n items
// already charged to a.
func NewUnmanagedCap[E comparable](a alloc.Allocator, n int) (*Unmanaged[E], error) {
	u := NewUnmanaged[E]()
	if err := u.Reserve(a, n); err != nil {
		return nil, err
	}
	return u, nil
}

// NewUnmanagedLoadFactor returns a hash-backed set growing once it is
// pct percent full. pct must be in [1, 100]; anything else panics.
// The load factor shifts when resizes happen, never what the set
// contains.
func NewUnmanagedLoadFactor[E comparable](pct int) *Unmanaged[E] {
	if pct < 1 || pct > 100 {
		panic(fmt.Sprintf("set: load factor %d out of range [1, 100]", pct))
	}
	return &Unmanaged[E]{s: newHashStore[E](pct)}
}

// NewDenseUnmanaged returns an empty array-backed set.
func NewDenseUnmanaged[E comparable]() *DenseUnmanaged[E] {
	return &DenseUnmanaged[E]{s: newDenseStore[E]()}
}

// NewDenseUnmanagedCap returns an array-backed set with room for n
// items already charged to a.
func NewDenseUnmanagedCap[E comparable](a alloc.Allocator, n int) (*DenseUnmanaged[E], error) {
	u := NewDenseUnmanaged[E]()
	if err := u.Reserve(a, n); err != nil {
		return nil, err
	}
	return u, nil
}

// NewContextUnmanaged returns an empty set hashing through ctx.
func NewContextUnmanaged[E any](ctx Context[E]) *ContextUnmanaged[E] {
	return &ContextUnmanaged[E]{s: newBucketStore[E](ctx, defaultLoadFactor)}
}

// NewContextUnmanagedCap returns a context set with room for n items
// already charged to a.
func NewContextUnmanagedCap[E any](a alloc.Allocator, ctx Context[E], n int) (*ContextUnmanaged[E], error) {
	u := NewContextUnmanaged[E](ctx)
	if err := u.Reserve(a, n); err != nil {
		return nil, err
	}
	return u, nil
}
