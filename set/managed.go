package set

import "github.com/denismitr/setkit/alloc"

// managed pairs an engine with the allocator it was built with, so
// callers stop threading one through every call. It forwards without
// changing semantics: a managed set and an unmanaged set fed the same
// calls behave identically.
type managed[S store[S, E], E any] struct {
	u *core[S, E]
	a alloc.Allocator
}

type (
	// Managed is Unmanaged with a stored allocator.
	Managed[E comparable] = managed[*hashStore[E], E]

	// DenseManaged is DenseUnmanaged with a stored allocator.
	DenseManaged[E comparable] = managed[*denseStore[E], E]

	// ContextManaged is ContextUnmanaged with a stored allocator.
	ContextManaged[E any] = managed[*bucketStore[E], E]
)

// NewManaged returns an empty hash-backed set operating through a.
// The allocator is borrowed for the set's lifetime, never owned.
func NewManaged[E comparable](a alloc.Allocator) *Managed[E] {
	return &Managed[E]{u: NewUnmanaged[E](), a: a}
}

// NewManagedCap returns a hash-backed managed set with room for n
// items already charged.
func NewManagedCap[E comparable](a alloc.Allocator, n int) (*Managed[E], error) {
	u, err := NewUnmanagedCap[E](a, n)
	if err != nil {
		return nil, err
	}
	return &Managed[E]{u: u, a: a}, nil
}

// NewManagedLoadFactor returns a managed hash-backed set growing once
// it is pct percent full. pct must be in [1, 100]; anything else
// panics.
func NewManagedLoadFactor[E comparable](a alloc.Allocator, pct int) *Managed[E] {
	return &Managed[E]{u: NewUnmanagedLoadFactor[E](pct), a: a}
}

// NewDenseManaged returns an empty array-backed set operating through a.
func NewDenseManaged[E comparable](a alloc.Allocator) *DenseManaged[E] {
	return &DenseManaged[E]{u: NewDenseUnmanaged[E](), a: a}
}

// NewDenseManagedCap returns an array-backed managed set with room for
// n items already charged.
func NewDenseManagedCap[E comparable](a alloc.Allocator, n int) (*DenseManaged[E], error) {
	u, err := NewDenseUnmanagedCap[E](a, n)
	if err != nil {
		return nil, err
	}
	return &DenseManaged[E]{u: u, a: a}, nil
}

// NewContextManaged returns a managed set hashing through ctx.
func NewContextManaged[E any](a alloc.Allocator, ctx Context[E]) *ContextManaged[E] {
	return &ContextManaged[E]{u: NewContextUnmanaged[E](ctx), a: a}
}

// Unmanaged exposes the inner engine, for call sites that want to run
// a stretch of operations under a different allocator.
func (m *managed[S, E]) Unmanaged() *core[S, E] { return m.u }

// Allocator is the allocator the set was built with.
func (m *managed[S, E]) Allocator() alloc.Allocator { return m.a }

func (m *managed[S, E]) Insert(item E) (bool, error) {
	return m.u.Insert(m.a, item)
}

func (m *managed[S, E]) InsertSlice(items []E) (int, error) {
	return m.u.InsertSlice(m.a, items)
}

func (m *managed[S, E]) Remove(item E) bool {
	return m.u.Remove(item)
}

func (m *managed[S, E]) RemoveSlice(items ...E) {
	m.u.RemoveSlice(items...)
}

func (m *managed[S, E]) RemoveSet(other *managed[S, E]) {
	m.u.RemoveSet(other.u)
}

func (m *managed[S, E]) Pop() (E, bool) { return m.u.Pop() }

func (m *managed[S, E]) Has(item E) bool { return m.u.Has(item) }

func (m *managed[S, E]) HasAll(items ...E) bool { return m.u.HasAll(items...) }

func (m *managed[S, E]) HasAny(items ...E) bool { return m.u.HasAny(items...) }

func (m *managed[S, E]) Len() int { return m.u.Len() }

func (m *managed[S, E]) IsEmpty() bool { return m.u.IsEmpty() }

func (m *managed[S, E]) Cap() int { return m.u.Cap() }

func (m *managed[S, E]) Items() []E { return m.u.Items() }

func (m *managed[S, E]) Each(fn func(item E) bool) { m.u.Each(fn) }

func (m *managed[S, E]) Clear() { m.u.Clear() }

func (m *managed[S, E]) Reserve(n int) error {
	return m.u.Reserve(m.a, n)
}

// Release returns all backing memory to the stored allocator. The set
// must not be used afterwards.
func (m *managed[S, E]) Release() {
	m.u.Release(m.a)
}

// Clone returns an independent copy under the same allocator.
func (m *managed[S, E]) Clone() (*managed[S, E], error) {
	u, err := m.u.Clone(m.a)
	if err != nil {
		return nil, err
	}
	return &managed[S, E]{u: u, a: m.a}, nil
}

// CloneWith returns an independent copy whose backing store and all
// future operations run through a instead of the original allocator.
// Useful for re-homing a set into an arena or scratch allocator.
func (m *managed[S, E]) CloneWith(a alloc.Allocator) (*managed[S, E], error) {
	u, err := m.u.Clone(a)
	if err != nil {
		return nil, err
	}
	return &managed[S, E]{u: u, a: a}, nil
}

func (m *managed[S, E]) Equal(other *managed[S, E]) bool {
	return m.u.Equal(other.u)
}

func (m *managed[S, E]) SubsetOf(other *managed[S, E]) bool {
	return m.u.SubsetOf(other.u)
}

func (m *managed[S, E]) SupersetOf(other *managed[S, E]) bool {
	return m.u.SupersetOf(other.u)
}

func (m *managed[S, E]) ProperSubsetOf(other *managed[S, E]) bool {
	return m.u.ProperSubsetOf(other.u)
}

func (m *managed[S, E]) ProperSupersetOf(other *managed[S, E]) bool {
	return m.u.ProperSupersetOf(other.u)
}

// Union returns a new managed set, under this set's allocator, with
// every item of both sets.
func (m *managed[S, E]) Union(other *managed[S, E]) (*managed[S, E], error) {
	u, err := m.u.Union(m.a, other.u)
	if err != nil {
		return nil, err
	}
	return &managed[S, E]{u: u, a: m.a}, nil
}

// Intersection returns a new managed set with the items present in
// both sets.
func (m *managed[S, E]) Intersection(other *managed[S, E]) (*managed[S, E], error) {
	u, err := m.u.Intersection(m.a, other.u)
	if err != nil {
		return nil, err
	}
	return &managed[S, E]{u: u, a: m.a}, nil
}

// Difference returns a new managed set with the items of this set that
// are not in other.
func (m *managed[S, E]) Difference(other *managed[S, E]) (*managed[S, E], error) {
	u, err := m.u.Difference(m.a, other.u)
	if err != nil {
		return nil, err
	}
	return &managed[S, E]{u: u, a: m.a}, nil
}

// SymmetricDifference returns a new managed set with the items present
// in exactly one of the two sets.
func (m *managed[S, E]) SymmetricDifference(other *managed[S, E]) (*managed[S, E], error) {
	u, err := m.u.SymmetricDifference(m.a, other.u)
	if err != nil {
		return nil, err
	}
	return &managed[S, E]{u: u, a: m.a}, nil
}

func (m *managed[S, E]) UnionWith(other *managed[S, E]) error {
	return m.u.UnionWith(m.a, other.u)
}

func (m *managed[S, E]) IntersectionWith(other *managed[S, E]) error {
	return m.u.IntersectionWith(m.a, other.u)
}

func (m *managed[S, E]) DifferenceWith(other *managed[S, E]) error {
	return m.u.DifferenceWith(m.a, other.u)
}

func (m *managed[S, E]) SymmetricDifferenceWith(other *managed[S, E]) error {
	return m.u.SymmetricDifferenceWith(m.a, other.u)
}
