package set

import "github.com/denismitr/setkit/alloc"

// denseStore keeps items in a contiguous slice with a map index.
// Iteration follows insertion order until the first removal: Delete
// swaps the last item into the vacated slot, so any removal may
// reorder the remainder. That trade is intentional, it keeps removal
// O(1) and iteration cache-friendly.
type denseStore[E comparable] struct {
	items []E
	index map[E]int
	slots int
}

var _ store[*denseStore[int], int] = (*denseStore[int])(nil)

func newDenseStore[E comparable]() *denseStore[E] {
	return &denseStore[E]{
		index: make(map[E]int),
	}
}

func (d *denseStore[E]) Put(a alloc.Allocator, item E) (bool, error) {
	if _, found := d.index[item]; found {
		return false, nil
	}
	if err := d.Reserve(a, len(d.items)+1); err != nil {
		return false, err
	}
	d.items = append(d.items, item)
	d.index[item] = len(d.items) - 1
	return true, nil
}

func (d *denseStore[E]) Delete(item E) bool {
	at, found := d.index[item]
	if !found {
		return false
	}
	last := len(d.items) - 1
	if at != last {
		d.items[at] = d.items[last]
		d.index[d.items[at]] = at
	}
	d.items = d.items[:last]
	delete(d.index, item)
	return true
}

func (d *denseStore[E]) Has(item E) bool {
	_, found := d.index[item]
	return found
}

func (d *denseStore[E]) Len() int { return len(d.items) }
func (d *denseStore[E]) Cap() int { return d.slots }

func (d *denseStore[E]) Each(fn func(item E) bool) {
	for _, item := range d.items {
		if !fn(item) {
			return
		}
	}
}

func (d *denseStore[E]) Reserve(a alloc.Allocator, n int) error {
	for d.slots < n {
		next := d.slots * 2
		if next < minSlots {
			next = minSlots
		}
		if err := a.Grow(next - d.slots); err != nil {
			return err
		}
		d.slots = next
	}
	return nil
}

func (d *denseStore[E]) Clear() {
	d.items = d.items[:0]
	clear(d.index)
}

func (d *denseStore[E]) Clone(a alloc.Allocator) (*denseStore[E], error) {
	out, err := d.New(a, len(d.items))
	if err != nil {
		return nil, err
	}
	out.items = append(out.items, d.items...)
	for at, item := range out.items {
		out.index[item] = at
	}
	return out, nil
}

func (d *denseStore[E]) New(a alloc.Allocator, n int) (*denseStore[E], error) {
	out := newDenseStore[E]()
	if err := out.Reserve(a, n); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *denseStore[E]) Release(a alloc.Allocator) {
	a.Free(d.slots)
	d.slots = 0
	d.items = nil
	d.index = nil
}
