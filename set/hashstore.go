package set

import "github.com/denismitr/setkit/alloc"

const (
	defaultLoadFactor = 80
	minSlots          = 8
)

// hashStore keeps items as keys of a built-in map. Removal is stable;
// iteration order is unspecified.
type hashStore[E comparable] struct {
	m     map[E]struct{}
	slots int
	load  int // growth threshold percentage, 1-100
}

var _ store[*hashStore[int], int] = (*hashStore[int])(nil)

func newHashStore[E comparable](load int) *hashStore[E] {
	return &hashStore[E]{
		m:    make(map[E]struct{}),
		load: load,
	}
}

func (h *hashStore[E]) Put(a alloc.Allocator, item E) (bool, error) {
	if _, found := h.m[item]; found {
		return false, nil
	}
	if err := h.Reserve(a, len(h.m)+1); err != nil {
		return false, err
	}
	h.m[item] = struct{}{}
	return true, nil
}

func (h *hashStore[E]) Delete(item E) bool {
	if _, found := h.m[item]; !found {
		return false
	}
	delete(h.m, item)
	return true
}

func (h *hashStore[E]) Has(item E) bool {
	_, found := h.m[item]
	return found
}

func (h *hashStore[E]) Len() int { return len(h.m) }
func (h *hashStore[E]) Cap() int { return h.slots }

func (h *hashStore[E]) Each(fn func(item E) bool) {
	for item := range h.m {
		if !fn(item) {
			return
		}
	}
}

func (h *hashStore[E]) Reserve(a alloc.Allocator, n int) error {
	for h.slots*h.load < n*100 {
		next := h.slots * 2
		if next < minSlots {
			next = minSlots
		}
		if err := a.Grow(next - h.slots); err != nil {
			return err
		}
		h.slots = next
	}
	return nil
}

func (h *hashStore[E]) Clear() {
	clear(h.m)
}

func (h *hashStore[E]) Clone(a alloc.Allocator) (*hashStore[E], error) {
	out, err := h.New(a, len(h.m))
	if err != nil {
		return nil, err
	}
	for item := range h.m {
		out.m[item] = struct{}{}
	}
	return out, nil
}

func (h *hashStore[E]) New(a alloc.Allocator, n int) (*hashStore[E], error) {
	out := newHashStore[E](h.load)
	if err := out.Reserve(a, n); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *hashStore[E]) Release(a alloc.Allocator) {
	a.Free(h.slots)
	h.slots = 0
	h.m = nil
}
