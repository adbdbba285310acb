package set

import "github.com/denismitr/dll"

// Linked is an insertion-ordered set over a doubly linked list. Unlike
// DenseUnmanaged it removes stably: taking an item out never reorders
// the others. It lives outside the allocator discipline; the garbage
// collector owns its nodes.
type Linked[E comparable] struct {
	m    map[E]*dll.Element[E]
	list *dll.DoublyLinkedList[E]
}

func NewLinked[E comparable]() *Linked[E] {
	return &Linked[E]{
		m:    make(map[E]*dll.Element[E]),
		list: dll.New[E](),
	}
}

// Insert adds item unless an equal one is present and reports whether
// the set grew.
func (s *Linked[E]) Insert(item E) bool {
	if _, found := s.m[item]; found {
		return false
	}
	el := dll.NewElement(item)
	s.m[item] = el
	s.list.PushTail(el)
	return true
}

// InsertSlice adds every item, ignoring duplicates, and returns how
// many were newly added.
func (s *Linked[E]) InsertSlice(items []E) int {
	added := 0
	for _, item := range items {
		if s.Insert(item) {
			added++
		}
	}
	return added
}

// InsertSet adds every item of other and reports whether the set grew.
func (s *Linked[E]) InsertSet(other *Linked[E]) bool {
	modified := false
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		if s.Insert(curr.Value()) {
			modified = true
		}
	}
	return modified
}

// Remove discards item and reports whether it was present. The order
// of the remaining items is preserved.
func (s *Linked[E]) Remove(item E) bool {
	el, found := s.m[item]
	if !found {
		return false
	}
	delete(s.m, item)
	s.list.Remove(el)
	return true
}

func (s *Linked[E]) Has(item E) bool {
	_, found := s.m[item]
	return found
}

func (s *Linked[E]) Len() int { return len(s.m) }

func (s *Linked[E]) IsEmpty() bool { return len(s.m) == 0 }

// Items returns the stored items in insertion order.
func (s *Linked[E]) Items() []E {
	items := make([]E, 0, len(s.m))
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value())
	}
	return items
}

// Each calls fn for every item in insertion order until fn returns
// false. The set must not be mutated while Each is running.
func (s *Linked[E]) Each(fn func(item E) bool) {
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if !fn(curr.Value()) {
			return
		}
	}
}

func (s *Linked[E]) Clear() {
	s.m = make(map[E]*dll.Element[E])
	s.list = dll.New[E]()
}

// Clone returns an independent copy preserving insertion order.
func (s *Linked[E]) Clone() *Linked[E] {
	out := NewLinked[E]()
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		out.Insert(curr.Value())
	}
	return out
}

// Equal reports whether both sets hold the same items, regardless of
// the order they were inserted in.
func (s *Linked[E]) Equal(other *Linked[E]) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for item := range s.m {
		if _, found := other.m[item]; !found {
			return false
		}
	}
	return true
}
