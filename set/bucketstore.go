package set

import "github.com/denismitr/setkit/alloc"

// bucketStore chains items under the 64-bit hash of a caller-supplied
// Context. It is the only store that accepts non-comparable element
// types, since both hashing and equality go through the Context.
type bucketStore[E any] struct {
	ctx     Context[E]
	buckets map[uint64][]E
	count   int
	slots   int
	load    int
}

var _ store[*bucketStore[string], string] = (*bucketStore[string])(nil)

func newBucketStore[E any](ctx Context[E], load int) *bucketStore[E] {
	return &bucketStore[E]{
		ctx:     ctx,
		buckets: make(map[uint64][]E),
		load:    load,
	}
}

func (b *bucketStore[E]) find(item E) (uint64, int) {
	sum := b.ctx.Hash(item)
	for at, have := range b.buckets[sum] {
		if b.ctx.Eql(have, item) {
			return sum, at
		}
	}
	return sum, -1
}

func (b *bucketStore[E]) Put(a alloc.Allocator, item E) (bool, error) {
	sum, at := b.find(item)
	if at >= 0 {
		return false, nil
	}
	if err := b.Reserve(a, b.count+1); err != nil {
		return false, err
	}
	b.buckets[sum] = append(b.buckets[sum], item)
	b.count++
	return true, nil
}

func (b *bucketStore[E]) Delete(item E) bool {
	sum, at := b.find(item)
	if at < 0 {
		return false
	}
	bucket := b.buckets[sum]
	last := len(bucket) - 1
	bucket[at] = bucket[last]
	bucket = bucket[:last]
	if len(bucket) == 0 {
		delete(b.buckets, sum)
	} else {
		b.buckets[sum] = bucket
	}
	b.count--
	return true
}

func (b *bucketStore[E]) Has(item E) bool {
	_, at := b.find(item)
	return at >= 0
}

func (b *bucketStore[E]) Len() int { return b.count }
func (b *bucketStore[E]) Cap() int { return b.slots }

func (b *bucketStore[E]) Each(fn func(item E) bool) {
	for _, bucket := range b.buckets {
		for _, item := range bucket {
			if !fn(item) {
				return
			}
		}
	}
}

func (b *bucketStore[E]) Reserve(a alloc.Allocator, n int) error {
	for b.slots*b.load < n*100 {
		next := b.slots * 2
		if next < minSlots {
			next = minSlots
		}
		if err := a.Grow(next - b.slots); err != nil {
			return err
		}
		b.slots = next
	}
	return nil
}

func (b *bucketStore[E]) Clear() {
	clear(b.buckets)
	b.count = 0
}

func (b *bucketStore[E]) Clone(a alloc.Allocator) (*bucketStore[E], error) {
	out, err := b.New(a, b.count)
	if err != nil {
		return nil, err
	}
	for sum, bucket := range b.buckets {
		out.buckets[sum] = append([]E(nil), bucket...)
	}
	out.count = b.count
	return out, nil
}

func (b *bucketStore[E]) New(a alloc.Allocator, n int) (*bucketStore[E], error) {
	out := newBucketStore[E](b.ctx, b.load)
	if err := out.Reserve(a, n); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *bucketStore[E]) Release(a alloc.Allocator) {
	a.Free(b.slots)
	b.slots = 0
	b.buckets = nil
	b.count = 0
}
