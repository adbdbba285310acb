// Package alloc provides the capacity accounting that setkit containers
// grow through. An Allocator hands out logical slots and may refuse to:
// every container operation that can grow its backing store reports that
// refusal as an error instead of growing.
package alloc

import "errors"

var ErrOutOfMemory = errors.New("alloc: out of memory")

// Allocator grants and reclaims logical capacity slots. Implementations
// must tolerate Grow and Free being called with zero or negative counts
// as no-ops. An Allocator is borrowed, never owned, by the containers
// using it: releasing a container returns its slots but never touches
// the allocator's own lifecycle.
type Allocator interface {
	Grow(slots int) error
	Free(slots int)
}

type heap struct{}

func (heap) Grow(int) error { return nil }
func (heap) Free(int)       {}

// Heap returns the default allocator. It is backed by the Go runtime
// and never fails.
func Heap() Allocator {
	return heap{}
}

// Budget is an allocator with a fixed slot limit. Grow fails with
// ErrOutOfMemory once the limit would be exceeded. Useful for arena
// and scratch patterns where a computation must stay within a bound.
type Budget struct {
	limit int
	used  int
}

func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

func (b *Budget) Grow(slots int) error {
	if slots <= 0 {
		return nil
	}
	if b.used+slots > b.limit {
		return ErrOutOfMemory
	}
	b.used += slots
	return nil
}

func (b *Budget) Free(slots int) {
	if slots <= 0 {
		return
	}
	b.used -= slots
	if b.used < 0 {
		b.used = 0
	}
}

// Reset reclaims every slot at once, regardless of outstanding Frees.
func (b *Budget) Reset() {
	b.used = 0
}

func (b *Budget) Limit() int { return b.limit }

func (b *Budget) InUse() int { return b.used }

func (b *Budget) Remaining() int { return b.limit - b.used }

// Counting wraps another allocator and tracks the slot balance passing
// through it.
type Counting struct {
	inner Allocator
	grown int
	freed int
}

func NewCounting(inner Allocator) *Counting {
	return &Counting{inner: inner}
}

func (c *Counting) Grow(slots int) error {
	if slots <= 0 {
		return nil
	}
	if err := c.inner.Grow(slots); err != nil {
		return err
	}
	c.grown += slots
	return nil
}

func (c *Counting) Free(slots int) {
	if slots <= 0 {
		return
	}
	c.inner.Free(slots)
	c.freed += slots
}

func (c *Counting) Grown() int { return c.grown }
func (c *Counting) Freed() int { return c.freed }

// InUse reports slots granted but not yet returned.
func (c *Counting) InUse() int { return c.grown - c.freed }

type failAfter struct {
	remaining int
}

// FailAfter returns an allocator that satisfies the first n Grow calls
// and fails every one after that. Free is always accepted. Intended for
// exercising allocation-failure paths in tests.
func FailAfter(n int) Allocator {
	return &failAfter{remaining: n}
}

func (f *failAfter) Grow(slots int) error {
	if slots <= 0 {
		return nil
	}
	if f.remaining == 0 {
		return ErrOutOfMemory
	}
	f.remaining--
	return nil
}

func (f *failAfter) Free(int) {}
