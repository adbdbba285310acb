package set

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// Context supplies the hashing and equality strategy for context-backed
// sets. Implementations must be pure value types: Hash and Eql may not
// mutate state, and items equal under Eql must hash identically.
//
// Combining two sets built with incompatible Contexts (say a
// case-sensitive and a case-folded string context) has no defined
// meaning; keeping the operands' contexts compatible is the caller's
// responsibility.
type Context[E any] interface {
	Hash(item E) uint64
	Eql(x, y E) bool
}

// StringContext hashes strings by content.
type StringContext struct{}

var _ Context[string] = StringContext{}

func (StringContext) Hash(item string) uint64 { return xxhash.Sum64String(item) }

func (StringContext) Eql(x, y string) bool { return x == y }

// FoldedStringContext compares strings under Unicode case folding, so
// "Grün" and "GRÜN" land on the same slot.
type FoldedStringContext struct{}

var _ Context[string] = FoldedStringContext{}

func (FoldedStringContext) Hash(item string) uint64 {
	return xxhash.Sum64String(cases.Fold().String(item))
}

func (FoldedStringContext) Eql(x, y string) bool {
	return cases.Fold().String(x) == cases.Fold().String(y)
}

// BytesContext lets byte slices, which are not comparable, be set
// elements. Slices are compared by content; the set stores the slice
// headers, not copies of the bytes.
type BytesContext struct{}

var _ Context[[]byte] = BytesContext{}

func (BytesContext) Hash(item []byte) uint64 { return xxhash.Sum64(item) }

func (BytesContext) Eql(x, y []byte) bool { return bytes.Equal(x, y) }
