package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Sorted returns the set's items in ascending order. Handy for
// asserting on hash-backed sets, whose own iteration order is
// unspecified.
func Sorted[S store[S, E], E constraints.Ordered](s *core[S, E]) []E {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}
