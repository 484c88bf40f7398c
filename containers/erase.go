package containers

import (
	"container/list"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EraseListFunc removes every element of l for which pred returns true,
// returning the number removed. Removal is per node, the order of the
// remaining elements is unchanged.
func EraseListFunc(l *list.List, pred func(value any) bool) (n int) {
	for elem := l.Front(); elem != nil; {
		next := elem.Next()
		if pred(elem.Value) {
			l.Remove(elem)
			n++
		}
		elem = next
	}
	return
}

// EraseMapFunc deletes every entry of m for which pred returns true,
// returning the number deleted.
func EraseMapFunc[M ~map[K]V, K comparable, V any](m M, pred func(K, V) bool) int {
	before := len(m)
	maps.DeleteFunc(m, pred)
	return before - len(m)
}

// EraseSliceFunc removes every element of s for which pred returns true,
// returning the modified slice. The order of the remaining elements is
// unchanged, and vacated elements are zeroed.
func EraseSliceFunc[S ~[]E, E any](s S, pred func(E) bool) S {
	n := len(s)
	s = slices.DeleteFunc(s, pred)
	clear(s[len(s):n])
	return s
}
