package containers

import (
	"iter"
)

// Contains reports whether seq yields v. Iteration stops at the first match.
func Contains[E comparable](seq iter.Seq[E], v E) bool {
	for e := range seq {
		if e == v {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether seq yields any element satisfying pred.
// Iteration stops at the first match.
func ContainsFunc[E any](seq iter.Seq[E], pred func(E) bool) bool {
	for e := range seq {
		if pred(e) {
			return true
		}
	}
	return false
}

// ContainsFunc2 is ContainsFunc for pairs, e.g. from maps.All.
func ContainsFunc2[K, V any](seq iter.Seq2[K, V], pred func(K, V) bool) bool {
	for k, v := range seq {
		if pred(k, v) {
			return true
		}
	}
	return false
}
