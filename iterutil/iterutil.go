package iterutil

import (
	"iter"
)

// Enumerate pairs each element of seq with its zero-based index.
func Enumerate[E any](seq iter.Seq[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		var i int
		for e := range seq {
			if !yield(i, e) {
				return
			}
			i++
		}
	}
}

// Zip pairs the elements of a and b, in lockstep, stopping when either is
// exhausted.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := next()
			if !ok || !yield(va, vb) {
				return
			}
		}
	}
}

// Split yields the segments of s, separated by sep. The segments alias s.
// A slice with n separators yields n+1 segments, so an empty slice yields a
// single empty segment.
func Split[S ~[]E, E comparable](s S, sep E) iter.Seq[S] {
	return func(yield func(S) bool) {
		var start int
		for i, e := range s {
			if e == sep {
				if !yield(s[start:i:i]) {
					return
				}
				start = i + 1
			}
		}
		yield(s[start:])
	}
}
