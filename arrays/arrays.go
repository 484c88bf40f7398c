// Package arrays constructs slices of a fixed length, where each element is
// produced by a constructor, optionally bound to the element's index.
//
// These are useful for values that are not meaningfully zero, such as
// per-channel state, or slices of pointers.
package arrays

// Make returns a slice of n elements, each constructed by newT.
// A panic will occur if n is negative.
func Make[T any](n int, newT func() T) []T {
	return MakeIndexed(n, func(int) T { return newT() })
}

// MakeIndexed returns a slice of n elements, where element i is newT(i).
// A panic will occur if n is negative.
func MakeIndexed[T any](n int, newT func(i int) T) []T {
	if n < 0 {
		panic(`arrays: negative length`)
	}
	s := make([]T, n)
	for i := range s {
		s[i] = newT(i)
	}
	return s
}

// MakeBindFirst returns a slice of n elements, where element i is
// newT(i, a), i.e. the index is bound as the first argument.
func MakeBindFirst[T, A any](n int, newT func(i int, a A) T, a A) []T {
	return MakeIndexed(n, func(i int) T { return newT(i, a) })
}

// MakeBindLast returns a slice of n elements, where element i is
// newT(a, i), i.e. the index is bound as the last argument.
func MakeBindLast[T, A any](n int, newT func(a A, i int) T, a A) []T {
	return MakeIndexed(n, func(i int) T { return newT(a, i) })
}
