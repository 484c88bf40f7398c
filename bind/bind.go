// Package bind implements partial application, fixing leading or trailing
// arguments of a function.
package bind

// Front fixes the first argument of fn.
func Front[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R { return fn(a, b) }
}

// Front2 fixes the first two arguments of fn.
func Front2[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return fn(a, b, c) }
}

// Back fixes the last argument of fn.
func Back[A, B, R any](fn func(A, B) R, b B) func(A) R {
	return func(a A) R { return fn(a, b) }
}

// Back2 fixes the last two arguments of fn.
func Back2[A, B, C, R any](fn func(A, B, C) R, b B, c C) func(A) R {
	return func(a A) R { return fn(a, b, c) }
}
