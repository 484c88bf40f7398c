// Package fixedalloc implements a fixed-capacity arena, which hands out
// contiguous spans of pre-allocated elements, and takes them back.
//
// An Arena never grows, and never allocates after construction, which makes
// it suitable for code that must not trigger the garbage collector, such as
// an audio callback. Allocation is a first-fit linear scan, which is cheap
// for small arenas, but linear in the arena's capacity.
//
// Handles to an arena may be shared using Clone, and the backing storage is
// dropped when the last handle is released. Arenas are not safe for
// concurrent use.
package fixedalloc
