package activeset

import (
	"iter"
)

type (
	// Links are the list pointers, for a participant in an Overlay. Embed
	// Links[T] in T, to implement Participant[T] for *T. The zero value is
	// inactive.
	Links[T any] struct {
		next *T
		prev *T
	}

	// Participant is implemented by pointers to types that embed Links.
	Participant[T any] interface {
		*T
		ActiveSetLinks() *Links[T]
	}

	// Overlay is an intrusive list of the active elements, of some external
	// population. The zero value is an empty Overlay, ready to use.
	Overlay[T any, P Participant[T]] struct {
		head  *T
		count int
	}
)

// ActiveSetLinks returns the receiver, see Participant.
func (x *Links[T]) ActiveSetLinks() *Links[T] { return x }

// Add makes s active, inserting it at the head. It is a no-op if s is
// already active. A panic will occur if s is nil.
func (x *Overlay[T, P]) Add(s *T) {
	l := P(s).ActiveSetLinks()
	if l.next != nil || l.prev != nil || s == x.head {
		return
	}
	l.next = x.head
	if x.head != nil {
		P(x.head).ActiveSetLinks().prev = s
	}
	x.head = s
	x.count++
}

// Remove makes s inactive, returning false if it was not active. A panic
// will occur if s is nil.
func (x *Overlay[T, P]) Remove(s *T) bool {
	l := P(s).ActiveSetLinks()
	if l.next == nil && l.prev == nil && s != x.head {
		return false
	}
	x.count--
	if s == x.head {
		x.head = l.next
	}
	if l.prev != nil {
		P(l.prev).ActiveSetLinks().next = l.next
	}
	if l.next != nil {
		P(l.next).ActiveSetLinks().prev = l.prev
	}
	*l = Links[T]{}
	return true
}

// RemoveAll makes every element inactive.
func (x *Overlay[T, P]) RemoveAll() {
	for x.head != nil {
		x.Remove(x.head)
	}
}

// Contains reports whether s is active. A nil s is never active.
func (x *Overlay[T, P]) Contains(s *T) bool {
	if s == nil {
		return false
	}
	l := P(s).ActiveSetLinks()
	return l.next != nil || l.prev != nil || s == x.head
}

// All iterates over the active elements, from the head. The yielded element
// may be removed during iteration, without affecting the remainder. Other
// modifications during iteration have unspecified results.
func (x *Overlay[T, P]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for s := x.head; s != nil; {
			next := P(s).ActiveSetLinks().next
			if !yield(s) {
				return
			}
			s = next
		}
	}
}

// Head returns the most recently added active element, or nil.
func (x *Overlay[T, P]) Head() *T { return x.head }

// Len returns the number of active elements.
func (x *Overlay[T, P]) Len() int { return x.count }
