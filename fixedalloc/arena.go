package fixedalloc

import (
	"errors"
	"fmt"

	"github.com/joeycumines/logiface"
)

type (
	// Config models optional configuration, for New.
	Config struct {
		// Logger receives debug events, when storage is created or dropped.
		Logger *logiface.Logger[logiface.Event]
	}

	// Arena is a handle to a fixed-capacity pool of T. Handles sharing the
	// same storage are created using Clone, and each must be released.
	//
	// Instances must be initialized using New.
	Arena[T any] struct {
		state    *arenaState[T]
		released bool
	}

	arenaState[T any] struct {
		logger *logiface.Logger[logiface.Event]
		data   []T
		used   []bool
		refs   int
		inUse  int
	}
)

var (
	// ErrNoSpace indicates there was no contiguous free span large enough.
	ErrNoSpace = errors.New(`fixedalloc: no space`)

	// ErrTooLarge indicates an allocation larger than the arena's capacity.
	ErrTooLarge = errors.New(`fixedalloc: allocation exceeds capacity`)

	// ErrForeign indicates a span that is not a live allocation from the
	// arena.
	ErrForeign = errors.New(`fixedalloc: span not allocated from arena`)

	// ErrReleased indicates use of a released handle.
	ErrReleased = errors.New(`fixedalloc: arena released`)

	// ErrInUse indicates the last handle was released with live allocations.
	ErrInUse = errors.New(`fixedalloc: arena released while in use`)
)

// New initializes an Arena with n elements of storage. The provided config
// may be nil. A panic will occur if n is not positive.
func New[T any](n int, config *Config) *Arena[T] {
	if n <= 0 {
		panic(`fixedalloc: capacity must be positive`)
	}
	state := arenaState[T]{
		data: make([]T, n),
		used: make([]bool, n),
		refs: 1,
	}
	if config != nil {
		state.logger = config.Logger
	}
	state.logger.Debug().
		Int(`capacity`, n).
		Log(`arena allocated`)
	return &Arena[T]{state: &state}
}

// Clone returns a new handle, sharing the receiver's storage.
func (x *Arena[T]) Clone() (*Arena[T], error) {
	if x.released {
		return nil, ErrReleased
	}
	x.state.refs++
	return &Arena[T]{state: x.state}, nil
}

// Release invalidates the handle. Releasing the last handle drops the
// storage, and returns an error wrapping ErrInUse, if any spans were still
// allocated.
func (x *Arena[T]) Release() error {
	if x.released {
		return ErrReleased
	}
	x.released = true
	state := x.state
	x.state = nil
	state.refs--
	if state.refs != 0 {
		return nil
	}
	inUse := state.inUse
	state.logger.Debug().
		Int(`capacity`, len(state.data)).
		Int(`in_use`, inUse).
		Log(`arena freed`)
	state.data = nil
	state.used = nil
	state.inUse = 0
	if inUse != 0 {
		return fmt.Errorf(`%w: %d elements`, ErrInUse, inUse)
	}
	return nil
}

// Refs returns the number of live handles sharing the storage, or 0 if the
// handle has been released.
func (x *Arena[T]) Refs() int {
	if x.released {
		return 0
	}
	return x.state.refs
}

// Cap returns the total number of elements, or 0 if the handle has been
// released.
func (x *Arena[T]) Cap() int {
	if x.released {
		return 0
	}
	return len(x.state.data)
}

// InUse returns the number of allocated elements, or 0 if the handle has
// been released.
func (x *Arena[T]) InUse() int {
	if x.released {
		return 0
	}
	return x.state.inUse
}

// Allocate returns the first free span of n contiguous, zeroed elements.
// The span's capacity is limited to n. Allocating zero elements returns a
// nil span. A panic will occur if n is negative.
func (x *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		panic(`fixedalloc: negative allocation`)
	}
	if x.released {
		return nil, ErrReleased
	}
	if n == 0 {
		return nil, nil
	}
	state := x.state
	if n > len(state.data) {
		return nil, ErrTooLarge
	}
	for i := 0; i <= len(state.used)-n; {
		// find the last used slot in the candidate span, if any
		j := i + n - 1
		for j >= i && !state.used[j] {
			j--
		}
		if j >= i {
			i = j + 1
			continue
		}
		for k := i; k < i+n; k++ {
			state.used[k] = true
		}
		state.inUse += n
		span := state.data[i : i+n : i+n]
		clear(span)
		return span, nil
	}
	return nil, ErrNoSpace
}

// Free returns span to the arena. The span must have been allocated by this
// arena, though it may cover part of an allocation, or several adjacent
// allocations. Freeing an empty span is a no-op.
func (x *Arena[T]) Free(span []T) error {
	if x.released {
		return ErrReleased
	}
	if len(span) == 0 {
		return nil
	}
	state := x.state
	offset := -1
	for i := range state.data {
		if &state.data[i] == &span[0] {
			offset = i
			break
		}
	}
	if offset < 0 || offset+len(span) > len(state.data) {
		return ErrForeign
	}
	for i := offset; i < offset+len(span); i++ {
		if !state.used[i] {
			return ErrForeign
		}
	}
	for i := offset; i < offset+len(span); i++ {
		state.used[i] = false
	}
	state.inUse -= len(span)
	clear(state.data[offset : offset+len(span)])
	return nil
}
