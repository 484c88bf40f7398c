package ringbuffer

import (
	"fmt"
)

type (
	// MemoryOrder selects which cursors are accessed atomically.
	//
	// Go's atomics are sequentially consistent, so this does not select a
	// hardware ordering. Instead, it controls whether the read cursor, which
	// is owned by the consumer, is also published atomically.
	MemoryOrder int

	// Option configures a ring buffer, see NewSimple and NewStereo.
	Option func(c *config)

	config struct {
		order MemoryOrder
	}
)

const (
	// Relaxed only publishes the write cursor atomically. Empty and Size
	// must only be called by the consumer. This is the default.
	Relaxed MemoryOrder = iota

	// SeqCst also publishes the read cursor atomically, which permits the
	// producer to call Empty and Size, e.g. to avoid overwriting unread
	// values. Push behaves identically, regardless.
	SeqCst
)

// String implements fmt.Stringer.
func (x MemoryOrder) String() string {
	switch x {
	case Relaxed:
		return `relaxed`
	case SeqCst:
		return `seq_cst`
	default:
		return fmt.Sprintf(`MemoryOrder(%d)`, int(x))
	}
}

// WithMemoryOrder configures the MemoryOrder, defaulting to Relaxed.
func WithMemoryOrder(order MemoryOrder) Option {
	return func(c *config) {
		c.order = order
	}
}

func resolveOptions(opts []Option) (c config) {
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	if c.order != Relaxed && c.order != SeqCst {
		panic(fmt.Sprintf(`ringbuffer: invalid memory order: %s`, c.order))
	}
	return c
}
