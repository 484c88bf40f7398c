// Package ringbuffer implements lock-free, single-producer, single-consumer
// ring buffers, intended for hand-off between a real-time producer (e.g. an
// audio callback) and a less time-critical consumer.
//
// Two variants are provided, sharing the same cursor bookkeeping:
//
//   - [Simple] stores one value per slot.
//   - [Stereo] stores a pair of values (left and right channel) per slot,
//     in two parallel arrays, so that one push or pop moves a whole frame.
//
// # Concurrency
//
// Exactly one goroutine may push, and exactly one goroutine may pop, at any
// given time. Nothing blocks: pushes always succeed, and pops report that
// nothing is available rather than waiting. Violating the single producer or
// single consumer constraint is not supported.
//
// # Overwrite policy
//
// The buffers never reject a push. Capacity is exactly N slots, and no slot is
// reserved to tell "full" apart from "empty", which is defined purely as the
// read cursor being equal to the write cursor. Consequently, if the producer
// writes N values without any being read, the write cursor wraps around to the
// read cursor, and the buffer reports itself as empty, the N unread values
// having been lost. Writing one more value makes only that newest value
// available.
//
// If the consumer calls PopAll while the producer is wrapping around, the
// returned values may be a mixture of new and old data, and therefore out of
// order. For example, with an 8 slot buffer:
//
//	0 1 2 3 4 5 6 7
//	W R
//
// PopAll determines that 7 values are available, in slots 1 through 7. If,
// before they are copied, the producer pushes 3 more values, into slots 0, 1,
// and 2, then:
//
//	0 1 2 3 4 5 6 7
//	  R   W
//
// The returned data reads as new, new, old, old, old, old, old. The same can
// happen across multiple Pop calls. Consumers must tolerate this, or apply
// backpressure outside the buffer, e.g. using the [MemoryOrder] SeqCst option,
// and checking Size from the producer, or by only producing while
// Subscribed reports true.
//
// # Draining
//
// [Drain] runs a polling consumer loop over any [Source], delivering batches
// to a handler until its context is canceled.
package ringbuffer
