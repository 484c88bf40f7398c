package ringbuffer

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// positions tracks the cursors shared by Simple and Stereo, and implements
// the index arithmetic for wrapping around the backing storage.
//
// The write cursor is only written by the producer, and the read cursor is
// only written by the consumer. Both are always in [0, size).
type positions struct { // betteralign:ignore
	writePos atomic.Uint64
	_        cpu.CacheLinePad
	readPos  uint64
	_        cpu.CacheLinePad

	subscribed atomic.Bool
	size       uint64
	order      MemoryOrder
}

func (x *positions) init(size int, opts []Option) {
	if size <= 0 || size&(size-1) != 0 {
		panic(`ringbuffer: size must be a power of 2`)
	}
	c := resolveOptions(opts)
	x.size = uint64(size)
	x.order = c.order
}

// Clear empties the buffer, resetting both cursors. It does not change
// Subscribed. Clear must not be called concurrently with any push or pop.
func (x *positions) Clear() {
	x.storeRead(0)
	x.writePos.Store(0)
}

// Empty returns true if the read cursor equals the write cursor. See the
// package documentation, for why this may be true despite values having been
// pushed.
//
// Unless the buffer uses SeqCst, Empty must only be called by the consumer.
func (x *positions) Empty() bool {
	return x.loadRead() == x.writePos.Load()
}

// Size returns the number of values available to the consumer, in the range
// [0, Cap()). The same caveats as Empty apply.
func (x *positions) Size() int {
	return int(x.mask(x.writePos.Load() - x.loadRead()))
}

// Cap returns the number of slots, N.
func (x *positions) Cap() int {
	return int(x.size)
}

// Subscribe marks the buffer as having an interested consumer. It is purely
// advisory: producers may check Subscribed to skip work when nobody is
// listening.
func (x *positions) Subscribe() { x.subscribed.Store(true) }

// Unsubscribe reverts Subscribe.
func (x *positions) Unsubscribe() { x.subscribed.Store(false) }

// Subscribed reports the value set by Subscribe or Unsubscribe.
func (x *positions) Subscribed() bool { return x.subscribed.Load() }

func (x *positions) mask(val uint64) uint64 {
	return val & (x.size - 1)
}

func (x *positions) loadRead() uint64 {
	if x.order == SeqCst {
		return atomic.LoadUint64(&x.readPos)
	}
	return x.readPos
}

func (x *positions) storeRead(val uint64) {
	if x.order == SeqCst {
		atomic.StoreUint64(&x.readPos, val)
	} else {
		x.readPos = val
	}
}

// prepareToRead splits count values, starting at the read cursor, into the
// lengths of two contiguous segments, the second starting at index 0, and
// only non-zero if the read wraps around.
func (x *positions) prepareToRead(count uint64) (n1, n2 uint64) {
	n1 = min(count, x.size-x.loadRead())
	n2 = count - n1
	return
}

// prepareToWrite is the write equivalent of prepareToRead, also returning
// the write cursor, which is loaded only once.
func (x *positions) prepareToWrite(count uint64) (pos, n1, n2 uint64) {
	pos = x.writePos.Load()
	n1 = min(count, x.size-pos)
	n2 = count - n1
	return
}
