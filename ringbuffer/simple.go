package ringbuffer

// Simple is a lock-free, single-producer, single-consumer ring buffer, with
// a capacity of N values, see the package documentation for details.
//
// Popped values are copied out, and the slot is reset to the zero value, so
// the buffer does not retain references to values that have been consumed.
//
// Instances must be initialized using NewSimple.
type Simple[T any] struct {
	positions
	buf []T
}

// NewSimple initializes a new Simple ring buffer, with size slots. A panic
// will occur if size is not a power of 2.
func NewSimple[T any](size int, opts ...Option) *Simple[T] {
	var x Simple[T]
	x.init(size, opts)
	x.buf = make([]T, size)
	return &x
}

// Pop removes the oldest value, returning false if the buffer is empty.
//
// Only the consumer may call Pop.
func (x *Simple[T]) Pop() (value T, ok bool) {
	pos := x.loadRead()
	if pos == x.writePos.Load() {
		return value, false
	}
	value = x.buf[pos]
	var zero T
	x.buf[pos] = zero
	x.storeRead(x.mask(pos + 1))
	return value, true
}

// PopAll removes all available values, returning them oldest to newest, or
// nil if the buffer is empty. The number of values is determined once, at the
// start, see the package documentation for the implications.
//
// Only the consumer may call PopAll.
func (x *Simple[T]) PopAll() []T {
	pos := x.loadRead()
	n := x.mask(x.writePos.Load() - pos)
	if n == 0 {
		return nil
	}
	n1, n2 := x.prepareToRead(n)
	values := make([]T, n)
	copy(values, x.buf[pos:pos+n1])
	clear(x.buf[pos : pos+n1])
	if n2 != 0 {
		copy(values[n1:], x.buf[:n2])
		clear(x.buf[:n2])
	}
	x.storeRead(x.mask(pos + n))
	return values
}

// Push adds a value, overwriting the oldest unread value, if the buffer is
// full. It always succeeds.
//
// Only the producer may call Push.
func (x *Simple[T]) Push(value T) {
	pos := x.writePos.Load()
	x.buf[pos] = value
	x.writePos.Store(x.mask(pos + 1))
}

// PushSlice copies values into the buffer, with the same overwrite behavior
// as Push, publishing the write cursor once. While more than N values remain,
// the leading N are discarded, as they would be overwritten anyway.
//
// Only the producer may call PushSlice.
func (x *Simple[T]) PushSlice(values []T) {
	for uint64(len(values)) > x.size {
		values = values[x.size:]
	}
	if len(values) == 0 {
		return
	}
	pos, n1, n2 := x.prepareToWrite(uint64(len(values)))
	copy(x.buf[pos:pos+n1], values[:n1])
	pos = x.mask(pos + n1)
	if n2 != 0 {
		copy(x.buf[pos:pos+n2], values[n1:])
		pos = x.mask(pos + n2)
	}
	x.writePos.Store(pos)
}
