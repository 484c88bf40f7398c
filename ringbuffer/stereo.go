package ringbuffer

type (
	// Stereo is the two channel equivalent of Simple, storing each channel in
	// a separate array. Each slot holds one Frame, and all operations move
	// whole frames, i.e. the left and right values pushed together are always
	// popped together.
	//
	// Instances must be initialized using NewStereo.
	Stereo[T any] struct {
		positions
		left  []T
		right []T
	}

	// Frame is a single left and right pair, see Stereo.
	Frame[T any] struct {
		Left  T
		Right T
	}

	stereoFrames[T any] struct {
		*Stereo[T]
	}
)

// NewStereo initializes a new Stereo ring buffer, with size frames. A panic
// will occur if size is not a power of 2.
func NewStereo[T any](size int, opts ...Option) *Stereo[T] {
	var x Stereo[T]
	x.init(size, opts)
	x.left = make([]T, size)
	x.right = make([]T, size)
	return &x
}

// Pop removes the oldest frame, returning false if the buffer is empty.
//
// Only the consumer may call Pop.
func (x *Stereo[T]) Pop() (left, right T, ok bool) {
	pos := x.loadRead()
	if pos == x.writePos.Load() {
		return left, right, false
	}
	left, right = x.left[pos], x.right[pos]
	var zero T
	x.left[pos], x.right[pos] = zero, zero
	x.storeRead(x.mask(pos + 1))
	return left, right, true
}

// PopFrame is Pop, returning a Frame.
func (x *Stereo[T]) PopFrame() (frame Frame[T], ok bool) {
	frame.Left, frame.Right, ok = x.Pop()
	return
}

// PopAll removes all available frames, returning each channel oldest to
// newest, as slices of equal length. Both slices are nil if the buffer is
// empty. The same caveats as Simple.PopAll apply.
//
// Only the consumer may call PopAll.
func (x *Stereo[T]) PopAll() (left, right []T) {
	pos := x.loadRead()
	n := x.mask(x.writePos.Load() - pos)
	if n == 0 {
		return nil, nil
	}
	n1, n2 := x.prepareToRead(n)
	left, right = make([]T, n), make([]T, n)
	copy(left, x.left[pos:pos+n1])
	copy(right, x.right[pos:pos+n1])
	clear(x.left[pos : pos+n1])
	clear(x.right[pos : pos+n1])
	if n2 != 0 {
		copy(left[n1:], x.left[:n2])
		copy(right[n1:], x.right[:n2])
		clear(x.left[:n2])
		clear(x.right[:n2])
	}
	x.storeRead(x.mask(pos + n))
	return left, right
}

// Push adds a frame, overwriting the oldest unread frame, if the buffer is
// full. It always succeeds.
//
// Only the producer may call Push.
func (x *Stereo[T]) Push(left, right T) {
	pos := x.writePos.Load()
	x.left[pos] = left
	x.right[pos] = right
	x.writePos.Store(x.mask(pos + 1))
}

// PushFrame is Push, accepting a Frame.
func (x *Stereo[T]) PushFrame(frame Frame[T]) {
	x.Push(frame.Left, frame.Right)
}

// PushSlices copies frames into the buffer, pairing left[i] with right[i].
// Only the first min(len(left), len(right)) frames are considered, after
// which the behavior matches Simple.PushSlice.
//
// Only the producer may call PushSlices.
func (x *Stereo[T]) PushSlices(left, right []T) {
	n := min(len(left), len(right))
	left, right = left[:n], right[:n]
	for uint64(len(left)) > x.size {
		left, right = left[x.size:], right[x.size:]
	}
	if len(left) == 0 {
		return
	}
	pos, n1, n2 := x.prepareToWrite(uint64(len(left)))
	copy(x.left[pos:pos+n1], left[:n1])
	copy(x.right[pos:pos+n1], right[:n1])
	pos = x.mask(pos + n1)
	if n2 != 0 {
		copy(x.left[pos:pos+n2], left[n1:])
		copy(x.right[pos:pos+n2], right[n1:])
		pos = x.mask(pos + n2)
	}
	x.writePos.Store(pos)
}

// Frames exposes the buffer as a Source of frames, e.g. for use with Drain.
func (x *Stereo[T]) Frames() Source[Frame[T]] {
	return stereoFrames[T]{x}
}

func (x stereoFrames[T]) PopAll() []Frame[T] {
	left, right := x.Stereo.PopAll()
	if len(left) == 0 {
		return nil
	}
	frames := make([]Frame[T], len(left))
	for i := range frames {
		frames[i] = Frame[T]{Left: left[i], Right: right[i]}
	}
	return frames
}
