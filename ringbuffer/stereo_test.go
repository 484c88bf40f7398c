package ringbuffer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStereo(t *testing.T) {
	rb := NewStereo[float32](16)
	require.NotNil(t, rb)
	assert.Equal(t, 16, rb.Cap())
	assert.Len(t, rb.left, 16)
	assert.Len(t, rb.right, 16)
	assert.True(t, rb.Empty())
	assert.PanicsWithValue(t, `ringbuffer: size must be a power of 2`, func() { NewStereo[float32](10) })
}

func TestStereo_Pop_empty(t *testing.T) {
	rb := NewStereo[int](4)
	l, r, ok := rb.Pop()
	assert.False(t, ok)
	assert.Zero(t, l)
	assert.Zero(t, r)
	frame, ok := rb.PopFrame()
	assert.False(t, ok)
	assert.Zero(t, frame)
	l2, r2 := rb.PopAll()
	assert.Nil(t, l2)
	assert.Nil(t, r2)
}

func TestStereo_framesStayPaired(t *testing.T) {
	rb := NewStereo[int](8)
	for i := 0; i < 5; i++ {
		rb.Push(i, -i)
	}
	rb.PushFrame(Frame[int]{Left: 5, Right: -5})
	for i := 0; i < 3; i++ {
		l, r, ok := rb.Pop()
		require.True(t, ok)
		assert.Equal(t, i, l)
		assert.Equal(t, -i, r)
	}
	frame, ok := rb.PopFrame()
	require.True(t, ok)
	assert.Equal(t, Frame[int]{Left: 3, Right: -3}, frame)

	l, r := rb.PopAll()
	assert.Equal(t, []int{4, 5}, l)
	assert.Equal(t, []int{-4, -5}, r)
	assert.True(t, rb.Empty())
	assert.Equal(t, make([]int, 8), rb.left)
	assert.Equal(t, make([]int, 8), rb.right)
}

func TestStereo_overwrite(t *testing.T) {
	rb := NewStereo[string](4)
	for i := 0; i < 4; i++ {
		rb.Push(fmt.Sprint(`l`, i), fmt.Sprint(`r`, i))
	}
	_, _, ok := rb.Pop()
	require.False(t, ok, `a full lap reads as empty`)

	rb.Push(`l4`, `r4`)
	l, r, ok := rb.Pop()
	require.True(t, ok)
	assert.Equal(t, `l4`, l)
	assert.Equal(t, `r4`, r)
	_, _, ok = rb.Pop()
	assert.False(t, ok)
}

func TestStereo_PushSlices(t *testing.T) {
	for _, tc := range [...]struct {
		name        string
		offset      int
		left, right []int
		wantL       []int
		wantR       []int
	}{
		{`empty`, 0, nil, nil, nil, nil},
		{`one side empty`, 0, []int{1, 2}, nil, nil, nil},
		{`equal length`, 0, []int{1, 2, 3}, []int{4, 5, 6}, []int{1, 2, 3}, []int{4, 5, 6}},
		{`truncates left`, 0, []int{1, 2, 3, 9}, []int{4, 5, 6}, []int{1, 2, 3}, []int{4, 5, 6}},
		{`truncates right`, 0, []int{1, 2}, []int{4, 5, 6}, []int{1, 2}, []int{4, 5}},
		{`wraps`, 3, []int{1, 2, 3}, []int{4, 5, 6}, []int{1, 2, 3}, []int{4, 5, 6}},
		{`laps`, 1, sequence(0, 11), sequence(100, 111), []int{8, 9, 10}, []int{108, 109, 110}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rb := NewStereo[int](4)
			for i := 0; i < tc.offset; i++ {
				rb.Push(-1, -1)
			}
			rb.PopAll()
			rb.PushSlices(tc.left, tc.right)
			l, r := rb.PopAll()
			assert.Equal(t, tc.wantL, l)
			assert.Equal(t, tc.wantR, r)
		})
	}
}

func TestStereo_Frames(t *testing.T) {
	rb := NewStereo[int](8)
	src := rb.Frames()
	assert.Nil(t, src.PopAll())

	rb.PushSlices([]int{1, 2, 3}, []int{-1, -2, -3})
	assert.Equal(t, []Frame[int]{{1, -1}, {2, -2}, {3, -3}}, src.PopAll())

	src.Subscribe()
	assert.True(t, rb.Subscribed())
	src.Unsubscribe()
	assert.False(t, rb.Subscribed())
}

func TestStereo_seqCst(t *testing.T) {
	rb := NewStereo[int](4, WithMemoryOrder(SeqCst))
	rb.Push(1, 2)
	assert.Equal(t, 1, rb.Size())
	frame, ok := rb.PopFrame()
	require.True(t, ok)
	assert.Equal(t, Frame[int]{1, 2}, frame)
	rb.Push(3, 4)
	rb.Clear()
	assert.True(t, rb.Empty())
}
