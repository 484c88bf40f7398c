package arrays

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	var calls int
	s := Make(3, func() *int {
		calls++
		return new(int)
	})
	assert.Len(t, s, 3)
	assert.Equal(t, 3, calls)
	assert.NotSame(t, s[0], s[1])
	assert.NotSame(t, s[1], s[2])

	assert.Empty(t, Make(0, func() int { panic(`unreachable`) }))
}

func TestMakeIndexed(t *testing.T) {
	assert.Equal(t, []int{0, 1, 4, 9}, MakeIndexed(4, func(i int) int { return i * i }))
}

func TestMakeBindFirst(t *testing.T) {
	s := MakeBindFirst(3, func(i int, prefix string) string { return fmt.Sprint(i, prefix) }, `x`)
	assert.Equal(t, []string{`0x`, `1x`, `2x`}, s)
}

func TestMakeBindLast(t *testing.T) {
	s := MakeBindLast(3, func(prefix string, i int) string { return fmt.Sprint(prefix, i) }, `ch`)
	assert.Equal(t, []string{`ch0`, `ch1`, `ch2`}, s)
}

func TestMake_negative(t *testing.T) {
	assert.PanicsWithValue(t, `arrays: negative length`, func() { Make(-1, func() int { return 0 }) })
	assert.PanicsWithValue(t, `arrays: negative length`, func() { MakeIndexed(-1, func(int) int { return 0 }) })
	assert.PanicsWithValue(t, `arrays: negative length`, func() { MakeBindFirst(-1, func(int, int) int { return 0 }, 0) })
	assert.PanicsWithValue(t, `arrays: negative length`, func() { MakeBindLast(-1, func(int, int) int { return 0 }, 0) })
}
