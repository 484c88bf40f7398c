package iterutil

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type pair[A, B any] struct {
	A A
	B B
}

func collect2[A, B any](seq iter.Seq2[A, B]) (pairs []pair[A, B]) {
	for a, b := range seq {
		pairs = append(pairs, pair[A, B]{a, b})
	}
	return
}

func TestEnumerate(t *testing.T) {
	seq := Enumerate(slices.Values([]string{`a`, `b`, `c`}))
	want := []pair[int, string]{{0, `a`}, {1, `b`}, {2, `c`}}
	assert.Equal(t, want, collect2(seq))
	assert.Equal(t, want, collect2(seq), `restartable`)
	assert.Nil(t, collect2(Enumerate(slices.Values([]string(nil)))))
}

func TestEnumerate_break(t *testing.T) {
	var got []int
	for i, v := range Enumerate(slices.Values([]int{10, 20, 30, 40})) {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 20}, got)
}

func TestZip(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		a    []int
		b    []string
		want []pair[int, string]
	}{
		{`equal`, []int{1, 2}, []string{`x`, `y`}, []pair[int, string]{{1, `x`}, {2, `y`}}},
		{`shorter a`, []int{1}, []string{`x`, `y`}, []pair[int, string]{{1, `x`}}},
		{`shorter b`, []int{1, 2, 3}, []string{`x`}, []pair[int, string]{{1, `x`}}},
		{`empty`, nil, []string{`x`}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := collect2(Zip(slices.Values(tc.a), slices.Values(tc.b)))
			if diff := cmp.Diff(tc.want, got); diff != `` {
				t.Errorf("unexpected pairs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZip_stopsInputs(t *testing.T) {
	var bStopped bool
	b := func(yield func(int) bool) {
		defer func() { bStopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	var n int
	for range Zip(slices.Values([]int{1, 2, 3, 4}), b) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.True(t, bStopped)
}

func TestSplit(t *testing.T) {
	for _, tc := range [...]struct {
		input string
		want  []string
	}{
		{``, []string{``}},
		{`,`, []string{``, ``}},
		{`a`, []string{`a`}},
		{`a,b`, []string{`a`, `b`}},
		{`,a,,b,`, []string{``, `a`, ``, `b`, ``}},
	} {
		var got []string
		for seg := range Split([]byte(tc.input), ',') {
			got = append(got, string(seg))
		}
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestSplit_segmentsCannotClobber(t *testing.T) {
	s := []int{1, 0, 2}
	var segs [][]int
	for seg := range Split(s, 0) {
		segs = append(segs, seg)
	}
	segs[0] = append(segs[0], 9)
	assert.Equal(t, []int{1, 0, 2}, s)
}

func TestSplit_break(t *testing.T) {
	var n int
	for range Split([]rune(`a b c`), ' ') {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
