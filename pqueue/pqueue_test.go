package pqueue_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/pqueue"
)

func TestQueue_MinHeap(t *testing.T) {
	q := pqueue.New(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 4, 1, 3, 9, 2} {
		q.Push(v)
	}
	require.Equal(t, 7, q.Len())

	top, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1, top)

	var got []int
	for q.Len() > 0 {
		v, ok := q.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 1, 2, 3, 4, 5, 9}, got)
}

func TestQueue_MaxHeapByKey(t *testing.T) {
	type state struct {
		name  string
		score int
	}
	q := pqueue.New(func(a, b state) bool { return a.score > b.score })
	q.Push(state{"low", 1})
	q.Push(state{"high", 30})
	q.Push(state{"mid", 7})

	s, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, "high", s.name)
	s, _ = q.Pop()
	require.Equal(t, "mid", s.name)
}

func TestQueue_Empty(t *testing.T) {
	q := pqueue.New(func(a, b string) bool { return a < b })
	_, ok := q.Pop()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)
}

func TestNew_NilLess(t *testing.T) {
	require.Panics(t, func() { pqueue.New[int](nil) })
}

func ExampleQueue() {
	q := pqueue.New(func(a, b int) bool { return a > b })
	q.Push(2)
	q.Push(8)
	q.Push(5)
	for q.Len() > 0 {
		v, _ := q.Pop()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 8 5 2
}
