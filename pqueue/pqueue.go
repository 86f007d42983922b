// Package pqueue provides a generic binary-heap priority queue whose ordering
// is supplied explicitly by the caller.
//
// The direction of the heap is never implied by field order: a min-heap over
// distances passes `func(a, b T) bool { return a.dist < b.dist }`, a max-heap
// over scores passes `>`. Pop always returns the element for which less holds
// against every other element.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len: O(1)
package pqueue

import "container/heap"

// Queue is a priority queue of T ordered by less.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	h items[T]
}

// New returns an empty Queue ordered by less. less must be a strict weak order.
func New[T any](less func(a, b T) bool) *Queue[T] {
	if less == nil {
		panic("pqueue: less function is nil")
	}

	return &Queue[T]{h: items[T]{less: less}}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.data) }

// Push adds x to the queue.
func (q *Queue[T]) Push(x T) { heap.Push(&q.h, x) }

// Pop removes and returns the highest-priority element.
// ok is false when the queue is empty.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if len(q.h.data) == 0 {
		return x, false
	}

	return heap.Pop(&q.h).(T), true
}

// Peek returns the highest-priority element without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.h.data) == 0 {
		return x, false
	}

	return q.h.data[0], true
}

// items adapts a slice plus comparator to heap.Interface.
type items[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h items[T]) Len() int           { return len(h.data) }
func (h items[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h items[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *items[T]) Push(x any) { h.data = append(h.data, x.(T)) }

func (h *items[T]) Pop() any {
	old := h.data
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // drop the reference held by the backing array
	h.data = old[:n-1]

	return item
}
