// Package pqueue provides a generic max-scored binary heap, following the
// same container/heap.Interface idiom the teacher uses for its edge and
// node priority queues (prim_kruskal.edgePQ, graph.nodePQ): a small slice
// type implementing heap.Interface, wrapped behind Insert/RemoveMax so
// callers never see container/heap directly.
//
// Provided for completeness per the component inventory; no matcher in
// this module currently depends on it.
package pqueue

import "container/heap"

// entry pairs a value with the score it is ordered by.
type entry[T any] struct {
	value T
	score int64
}

// innerHeap implements heap.Interface as a max-heap ordered by score.
type innerHeap[T any] []entry[T]

func (h innerHeap[T]) Len() int            { return len(h) }
func (h innerHeap[T]) Less(i, j int) bool  { return h[i].score > h[j].score }
func (h innerHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }
func (h *innerHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Heap is a max-priority queue of (value, score) pairs supporting Insert
// and RemoveMax in O(log n).
type Heap[T any] struct {
	inner innerHeap[T]
}

// New returns an empty Heap.
func New[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Len returns the number of entries currently in the heap.
func (h *Heap[T]) Len() int {
	return h.inner.Len()
}

// Insert adds value with the given score.
//
// Complexity: O(log n).
func (h *Heap[T]) Insert(value T, score int64) {
	heap.Push(&h.inner, entry[T]{value: value, score: score})
}

// RemoveMax removes and returns the entry with the highest score. ok is
// false if the heap is empty.
//
// Complexity: O(log n).
func (h *Heap[T]) RemoveMax() (value T, score int64, ok bool) {
	if h.inner.Len() == 0 {
		return value, 0, false
	}
	e := heap.Pop(&h.inner).(entry[T])
	return e.value, e.score, true
}
