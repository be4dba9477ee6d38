package main

import "container/heap"

// A minHeap is a min-heap backed by a slice.
type minHeap[E any] struct {
	s sliceHeap[E]
}

func newMinHeap[E any](less func(E, E) bool) *minHeap[E] {
	return &minHeap[E]{sliceHeap[E]{less: less}}
}

// Push pushes an element onto the heap. The complexity is O(log n)
// where n = h.Len().
func (h *minHeap[E]) Push(elem E) {
	heap.Push(&h.s, elem)
}

// Pop removes and returns the minimum element (according to the less function)
// from the heap. Pop panics if the heap is empty.
func (h *minHeap[E]) Pop() E {
	return heap.Pop(&h.s).(E)
}

func (h *minHeap[E]) Len() int {
	return len(h.s.s)
}

// sliceHeap just exists to use the existing heap.Interface as the
// implementation of minHeap.
type sliceHeap[E any] struct {
	s    []E
	less func(E, E) bool
}

func (s *sliceHeap[E]) Len() int { return len(s.s) }

func (s *sliceHeap[E]) Swap(i, j int) { s.s[i], s.s[j] = s.s[j], s.s[i] }

func (s *sliceHeap[E]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }

func (s *sliceHeap[E]) Push(x any) { s.s = append(s.s, x.(E)) }

func (s *sliceHeap[E]) Pop() any {
	e := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return e
}
