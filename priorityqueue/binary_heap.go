/*
Package priorityqueue provides a generic, thread-safe binary heap.

By default the heap is a min-heap over the natural ordering of T
(constraints.Ordered), so Poll drains elements in ascending order. A custom
comparator turns it into a max-heap or orders arbitrary element types.

Key Features:
  - Add: Insert a new element while maintaining the heap property (O(log n)).
  - Peek: Retrieve the highest-priority element without removing it (O(1)).
  - Poll: Remove and return the highest-priority element (O(log n)).
  - IsEmpty / Size / Clear: Utility operations (O(1)).

Algorithm Notes:
  - The heap is stored in a slice representing a complete binary tree.
  - For a node at index i: parent (i-1)/2, left child 2i+1, right child 2i+2.
  - Add swims the new element up; Poll moves the last element to the root
    and sinks it down.

Example:

	h := priorityqueue.NewBinaryHeap[int]()
	h.Add(7)
	h.Add(3)
	val, _ := h.Poll()
	fmt.Println(val) // 3
*/
package priorityqueue

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// BinaryHeap is a generic, thread-safe binary heap.
//
// The comparator decides priority: it must return true when its first
// argument has higher priority (for a min-heap, when it is smaller).
//
// Fields:
//   - data: slice of elements stored in heap order
//   - cmp: comparator defining the heap ordering
//   - mutex: RWMutex to ensure safe concurrent access
type BinaryHeap[T any] struct {
	data  []T
	cmp   func(a, b T) bool
	mutex sync.RWMutex
}

// NewBinaryHeap creates a min-heap using the natural ordering of T.
//
// Poll returns elements in ascending order. For descending order or for
// element types without a natural ordering, use NewBinaryHeapWithComparator.
func NewBinaryHeap[T constraints.Ordered]() *BinaryHeap[T] {
	return NewBinaryHeapWithComparator[T](func(a, b T) bool { return a < b })
}

// NewBinaryHeapWithComparator creates a heap ordered by the given
// comparator. The comparator must return true when a has higher priority
// than b.
func NewBinaryHeapWithComparator[T any](cmp func(a, b T) bool) *BinaryHeap[T] {
	return &BinaryHeap[T]{cmp: cmp}
}

// Add inserts an element into the heap.
//
// Algorithm Steps:
//  1. Append the element at the end of the slice.
//  2. Swim it up until its parent has higher or equal priority.
//
// Complexity: O(log n)
func (h *BinaryHeap[T]) Add(val T) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.data = append(h.data, val)
	k := len(h.data) - 1
	for k > 0 {
		parent := (k - 1) / 2
		if !h.cmp(h.data[k], h.data[parent]) {
			break
		}
		h.data[k], h.data[parent] = h.data[parent], h.data[k]
		k = parent
	}
}

// Peek returns the highest-priority element without removing it.
// Returns an error if the heap is empty.
//
// Complexity: O(1)
func (h *BinaryHeap[T]) Peek() (T, error) {
	var zero T
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if len(h.data) == 0 {
		return zero, errors.New("heap empty")
	}
	return h.data[0], nil
}

// Poll removes and returns the highest-priority element.
// Returns an error if the heap is empty.
//
// Algorithm Steps:
//  1. If empty, return an error.
//  2. Take the root, move the last element to the root slot.
//  3. Sink it down, swapping with the higher-priority child.
//
// Complexity: O(log n)
func (h *BinaryHeap[T]) Poll() (T, error) {
	var zero T
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if len(h.data) == 0 {
		return zero, errors.New("heap empty")
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data[last] = zero
	h.data = h.data[:last]
	k := 0
	for {
		child := 2*k + 1
		if child >= len(h.data) {
			break
		}
		if right := child + 1; right < len(h.data) && h.cmp(h.data[right], h.data[child]) {
			child = right
		}
		if !h.cmp(h.data[child], h.data[k]) {
			break
		}
		h.data[k], h.data[child] = h.data[child], h.data[k]
		k = child
	}
	return top, nil
}

// IsEmpty reports whether the heap contains no elements.
//
// Complexity: O(1)
func (h *BinaryHeap[T]) IsEmpty() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.data) == 0
}

// Size returns the number of elements currently in the heap.
//
// Complexity: O(1)
func (h *BinaryHeap[T]) Size() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.data)
}

// Clear removes all elements from the heap.
//
// Complexity: O(1)
func (h *BinaryHeap[T]) Clear() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.data = nil
}
