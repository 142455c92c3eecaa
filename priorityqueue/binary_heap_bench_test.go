package priorityqueue

import "testing"

func BenchmarkAdd(b *testing.B) {
	h := NewBinaryHeap[int]()
	for i := 0; i < b.N; i++ {
		h.Add(i % 1024)
	}
}

func BenchmarkAddPoll(b *testing.B) {
	h := NewBinaryHeap[int]()
	for i := 0; i < b.N; i++ {
		h.Add(i % 1024)
		if _, err := h.Poll(); err != nil {
			b.Fatal(err)
		}
	}
}
