package queue

import (
	"reflect"
	"testing"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 5; i++ {
		q.Enqueue(i * 10)
	}

	for i := 1; i <= 5; i++ {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue() error = %v", err)
		}
		if got != i*10 {
			t.Errorf("Dequeue() = %d; want %d", got, i*10)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("expected queue to be empty")
	}
}

func TestQueueEmptyErrors(t *testing.T) {
	q := NewQueue[string]()
	if _, err := q.Dequeue(); err == nil {
		t.Errorf("Dequeue() on empty queue should return an error")
	}
	if _, err := q.Peek(); err == nil {
		t.Errorf("Peek() on empty queue should return an error")
	}
}

func TestQueuePeek(t *testing.T) {
	q := NewQueue[string]()
	q.Enqueue("first")
	q.Enqueue("second")

	got, err := q.Peek()
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if got != "first" {
		t.Errorf("Peek() = %q; want %q", got, "first")
	}
	if q.Size() != 2 {
		t.Errorf("Peek() must not remove elements; size = %d, want 2", q.Size())
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	if v, _ := q.Dequeue(); v != 1 {
		t.Errorf("Dequeue() = %d; want 1", v)
	}
	q.Enqueue(3)
	want := []int{2, 3}
	if got := q.ToArray(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToArray() = %v; want %v", got, want)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("expected queue to be empty after Clear")
	}
	if q.Size() != 0 {
		t.Errorf("Size() = %d; want 0", q.Size())
	}
}
