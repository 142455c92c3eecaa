package stack

import "testing"

func BenchmarkPushPop(b *testing.B) {
	s := NewStack[int]()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		if _, err := s.Pop(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPush(b *testing.B) {
	s := NewStack[int]()
	for i := 0; i < b.N; i++ {
		s.Push(i)
	}
}
