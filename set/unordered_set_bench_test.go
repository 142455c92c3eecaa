package set

import "testing"

func BenchmarkInsert(b *testing.B) {
	s := NewUnorderedSet[int]()
	for i := 0; i < b.N; i++ {
		s.Insert(i % 4096)
	}
}

func BenchmarkContain(b *testing.B) {
	s := NewUnorderedSet[int]()
	for i := 0; i < 4096; i++ {
		s.Insert(i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Contain(i % 8192)
	}
}
