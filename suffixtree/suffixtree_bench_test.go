package suffixtree

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("abracadabra bismarck biss mark ", 32)

func BenchmarkSetText(b *testing.B) {
	st := NewSuffixTree()
	for i := 0; i < b.N; i++ {
		if err := st.SetText(benchText); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	st := NewSuffixTree()
	if err := st.SetText(benchText); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		st.Contains("bismarck biss")
	}
}

func BenchmarkFind(b *testing.B) {
	st := NewSuffixTree()
	if err := st.SetText(benchText); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		st.Find("abra")
	}
}

func BenchmarkEndsWith(b *testing.B) {
	st := NewSuffixTree()
	if err := st.SetText(benchText); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		st.EndsWith("biss mark ")
	}
}
