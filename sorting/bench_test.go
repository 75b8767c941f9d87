package sorting_test

import (
	"testing"

	"github.com/hasbyte1/go-fixed-array/sequence"
	"github.com/hasbyte1/go-fixed-array/sorting"
)

func benchStrategy(b *testing.B, s strategy) {
	src := sequence.StoreOf(randomInts(10_000, 42)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.sort(src, numeric); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMerge(b *testing.B) { benchStrategy(b, strategies[0]) }

func BenchmarkQuick(b *testing.B) { benchStrategy(b, strategies[1]) }

func BenchmarkHeapSort(b *testing.B) { benchStrategy(b, strategies[2]) }

func BenchmarkSortNatural(b *testing.B) {
	src := sequence.StoreOf(randomInts(10_000, 42)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sorting.SortNatural[int](src); err != nil {
			b.Fatal(err)
		}
	}
}
