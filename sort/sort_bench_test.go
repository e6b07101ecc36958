package sort

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

func BenchmarkSort(b *testing.B) {
	for _, size := range []int{1000, 10000, 100000} {
		input := randomInts(rand.New(rand.NewSource(42)), size, 1000000)
		for _, algo := range []string{"quicksort", "quicksort_stack", "mergesort"} {
			sortFn := algorithms[algo]
			b.Run(fmt.Sprintf("%s/%d", algo, size), func(b *testing.B) {
				data := make([]int, size)
				b.ResetTimer()
				for range b.N {
					b.StopTimer()
					copy(data, input)
					b.StartTimer()
					sortFn(data)
				}
			})
		}
		b.Run(fmt.Sprintf("stdlib/%d", size), func(b *testing.B) {
			data := make([]int, size)
			for range b.N {
				b.StopTimer()
				copy(data, input)
				b.StartTimer()
				slices.Sort(data)
			}
		})
	}
}
