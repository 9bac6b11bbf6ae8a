package vergesort_test

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"testing"

	"vergesort"
	"vergesort/bench"
)

func ExampleSort() {
	data := []int{5, 4, 3, 2, 1}
	vergesort.Sort(data)
	fmt.Println(data)
	// Output: [1 2 3 4 5]
}

func ExampleSortFunc() {
	words := []string{"pear", "fig", "banana", "kiwi"}
	vergesort.SortFunc(words, func(a, b string) bool { return len(a) < len(b) })
	fmt.Println(words[0], words[len(words)-1])
	// Output: fig banana
}

func ExampleSortInterface() {
	data := sort.StringSlice{"c", "a", "b"}
	vergesort.SortInterface(data)
	fmt.Println(data)
	// Output: [a b c]
}

func BenchmarkSort(b *testing.B) {
	const size = 1 << 16
	for _, d := range bench.Distributions() {
		input := d.Generate(size, rand.New(rand.NewSource(1)))
		work := make([]int, size)

		b.Run(d.Name+"/vergesort", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work, input)
				vergesort.Sort(work)
			}
		})
		b.Run(d.Name+"/pdqsort", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work, input)
				slices.Sort(work)
			}
		})
	}
}
