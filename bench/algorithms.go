package bench

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"

	"vergesort"
	"vergesort/mergesort"
	"vergesort/quicksort"
)

// ErrUnknownSort 등록되지 않은 정렬 이름
var ErrUnknownSort = errors.New("unknown sort")

// Algorithm 측정 대상 정렬
type Algorithm struct {
	Name string
	Sort func([]int)
}

// Algorithms 경쟁 정렬 전체. opts 는 vergesort 에만 적용된다.
func Algorithms(opts ...vergesort.Option) []Algorithm {
	return []Algorithm{
		{"heapsort", quicksort.HeapSort[int]},
		{"quicksort", quicksort.Sort[int]},
		{"pdqsort", func(v []int) { slices.Sort(v) }},
		{"stablesort", func(v []int) { slices.SortStableFunc(v, cmp.Compare[int]) }},
		{"mergesort", mergesort.Sort[int]},
		{"vergesort", func(v []int) { vergesort.Sort(v, opts...) }},
	}
}

// LookupAlgorithm 이름으로 정렬 찾기
func LookupAlgorithm(name string, opts ...vergesort.Option) (Algorithm, error) {
	for _, a := range Algorithms(opts...) {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, errors.Wrapf(ErrUnknownSort, "%q", name)
}
