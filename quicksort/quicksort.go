// Package quicksort 3-way 파티셔닝 퀵소트 (인트로소트).
//
// vergesort 의 기본 폴백 정렬이다. 중복값, 정렬/역정렬 입력, 적대적 입력 모두에서
// O(n log n) 을 유지한다. 재귀가 깊어지면 힙정렬로 넘어간다.
package quicksort

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// insertionThreshold 이 크기 이하 구간은 삽입정렬
const insertionThreshold = 16

// Sort 자연 순서(<)로 정렬
func Sort[T constraints.Ordered](arr []T) {
	SortFunc(arr, func(a, b T) bool { return a < b })
}

// SortFunc less 기준 정렬 (하이브리드 접근)
func SortFunc[T any](arr []T, less func(a, b T) bool) {
	if len(arr) < 2 {
		return
	}
	quickSortHelper(arr, 0, len(arr)-1, less, maxDepth(len(arr)))
}

// maxDepth 힙정렬로 넘어가기 전까지 허용하는 분할 횟수: 2*floor(log2(n))
func maxDepth(n int) int {
	return 2 * (bits.Len(uint(n)) - 1)
}

func quickSortHelper[T any](arr []T, low, high int, less func(a, b T) bool, depth int) {
	for low < high {
		size := high - low + 1

		// 작은 배열에는 삽입정렬 사용
		if size <= insertionThreshold {
			insertionSort(arr, low, high, less)
			return
		}

		// 분할이 계속 한쪽으로 쏠리면 힙정렬로 최악의 경우를 막는다
		if depth == 0 {
			HeapSortFunc(arr[low:high+1], less)
			return
		}
		depth--

		// 3-way 파티셔닝으로 중복값 처리
		lt, gt := partition3Way(arr, low, high, less)

		// 더 작은 쪽만 재귀하고 큰 쪽은 반복으로 처리
		if lt-low < high-gt {
			quickSortHelper(arr, low, lt-1, less, depth)
			low = gt + 1
		} else {
			quickSortHelper(arr, gt+1, high, less, depth)
			high = lt - 1
		}
	}
}

// partition3Way arr[low..high] 를 < pivot, == pivot, > pivot 으로 나눈다.
// 반환값 lt, gt 는 == pivot 구간의 양 끝(포함).
func partition3Way[T any](arr []T, low, high int, less func(a, b T) bool) (int, int) {
	medianOfThree(arr, low, int(uint(low+high)>>1), high, less)
	pivot := arr[low]

	lt := low      // arr[low..lt-1] < pivot
	i := low + 1   // arr[lt..i-1] == pivot
	gt := high + 1 // arr[gt..high] > pivot

	for i < gt {
		if less(arr[i], pivot) {
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		} else if less(pivot, arr[i]) {
			gt--
			arr[i], arr[gt] = arr[gt], arr[i]
		} else {
			i++
		}
	}

	return lt, gt - 1
}

// medianOfThree 세 값의 중앙값을 a 위치로 옮긴다.
func medianOfThree[T any](arr []T, a, b, c int, less func(a, b T) bool) {
	if less(arr[b], arr[a]) {
		arr[a], arr[b] = arr[b], arr[a]
	}
	if less(arr[c], arr[b]) {
		arr[b], arr[c] = arr[c], arr[b]
	}
	if less(arr[b], arr[a]) {
		arr[a], arr[b] = arr[b], arr[a]
	}
	arr[a], arr[b] = arr[b], arr[a]
}

// insertionSort 교환 기반 삽입정렬. 비교 함수가 패닉해도 원소가 사라지지 않는다.
func insertionSort[T any](arr []T, low, high int, less func(a, b T) bool) {
	for i := low + 1; i <= high; i++ {
		for j := i; j > low && less(arr[j], arr[j-1]); j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}
