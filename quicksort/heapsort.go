package quicksort

import "golang.org/x/exp/constraints"

// HeapSort 자연 순서 힙정렬
func HeapSort[T constraints.Ordered](arr []T) {
	HeapSortFunc(arr, func(a, b T) bool { return a < b })
}

// HeapSortFunc O(n log n) 최악 보장용 힙정렬
func HeapSortFunc[T any](arr []T, less func(a, b T) bool) {
	n := len(arr)
	if n <= 1 {
		return
	}

	// 최대 힙 구성
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(arr, i, n, less)
	}

	// 루트를 차례로 뒤로 보낸다
	for i := n - 1; i > 0; i-- {
		arr[0], arr[i] = arr[i], arr[0]
		siftDown(arr, 0, i, less)
	}
}

func siftDown[T any](arr []T, i, n int, less func(a, b T) bool) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && less(arr[largest], arr[left]) {
			largest = left
		}
		if right < n && less(arr[largest], arr[right]) {
			largest = right
		}
		if largest == i {
			return
		}

		arr[i], arr[largest] = arr[largest], arr[i]
		i = largest
	}
}
