// Package mergesort 버퍼를 쓰는 하향식 안정 병합정렬.
package mergesort

import "golang.org/x/exp/constraints"

// insertionThreshold 이 크기 이하 구간은 삽입정렬
const insertionThreshold = 16

// Sort 자연 순서로 제자리 정렬 (결과를 원본에 복사)
func Sort[T constraints.Ordered](arr []T) {
	SortFunc(arr, func(a, b T) bool { return a < b })
}

// SortFunc less 기준 안정 정렬
func SortFunc[T any](arr []T, less func(a, b T) bool) {
	sorted := Sorted(arr, less)
	copy(arr, sorted)
}

// Sorted arr 를 건드리지 않고 정렬된 새 슬라이스를 돌려준다.
func Sorted[T any](arr []T, less func(a, b T) bool) []T {
	if len(arr) <= 1 {
		result := make([]T, len(arr))
		copy(result, arr)
		return result
	}

	// 작은 배열은 삽입정렬 사용
	if len(arr) <= insertionThreshold {
		result := make([]T, len(arr))
		copy(result, arr)
		insertionSort(result, less)
		return result
	}

	mid := len(arr) / 2
	left := Sorted(arr[:mid], less)
	right := Sorted(arr[mid:], less)

	return Merge(left, right, less)
}

// Merge 정렬된 두 슬라이스를 병합한 새 슬라이스. 같은 값은 left 가 먼저 온다.
func Merge[T any](left, right []T, less func(a, b T) bool) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			result = append(result, right[j])
			j++
		} else {
			result = append(result, left[i])
			i++
		}
	}

	// 남은 요소들 한 번에 추가
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)

	return result
}

func insertionSort[T any](arr []T, less func(a, b T) bool) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && less(arr[j], arr[j-1]); j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}
