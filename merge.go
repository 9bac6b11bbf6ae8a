package vergesort

import "sort"

// merge3 인접한 정렬 구간 [a,m1) [m1,m2) [m2,b) 를 병합한다.
// 두 번의 제자리 병합 중 비싼 쪽이 건드리는 원소 수가 적도록 순서를 고른다.
func merge3(seq sequence, a, m1, m2, b int) {
	if m1-a < b-m2 {
		seq.Merge(a, m1, m2)
		seq.Merge(a, m2, b)
		return
	}
	seq.Merge(m1, m2, b)
	seq.Merge(a, m1, b)
}

// mergeSlice data[a:m] 과 data[m:b] 를 안정적으로 병합한다.
// 작은 쪽이 버퍼 상한 안에 들어오면 버퍼 병합, 아니면 symMerge.
func mergeSlice[T any](data []T, a, m, b int, less func(a, b T) bool, buf *[]T, bufLimit int) {
	if a == m || m == b || !less(data[m], data[m-1]) {
		return
	}

	// 이미 제자리에 있는 앞뒤 원소는 병합 대상에서 뺀다
	a += upperBound(data[a:m], data[m], less)
	b = m + lowerBound(data[m:b], data[m-1], less)

	left, right := m-a, b-m
	switch {
	case left <= right && left <= bufLimit:
		mergeLo(data, a, m, b, less, grow(buf, left))
	case right < left && right <= bufLimit:
		mergeHi(data, a, m, b, less, grow(buf, right))
	default:
		symMerge(data, a, m, b, less)
	}
}

// grow 버퍼를 n 원소 이상으로 늘려 n 길이로 돌려준다.
func grow[T any](buf *[]T, n int) []T {
	if cap(*buf) < n {
		*buf = make([]T, n)
	}
	return (*buf)[:n]
}

// mergeLo 왼쪽 구간을 버퍼로 옮긴 뒤 앞에서부터 채운다.
func mergeLo[T any](data []T, a, m, b int, less func(a, b T) bool, buf []T) {
	copy(buf, data[a:m])
	i, j, k := 0, m, a
	defer func() {
		// 비교 함수가 패닉해도 순열이 유지되도록 남은 버퍼를 빈 자리에 되돌린다
		copy(data[k:], buf[i:])
		clear(buf)
	}()
	for i < len(buf) && j < b {
		if less(data[j], buf[i]) {
			data[k] = data[j]
			j++
		} else {
			data[k] = buf[i]
			i++
		}
		k++
	}
}

// mergeHi 오른쪽 구간을 버퍼로 옮긴 뒤 뒤에서부터 채운다.
func mergeHi[T any](data []T, a, m, b int, less func(a, b T) bool, buf []T) {
	copy(buf, data[m:b])
	i, j, k := m-1, len(buf)-1, b-1
	defer func() {
		copy(data[k-j:k+1], buf[:j+1])
		clear(buf)
	}()
	for j >= 0 && i >= a {
		if less(buf[j], data[i]) {
			data[k] = data[i]
			i--
		} else {
			data[k] = buf[j]
			j--
		}
		k--
	}
}

// upperBound x 보다 큰 첫 원소의 위치
func upperBound[T any](data []T, x T, less func(a, b T) bool) int {
	lo, hi := 0, len(data)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if less(x, data[h]) {
			hi = h
		} else {
			lo = h + 1
		}
	}
	return lo
}

// lowerBound x 이상인 첫 원소의 위치
func lowerBound[T any](data []T, x T, less func(a, b T) bool) int {
	lo, hi := 0, len(data)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if less(data[h], x) {
			lo = h + 1
		} else {
			hi = h
		}
	}
	return lo
}

// symMerge 버퍼 없이 회전으로 병합한다 (Kim & Kutzner SymMerge).
// 비교는 O(m log(n/m)), 이동은 O(n log n).
func symMerge[T any](data []T, a, m, b int, less func(a, b T) bool) {
	// 한쪽이 원소 하나면 이진 탐색 후 회전
	if m-a == 1 {
		i := m + lowerBound(data[m:b], data[a], less)
		rotate(data, a, m, i)
		return
	}
	if b-m == 1 {
		i := a + upperBound(data[a:m], data[m], less)
		rotate(data, i, m, b)
		return
	}

	mid := int(uint(a+b) >> 1)
	n := mid + m
	var start, r int
	if m > mid {
		start = n - b
		r = mid
	} else {
		start = a
		r = m
	}
	p := n - 1

	for start < r {
		c := int(uint(start+r) >> 1)
		if !less(data[p-c], data[c]) {
			start = c + 1
		} else {
			r = c
		}
	}

	end := n - start
	if start < m && m < end {
		rotate(data, start, m, end)
	}
	if a < start && start < mid {
		symMerge(data, a, start, mid, less)
	}
	if mid < end && end < b {
		symMerge(data, mid, end, b, less)
	}
}

// rotate data[a:m] 과 data[m:b] 의 자리를 맞바꾼다. 교환만 사용한다.
func rotate[T any](data []T, a, m, b int) {
	if a == m || m == b {
		return
	}
	reverse(data[a:m])
	reverse(data[m:b])
	reverse(data[a:b])
}

func reverse[T any](data []T) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

// symMergeInterface sort.Interface 용 symMerge
func symMergeInterface(data sort.Interface, a, m, b int) {
	if m-a == 1 {
		i, j := m, b
		for i < j {
			h := int(uint(i+j) >> 1)
			if data.Less(h, a) {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := a; k < i-1; k++ {
			data.Swap(k, k+1)
		}
		return
	}
	if b-m == 1 {
		i, j := a, m
		for i < j {
			h := int(uint(i+j) >> 1)
			if !data.Less(m, h) {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := m; k > i; k-- {
			data.Swap(k, k-1)
		}
		return
	}

	mid := int(uint(a+b) >> 1)
	n := mid + m
	var start, r int
	if m > mid {
		start = n - b
		r = mid
	} else {
		start = a
		r = m
	}
	p := n - 1

	for start < r {
		c := int(uint(start+r) >> 1)
		if !data.Less(p-c, c) {
			start = c + 1
		} else {
			r = c
		}
	}

	end := n - start
	if start < m && m < end {
		rotateInterface(data, start, m, end)
	}
	if a < start && start < mid {
		symMergeInterface(data, a, start, mid)
	}
	if mid < end && end < b {
		symMergeInterface(data, mid, end, b)
	}
}

// rotateInterface 블록 교환 방식 회전
func rotateInterface(data sort.Interface, a, m, b int) {
	i := m - a
	j := b - m
	for i != j {
		if i > j {
			swapRange(data, m-i, m, j)
			i -= j
		} else {
			swapRange(data, m-i, m+j-i, i)
			j -= i
		}
	}
	swapRange(data, m-i, m, i)
}

func swapRange(data sort.Interface, a, b, n int) {
	for i := 0; i < n; i++ {
		data.Swap(a+i, b+i)
	}
}

func reverseInterface(data sort.Interface, a, b int) {
	for i, j := a, b-1; i < j; i, j = i+1, j-1 {
		data.Swap(i, j)
	}
}
