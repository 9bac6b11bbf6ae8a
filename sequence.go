package vergesort

import "sort"

// sequence 드라이버가 보는 임의 접근 수열. 위치 i, j 는 항상 [0, Len()) 범위다.
type sequence interface {
	Len() int
	Less(i, j int) bool
	// Reverse [i, j) 를 뒤집는다.
	Reverse(i, j int)
	// Sort [i, j) 를 폴백 정렬한다.
	Sort(i, j int)
	// Merge 정렬된 [a, m) 과 [m, b) 를 병합한다.
	Merge(a, m, b int)
}

// sliceSeq 슬라이스 어댑터
type sliceSeq[T any] struct {
	data     []T
	less     func(a, b T) bool
	fallback Fallback[T]
	buf      []T
	bufLimit int
}

func (s *sliceSeq[T]) Len() int { return len(s.data) }

func (s *sliceSeq[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }

func (s *sliceSeq[T]) Reverse(i, j int) { reverse(s.data[i:j]) }

func (s *sliceSeq[T]) Sort(i, j int) {
	if j-i > 1 {
		s.fallback(s.data[i:j], s.less)
	}
}

func (s *sliceSeq[T]) Merge(a, m, b int) {
	mergeSlice(s.data, a, m, b, s.less, &s.buf, s.bufLimit)
}

// interfaceSeq sort.Interface 어댑터. 모든 이동을 Swap 으로 한다.
type interfaceSeq struct {
	data sort.Interface
}

func (s interfaceSeq) Len() int { return s.data.Len() }

func (s interfaceSeq) Less(i, j int) bool { return s.data.Less(i, j) }

func (s interfaceSeq) Reverse(i, j int) { reverseInterface(s.data, i, j) }

func (s interfaceSeq) Sort(i, j int) {
	if j-i > 1 {
		sort.Sort(window{s.data, i, j - i})
	}
}

func (s interfaceSeq) Merge(a, m, b int) {
	if a == m || m == b || !s.data.Less(m, m-1) {
		return
	}
	symMergeInterface(s.data, a, m, b)
}

// window sort.Interface 의 [off, off+n) 부분
type window struct {
	data sort.Interface
	off  int
	n    int
}

func (w window) Len() int           { return w.n }
func (w window) Less(i, j int) bool { return w.data.Less(w.off+i, w.off+j) }
func (w window) Swap(i, j int)      { w.data.Swap(w.off+i, w.off+j) }
