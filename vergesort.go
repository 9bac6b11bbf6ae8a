// Package vergesort 부분적으로 정렬된 입력에 강한 적응형 제자리 비교 정렬.
//
// 입력을 한 번 훑으며 자연스럽게 존재하는 증가/감소 런을 찾고, 충분히 긴 런은
// 바로 병합한다. 짧은 런들은 "불안정 구간"으로 모아 두었다가 폴백 정렬
// (기본값 quicksort.Sort) 한 번으로 처리한 뒤 병합한다.
package vergesort

import (
	"sort"

	"golang.org/x/exp/constraints"

	"vergesort/quicksort"
)

// Fallback 임의 입력에 대해 O(n log n) 을 보장하는 비교 정렬.
// 동일 원소의 순서는 보장하지 않아도 된다.
type Fallback[T any] func(data []T, less func(a, b T) bool)

// Sorter 비교 함수와 폴백 정렬, 설정을 묶은 정렬기.
// Config 가 zero value 면 DefaultConfig 를 쓴다.
type Sorter[T any] struct {
	Less     func(a, b T) bool
	Fallback Fallback[T]
	Config   Config
}

// New 기본 설정과 기본 폴백을 쓰는 Sorter 생성
func New[T any](less func(a, b T) bool, opts ...Option) *Sorter[T] {
	return &Sorter[T]{
		Less:     less,
		Fallback: quicksort.SortFunc[T],
		Config:   newConfig(opts),
	}
}

// Sort data 를 제자리 정렬한다.
func (s *Sorter[T]) Sort(data []T) {
	fallback := s.Fallback
	if fallback == nil {
		fallback = quicksort.SortFunc[T]
	}
	cfg := s.Config
	if cfg.isZero() {
		cfg = DefaultConfig()
	}
	cfg = cfg.normalize()
	run(&sliceSeq[T]{
		data:     data,
		less:     s.Less,
		fallback: fallback,
		bufLimit: cfg.MergeBuffer,
	}, cfg)
}

// Sort 자연 순서(<)로 정렬
func Sort[T constraints.Ordered](data []T, opts ...Option) {
	SortFunc(data, func(a, b T) bool { return a < b }, opts...)
}

// SortFunc less 로 정렬
func SortFunc[T any](data []T, less func(a, b T) bool, opts ...Option) {
	New(less, opts...).Sort(data)
}

// SortInterface sort.Interface 구현체를 정렬. Less 와 Swap 만 사용한다.
func SortInterface(data sort.Interface, opts ...Option) {
	run(interfaceSeq{data}, newConfig(opts))
}

// IsSorted data 가 오름차순인지
func IsSorted[T constraints.Ordered](data []T) bool {
	return IsSortedFunc(data, func(a, b T) bool { return a < b })
}

// IsSortedFunc less 기준으로 정렬돼 있는지
func IsSortedFunc[T any](data []T, less func(a, b T) bool) bool {
	seq := &sliceSeq[T]{data: data, less: less}
	return sortedUntil(seq, 0, len(data)) == len(data)
}

// pending 아직 정렬·병합되지 않은 짧은 런들의 시작 위치
type pending struct {
	start int
	ok    bool
}

// driver 런 단위 상태 기계
type driver struct {
	seq      sequence
	limit    int
	unstable pending
}

// fold 런 [begin, end) 하나를 처리한다. 병합은 항상 0 에 고정된다.
func (d *driver) fold(begin, end int, dir direction) {
	if end-begin <= d.limit {
		// 짧은 런: 불안정 구간을 열거나 그대로 키운다
		if !d.unstable.ok {
			d.unstable = pending{start: begin, ok: true}
		}
		return
	}

	if d.unstable.ok {
		d.seq.Sort(d.unstable.start, begin)
		if dir == descending {
			d.seq.Reverse(begin, end)
		}
		merge3(d.seq, 0, d.unstable.start, begin, end)
		d.unstable = pending{}
		return
	}

	if dir == descending {
		d.seq.Reverse(begin, end)
	}
	d.seq.Merge(0, begin, end)
}

// run 정렬 본체
func run(seq sequence, cfg Config) {
	n := seq.Len()
	if n < 2 {
		return
	}
	if n < cfg.MinSize {
		seq.Sort(0, n)
		return
	}

	current := sortedUntil(seq, 0, n)
	if current == n {
		return
	}
	// 정렬된 접두부의 마지막 원소부터 첫 감소 런이 시작된다
	current--

	d := driver{seq: seq, limit: cfg.limit(n)}
	for {
		next := scanRun(seq, current, n, descending)
		d.fold(current, next, descending)
		if next == n {
			break
		}
		current = next

		next = scanRun(seq, current, n, ascending)
		d.fold(current, next, ascending)
		if next == n {
			break
		}
		current = next
	}

	if d.unstable.ok {
		seq.Sort(d.unstable.start, n)
		seq.Merge(0, d.unstable.start, n)
	}
}
