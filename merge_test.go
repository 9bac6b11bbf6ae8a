package vergesort

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// sortedPairs 키가 [0, keys) 인 정렬된 pair n 개. Idx 는 base 부터 증가한다.
func sortedPairs(rng *rand.Rand, n, keys, base int) []pair {
	v := make([]pair, n)
	for i := range v {
		v[i] = pair{Key: rng.Intn(keys)}
	}
	slices.SortFunc(v, func(a, b pair) int { return a.Key - b.Key })
	for i := range v {
		v[i].Idx = base + i
	}
	return v
}

func stableSorted(v []pair) []pair {
	want := slices.Clone(v)
	slices.SortStableFunc(want, func(a, b pair) int { return a.Key - b.Key })
	return want
}

func TestMergeSliceStable(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	shapes := [][2]int{{0, 0}, {0, 5}, {5, 0}, {1, 1}, {1, 40}, {40, 1}, {30, 30}, {7, 300}, {300, 7}, {500, 800}}

	for _, shape := range shapes {
		for _, keys := range []int{3, 1000} {
			for _, limit := range []int{0, 1, 16, 1 << 20} {
				left := sortedPairs(rng, shape[0], keys, 0)
				right := sortedPairs(rng, shape[1], keys, shape[0])
				data := append(left, right...)
				want := stableSorted(data)

				var buf []pair
				mergeSlice(data, 0, len(left), len(data), lessPair, &buf, limit)
				if diff := cmp.Diff(want, data); diff != "" {
					t.Fatalf("shape=%v keys=%d limit=%d (-want +got):\n%s", shape, keys, limit, diff)
				}
			}
		}
	}
}

func TestMergeSliceSubrange(t *testing.T) {
	data := []int{9, 1, 4, 7, 2, 3, 8, 0}
	var buf []int
	mergeSlice(data, 1, 4, 7, lessInt, &buf, 4)
	assert.Equal(t, []int{9, 1, 2, 3, 4, 7, 8, 0}, data)
}

func TestMergeSliceBufferReuse(t *testing.T) {
	var buf []int
	data := []int{1, 5, 9, 2, 3}
	mergeSlice(data, 0, 3, 5, lessInt, &buf, 8)
	assert.Equal(t, []int{1, 2, 3, 5, 9}, data)
	assert.GreaterOrEqual(t, cap(buf), 2)

	first := cap(buf)
	data = []int{4, 1}
	mergeSlice(data, 0, 1, 2, lessInt, &buf, 8)
	assert.Equal(t, []int{1, 4}, data)
	assert.Equal(t, first, cap(buf))
}

func TestMergeSlicePanicRestoresBuffer(t *testing.T) {
	for _, shape := range [][2]int{{10, 40}, {40, 10}} {
		data := append(ascendingInts(shape[0]), ascendingInts(shape[1])...)
		want := sortedCopy(data)

		calls := 0
		var buf []int
		func() {
			defer func() { recover() }()
			mergeSlice(data, 0, shape[0], len(data), func(a, b int) bool {
				calls++
				if calls == 12 {
					panic("comparator failure")
				}
				return a < b
			}, &buf, 1<<10)
		}()

		assert.Equal(t, want, sortedCopy(data), "shape %v", shape)
	}
}

func TestMerge3(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, shape := range [][3]int{{1, 1, 1}, {10, 2, 300}, {300, 2, 10}, {50, 50, 50}, {0, 20, 20}, {20, 20, 0}} {
		a := sortedPairs(rng, shape[0], 20, 0)
		b := sortedPairs(rng, shape[1], 20, shape[0])
		c := sortedPairs(rng, shape[2], 20, shape[0]+shape[1])
		data := append(append(a, b...), c...)
		want := stableSorted(data)

		seq := &sliceSeq[pair]{data: data, less: lessPair, bufLimit: 8}
		merge3(seq, 0, len(a), len(a)+len(b), len(data))
		assert.Equal(t, want, data, "shape %v", shape)
	}
}

// pairSlice sort.Interface 로 감싼 pair 슬라이스
type pairSlice []pair

func (p pairSlice) Len() int           { return len(p) }
func (p pairSlice) Less(i, j int) bool { return p[i].Key < p[j].Key }
func (p pairSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func TestSymMergeInterfaceStable(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, shape := range [][2]int{{1, 1}, {1, 30}, {30, 1}, {17, 64}, {200, 3}, {256, 256}} {
		left := sortedPairs(rng, shape[0], 10, 0)
		right := sortedPairs(rng, shape[1], 10, shape[0])
		data := append(left, right...)
		want := stableSorted(data)

		interfaceSeq{pairSlice(data)}.Merge(0, len(left), len(data))
		assert.Equal(t, want, data, "shape %v", shape)
	}
}

func TestRotate(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7}
	rotate(data, 1, 3, 6)
	assert.Equal(t, []int{1, 4, 5, 6, 2, 3, 7}, data)

	iface := sort.IntSlice{1, 2, 3, 4, 5, 6, 7}
	rotateInterface(iface, 1, 3, 6)
	assert.Equal(t, sort.IntSlice{1, 4, 5, 6, 2, 3, 7}, iface)
}

func TestBounds(t *testing.T) {
	data := []int{1, 2, 2, 2, 5}
	assert.Equal(t, 1, lowerBound(data, 2, lessInt))
	assert.Equal(t, 4, upperBound(data, 2, lessInt))
	assert.Equal(t, 0, lowerBound(data, 0, lessInt))
	assert.Equal(t, 5, upperBound(data, 9, lessInt))
}

func TestScanRun(t *testing.T) {
	seqOf := func(v ...int) sequence { return &sliceSeq[int]{data: v, less: lessInt} }

	// 감소 런은 같은 값을 포함한다
	assert.Equal(t, 4, scanRun(seqOf(3, 3, 2, 2, 5), 0, 5, descending))
	assert.Equal(t, 3, scanRun(seqOf(1, 1, 2, 0), 0, 4, ascending))
	assert.Equal(t, 1, scanRun(seqOf(1, 2), 0, 2, descending))
	assert.Equal(t, 1, scanRun(seqOf(2, 1), 0, 2, ascending))
	assert.Equal(t, 5, scanRun(seqOf(9, 1, 2, 3, 4), 1, 5, ascending))

	assert.Equal(t, "descending", descending.String())
	assert.Equal(t, "ascending", ascending.String())
}

func TestSortedUntil(t *testing.T) {
	seq := &sliceSeq[int]{data: []int{1, 2, 2, 1, 5}, less: lessInt}
	assert.Equal(t, 3, sortedUntil(seq, 0, 5))
	assert.Equal(t, 5, sortedUntil(seq, 3, 5))
	assert.Equal(t, 2, sortedUntil(seq, 2, 2))
}

func TestConfigNormalize(t *testing.T) {
	cfg := newConfig([]Option{WithMinSize(-3), WithMergeBuffer(-1), WithUnstableLimit(nil)})
	assert.Equal(t, 2, cfg.MinSize)
	assert.Equal(t, 0, cfg.MergeBuffer)
	assert.Equal(t, 111, cfg.limit(1000))

	cfg = newConfig([]Option{WithUnstableLimit(func(int) int { return 0 })})
	assert.Equal(t, 1, cfg.limit(1000))

	cfg = newConfig(nil)
	assert.Equal(t, DefaultMinSize, cfg.MinSize)
	assert.Equal(t, DefaultMergeBuffer, cfg.MergeBuffer)
}

func TestDefaultUnstableLimit(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 80: 13, 1000: 111, 1 << 20: 1 << 20 / 20}
	for n, want := range cases {
		assert.Equal(t, want, DefaultUnstableLimit(n), "n=%d", n)
	}
}

func TestSorterZeroValueConfig(t *testing.T) {
	s := &Sorter[int]{Less: lessInt}
	data := append(ascendingInts(300), 5, 4, 3)
	s.Sort(data)
	assert.True(t, IsSorted(data))

	// zero value 설정은 기본값과 같다: 80 미만 입력은 통째로 폴백 정렬
	var lengths []int
	s = &Sorter[int]{Less: lessInt, Fallback: func(data []int, less func(a, b int) bool) {
		lengths = append(lengths, len(data))
		slices.Sort(data)
	}}
	data = ascendingInts(10)
	for v := 49; v >= 10; v-- {
		data = append(data, v)
	}
	s.Sort(data)
	assert.Equal(t, ascendingInts(50), data)
	assert.Equal(t, []int{50}, lengths)
}
