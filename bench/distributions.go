// Package bench 정렬 알고리즘 벤치마크 하네스.
//
// 여러 입력 분포에 대해 경쟁 정렬들을 반복 실행하고 원소당 소요 시간을 모은다.
package bench

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

// ErrUnknownDistribution 등록되지 않은 분포 이름
var ErrUnknownDistribution = errors.New("unknown distribution")

// Distribution 입력 데이터 생성기
type Distribution struct {
	Name     string
	Generate func(size int, rng *rand.Rand) []int
}

// Distributions 등록된 분포 전체 (보고서 순서)
func Distributions() []Distribution {
	return []Distribution{
		{"shuffled_int", shuffledInt},
		{"shuffled_16_values_int", shuffled16ValuesInt},
		{"all_equal_int", allEqualInt},
		{"ascending_int", ascendingInt},
		{"descending_int", descendingInt},
		{"pipe_organ_int", pipeOrganInt},
		{"push_front_int", pushFrontInt},
		{"push_middle_int", pushMiddleInt},
		{"ascending_modulo_int", ascendingModuloInt},
		{"descending_modulo_int", descendingModuloInt},
	}
}

// LookupDistribution 이름으로 분포 찾기
func LookupDistribution(name string) (Distribution, error) {
	for _, d := range Distributions() {
		if d.Name == name {
			return d, nil
		}
	}
	return Distribution{}, errors.Wrapf(ErrUnknownDistribution, "%q", name)
}

func shuffledInt(size int, rng *rand.Rand) []int {
	v := ascendingInt(size, rng)
	rng.Shuffle(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
	return v
}

func shuffled16ValuesInt(size int, rng *rand.Rand) []int {
	v := make([]int, size)
	for i := range size {
		v[i] = i % 16
	}
	rng.Shuffle(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
	return v
}

func allEqualInt(size int, _ *rand.Rand) []int {
	return make([]int, size)
}

func ascendingInt(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := range size {
		v[i] = i
	}
	return v
}

func descendingInt(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := range size {
		v[i] = size - 1 - i
	}
	return v
}

// pipeOrganInt 절반은 증가, 나머지 절반은 감소
func pipeOrganInt(size int, _ *rand.Rand) []int {
	v := make([]int, 0, size)
	for i := 0; i < size/2; i++ {
		v = append(v, i)
	}
	for i := size / 2; i < size; i++ {
		v = append(v, size-i)
	}
	return v
}

// pushFrontInt 정렬된 수열 끝에 최솟값 하나
func pushFrontInt(size int, _ *rand.Rand) []int {
	if size == 0 {
		return nil
	}
	v := make([]int, 0, size)
	for i := 1; i < size; i++ {
		v = append(v, i)
	}
	return append(v, 0)
}

// pushMiddleInt 정렬된 수열 끝에 중앙값 하나
func pushMiddleInt(size int, _ *rand.Rand) []int {
	v := make([]int, 0, size)
	for i := range size {
		if i != size/2 {
			v = append(v, i)
		}
	}
	if size > 0 {
		v = append(v, size/2)
	}
	return v
}

// moduloLimit vergesort 의 긴 런 기준보다 살짝 짧은 주기
func moduloLimit(size int) int {
	if size < 2 {
		return 1
	}
	return max(int(float64(size)/math.Log2(float64(size))*0.9), 1)
}

func ascendingModuloInt(size int, _ *rand.Rand) []int {
	limit := moduloLimit(size)
	v := make([]int, size)
	for i := range size {
		v[i] = i % limit
	}
	return v
}

func descendingModuloInt(size int, _ *rand.Rand) []int {
	limit := moduloLimit(size)
	v := make([]int, size)
	for i := range size {
		v[i] = (size - 1 - i) % limit
	}
	return v
}
