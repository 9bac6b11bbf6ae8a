package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/convox/logger"
)

var (
	// ErrNotSorted 정렬 결과에 역전된 쌍이 있음
	ErrNotSorted = errors.New("output is not sorted")

	// ErrNotPermutation 정렬 결과가 입력의 순열이 아님
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// Result 분포 × 정렬 × 크기 하나의 측정 결과
type Result struct {
	Size         int           `json:"size"`
	Distribution string        `json:"distribution"`
	Algorithm    string        `json:"algorithm"`
	Samples      []uint64      `json:"samples_ns_per_elem"`
	Median       uint64        `json:"median_ns_per_elem"`
	Min          uint64        `json:"min_ns_per_elem"`
	Runs         int           `json:"runs"`
	AllocBytes   uint64        `json:"alloc_bytes_per_run"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Key 저장소 키. 크기를 0으로 채워 키 순서가 크기 순서가 되게 한다.
func (r Result) Key() string {
	return resultKey(r.Size, r.Distribution, r.Algorithm)
}

func resultKey(size int, distribution, algorithm string) string {
	return fmt.Sprintf("%012d/%s/%s", size, distribution, algorithm)
}

// Runner 벤치마크 실행기
type Runner struct {
	Sizes         []int
	Distributions []Distribution
	Algorithms    []Algorithm

	// Budget 조합 하나에 쓰는 시간. 최소 한 번은 실행한다.
	Budget time.Duration
	// MaxSamples 0 이면 제한 없음
	MaxSamples int
	Seed       int64
	// Verify 매 실행 결과를 검증한다.
	Verify bool

	// Store 가 있으면 결과를 저장하고, Resume 이면 저장된 조합은 건너뛴다.
	Store  *ResultStore
	Resume bool

	Log *logger.Logger
}

// Run 모든 조합을 순서대로 측정한다. 분포 → 정렬 → 크기 순.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	log := r.Log
	if log == nil {
		log = logger.NewWriter("ns=bench", io.Discard)
	}

	var results []Result
	for _, dist := range r.Distributions {
		for _, algo := range r.Algorithms {
			for _, size := range r.Sizes {
				if err := ctx.Err(); err != nil {
					return results, errors.Wrap(err, "benchmark interrupted")
				}

				l := log.At("measure").Namespace("size=%d distribution=%s sort=%s", size, dist.Name, algo.Name)

				if r.Store != nil && r.Resume {
					cached, ok, err := r.Store.Load(resultKey(size, dist.Name, algo.Name))
					if err != nil {
						return results, l.Error(err)
					}
					if ok {
						l.Logf("state=cached median=%d", cached.Median)
						results = append(results, cached)
						continue
					}
				}

				l = l.Start()
				res, err := r.measure(ctx, dist, algo, size)
				if err != nil {
					return results, l.Error(err)
				}

				if r.Store != nil {
					if err := r.Store.Save(res); err != nil {
						return results, l.Error(err)
					}
				}

				l.Successf("runs=%d median=%d min=%d", res.Runs, res.Median, res.Min)
				results = append(results, res)
			}
		}
	}
	return results, nil
}

// measure 같은 시드로 입력을 만들어 예산이 다할 때까지 반복 측정한다.
// 모든 정렬이 같은 입력 순서를 보게 된다.
func (r *Runner) measure(ctx context.Context, dist Distribution, algo Algorithm, size int) (Result, error) {
	rng := rand.New(rand.NewSource(r.Seed))
	res := Result{
		Size:         size,
		Distribution: dist.Name,
		Algorithm:    algo.Name,
	}

	// 측정 전 시스템 안정화
	runtime.GC()

	var totalAlloc uint64
	start := time.Now()
	for {
		data := dist.Generate(size, rng)
		var input []int
		if r.Verify {
			input = slices.Clone(data)
		}

		stats := startStats()
		algo.Sort(data)
		elapsed, alloc := stats.endStats()

		res.Samples = append(res.Samples, perElement(elapsed, size))
		totalAlloc += alloc

		if r.Verify {
			if err := Verify(input, data); err != nil {
				return res, errors.Wrapf(err, "%s on %s (size %d, run %d)", algo.Name, dist.Name, size, len(res.Samples))
			}
		}

		if r.MaxSamples > 0 && len(res.Samples) >= r.MaxSamples {
			break
		}
		// 중단된 측정은 불완전하므로 결과로 쓰지 않는다
		if err := ctx.Err(); err != nil {
			return res, errors.Wrap(err, "benchmark interrupted")
		}
		if time.Since(start) >= r.Budget {
			break
		}
	}

	slices.Sort(res.Samples)
	res.Runs = len(res.Samples)
	res.Min = res.Samples[0]
	res.Median = res.Samples[len(res.Samples)/2]
	res.AllocBytes = totalAlloc / uint64(res.Runs)
	res.Elapsed = time.Since(start)
	return res, nil
}

// perElement 원소당 나노초 (반올림)
func perElement(elapsed time.Duration, size int) uint64 {
	if size < 1 {
		size = 1
	}
	return uint64(float64(elapsed.Nanoseconds())/float64(size) + 0.5)
}

// Verify output 이 input 을 정렬한 결과인지 확인한다.
func Verify(input, output []int) error {
	for i := 1; i < len(output); i++ {
		if output[i] < output[i-1] {
			return errors.Wrapf(ErrNotSorted, "index %d: %d after %d", i, output[i], output[i-1])
		}
	}

	want := slices.Clone(input)
	slices.Sort(want)
	if !slices.Equal(want, output) {
		return errors.Wrapf(ErrNotPermutation, "len %d vs %d", len(output), len(input))
	}
	return nil
}

// sampleStats 한 번의 실행에 대한 시간·메모리 측정
type sampleStats struct {
	startTime time.Time
	startMem  runtime.MemStats
}

func startStats() *sampleStats {
	s := &sampleStats{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// endStats 경과 시간과 그동안 할당된 바이트 수
func (s *sampleStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)

	return duration, endMem.TotalAlloc - s.startMem.TotalAlloc
}
