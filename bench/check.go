package bench

import (
	"context"
	"io"
	"math/rand"
	"runtime"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/convox/logger"
)

// Check 모든 조합을 한 번씩 정렬해 결과를 검증한다. 시간은 재지 않으므로
// 워커 풀에서 병렬로 돌린다. workers 가 1 미만이면 CPU 수.
// 실패한 조합의 에러를 모두 합쳐 돌려준다.
func (r *Runner) Check(ctx context.Context, workers int) (int, error) {
	log := r.Log
	if log == nil {
		log = logger.NewWriter("ns=bench", io.Discard)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	// 채널로 만든 세마포
	pool := make(chan struct{}, workers)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		failed  error
		checked int
	)

	l := log.At("check").Namespace("workers=%d", workers).Start()

loop:
	for _, dist := range r.Distributions {
		for _, algo := range r.Algorithms {
			for _, size := range r.Sizes {
				select {
				case pool <- struct{}{}:
				case <-ctx.Done():
					break loop
				}

				wg.Add(1)
				go func() {
					defer wg.Done()
					defer func() { <-pool }()

					input := dist.Generate(size, rand.New(rand.NewSource(r.Seed)))
					output := slices.Clone(input)
					algo.Sort(output)
					err := Verify(input, output)

					mu.Lock()
					defer mu.Unlock()
					checked++
					if err != nil {
						failed = errors.CombineErrors(failed, errors.Wrapf(err, "%s on %s (size %d)", algo.Name, dist.Name, size))
					}
				}()
			}
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		failed = errors.CombineErrors(errors.Wrap(err, "check interrupted"), failed)
	}
	if failed != nil {
		return checked, l.Error(failed)
	}

	l.Successf("checked=%d", checked)
	return checked, nil
}
