package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

// 보고서 형식
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ErrUnknownFormat 지원하지 않는 보고서 형식
var ErrUnknownFormat = errors.New("unknown report format")

// WriteReport format 에 맞춰 결과를 쓴다.
func WriteReport(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatPlain, "":
		return WritePlain(w, results)
	case FormatMarkdown, "md":
		return WriteMarkdown(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// WritePlain 한 줄에 "크기 분포 정렬 샘플..." (샘플은 원소당 ns, 오름차순)
func WritePlain(w io.Writer, results []Result) error {
	var builder strings.Builder
	for _, r := range results {
		fmt.Fprintf(&builder, "%d %s %s", r.Size, r.Distribution, r.Algorithm)
		for _, s := range r.Samples {
			fmt.Fprintf(&builder, " %d", s)
		}
		builder.WriteByte('\n')
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteMarkdown 크기별 표와 분포별 최고 기록 요약
func WriteMarkdown(w io.Writer, results []Result) error {
	var builder strings.Builder

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	fmt.Fprintf(&builder, "실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&builder, "CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Fprintf(&builder, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	for _, size := range sizesOf(results) {
		fmt.Fprintf(&builder, "## %s개 데이터\n\n", humanize.Comma(int64(size)))
		builder.WriteString("| 분포 | 알고리즘 | 중앙값 (ns/원소) | 최소 (ns/원소) | 실행 횟수 | 실행당 할당 |\n")
		builder.WriteString("|------|----------|------------------|----------------|-----------|-------------|\n")

		for _, r := range results {
			if r.Size != size {
				continue
			}
			fmt.Fprintf(&builder, "| %s | %s | %d | %d | %d | %s |\n",
				r.Distribution, r.Algorithm, r.Median, r.Min, r.Runs, humanize.Bytes(r.AllocBytes))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## 요약 (분포별 최고 기록)\n\n")
	builder.WriteString("| 크기 | 분포 | 알고리즘 | 중앙값 (ns/원소) |\n")
	builder.WriteString("|------|------|----------|------------------|\n")
	for _, best := range fastest(results) {
		fmt.Fprintf(&builder, "| %s | %s | %s | %d |\n",
			humanize.Comma(int64(best.Size)), best.Distribution, best.Algorithm, best.Median)
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteJSON 들여쓰기된 JSON 배열
func WriteJSON(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// sizesOf 등장 순서대로 중복 없는 크기 목록
func sizesOf(results []Result) []int {
	var sizes []int
	seen := map[int]bool{}
	for _, r := range results {
		if !seen[r.Size] {
			seen[r.Size] = true
			sizes = append(sizes, r.Size)
		}
	}
	return sizes
}

// fastest (크기, 분포) 마다 중앙값이 가장 작은 결과. 등장 순서 유지.
func fastest(results []Result) []Result {
	type group struct {
		size         int
		distribution string
	}

	var order []group
	best := map[group]Result{}
	for _, r := range results {
		g := group{r.Size, r.Distribution}
		cur, ok := best[g]
		if !ok {
			order = append(order, g)
		}
		if !ok || r.Median < cur.Median {
			best[g] = r
		}
	}

	out := make([]Result, 0, len(order))
	for _, g := range order {
		out = append(out, best[g])
	}
	return out
}
