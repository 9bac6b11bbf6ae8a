// vergebench 여러 입력 분포에서 vergesort 와 경쟁 정렬들을 비교하는 벤치마크.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/convox/logger"
	"github.com/spf13/cobra"

	"vergesort/bench"
	"vergesort/kvdb"
)

var log = logger.NewWriter("ns=vergebench", os.Stderr)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vergebench",
		Short:         "정렬 알고리즘 벤치마크",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(), newCheckCmd(), newListCmd(), newShowCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		cfg        = bench.DefaultConfig()
		mergeBuf   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "벤치마크 실행",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := bench.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = mergeFlags(cmd, loaded, cfg)
			}
			if cmd.Flags().Changed("merge-buffer") {
				cfg.Vergesort.MergeBuffer = &mergeBuf
			}
			return runBenchmark(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML 설정 파일")
	f.IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "입력 크기 목록")
	f.StringSliceVar(&cfg.Distributions, "dist", nil, "분포 이름 (비우면 전체)")
	f.StringSliceVar(&cfg.Sorts, "sort", nil, "정렬 이름 (비우면 전체)")
	f.DurationVar(&cfg.Budget, "budget", cfg.Budget, "조합당 측정 시간")
	f.IntVar(&cfg.Samples, "samples", 0, "조합당 최대 실행 횟수 (0: 제한 없음)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "입력 생성 시드")
	f.BoolVar(&cfg.Verify, "verify", false, "매 실행 결과 검증")
	f.StringVar(&cfg.Store.Backend, "store", cfg.Store.Backend, "결과 저장소 (none|bolt|badger|pebble)")
	f.StringVar(&cfg.Store.Path, "store-path", "", "저장소 경로")
	f.BoolVar(&cfg.Store.Resume, "resume", false, "저장된 조합은 다시 측정하지 않음")
	f.StringVar(&cfg.Format, "format", cfg.Format, "보고서 형식 (plain|markdown|json)")
	f.StringVarP(&cfg.Output, "out", "o", "", "보고서 파일 (비우면 표준 출력)")
	f.IntVar(&cfg.Vergesort.MinSize, "min-size", 0, "vergesort 폴백 전환 크기")
	f.IntVar(&mergeBuf, "merge-buffer", 0, "vergesort 병합 버퍼 상한 (원소 수)")

	return cmd
}

// mergeFlags 명시적으로 지정된 플래그만 파일 설정 위에 덮어쓴다.
func mergeFlags(cmd *cobra.Command, file, flags bench.Config) bench.Config {
	changed := cmd.Flags().Changed
	if changed("sizes") {
		file.Sizes = flags.Sizes
	}
	if changed("dist") {
		file.Distributions = flags.Distributions
	}
	if changed("sort") {
		file.Sorts = flags.Sorts
	}
	if changed("budget") {
		file.Budget = flags.Budget
	}
	if changed("samples") {
		file.Samples = flags.Samples
	}
	if changed("seed") {
		file.Seed = flags.Seed
	}
	if changed("verify") {
		file.Verify = flags.Verify
	}
	if changed("store") {
		file.Store.Backend = flags.Store.Backend
	}
	if changed("store-path") {
		file.Store.Path = flags.Store.Path
	}
	if changed("resume") {
		file.Store.Resume = flags.Store.Resume
	}
	if changed("format") {
		file.Format = flags.Format
	}
	if changed("out") {
		file.Output = flags.Output
	}
	if changed("min-size") {
		file.Vergesort.MinSize = flags.Vergesort.MinSize
	}
	return file
}

func runBenchmark(ctx context.Context, cfg bench.Config) error {
	l := log.At("run").Start()

	runner, err := cfg.Runner()
	if err != nil {
		return l.Error(err)
	}
	runner.Log = log

	kv, err := openStore(cfg.Store)
	if err != nil {
		return l.Error(err)
	}
	if kv != nil {
		defer kv.Close()
		runner.Store = bench.NewResultStore(kv)
	}

	l.Logf("sizes=%v distributions=%d sorts=%d budget=%s", cfg.Sizes, len(runner.Distributions), len(runner.Algorithms), cfg.Budget)

	results, err := runner.Run(ctx)
	if err != nil {
		return l.Error(err)
	}

	if err := writeReport(cfg.Output, cfg.Format, results); err != nil {
		return l.Error(err)
	}

	if kv != nil {
		l.Logf("store=%s skipped_lookups=%d", cfg.Store.Backend, kv.Skipped())
	}
	l.Successf("results=%d", len(results))
	return nil
}

// openStore 설정에 맞는 저장소를 블룸 필터로 감싸 연다. none 이면 nil.
func openStore(sc bench.StoreConfig) (*kvdb.Filtered, error) {
	if sc.Backend == "" || sc.Backend == "none" {
		return nil, nil
	}
	if sc.Path == "" {
		return nil, errors.Newf("store %s needs --store-path", sc.Backend)
	}

	kv, err := kvdb.Open(sc.Backend, sc.Path)
	if err != nil {
		return nil, err
	}

	filtered, err := kvdb.NewFiltered(kv, 10000)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return filtered, nil
}

func writeReport(path, format string, results []bench.Result) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		defer file.Close()
		w = file
	}
	return bench.WriteReport(w, format, results)
}

func newCheckCmd() *cobra.Command {
	var (
		cfg     = bench.DefaultConfig()
		workers int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "모든 조합의 정렬 결과 검증 (병렬)",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := cfg.Runner()
			if err != nil {
				return err
			}
			runner.Log = log

			checked, err := runner.Check(cmd.Context(), workers)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d combinations ok\n", checked)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&cfg.Sizes, "sizes", []int{0, 1, 79, 80, 1000, 100000}, "입력 크기 목록")
	f.StringSliceVar(&cfg.Distributions, "dist", nil, "분포 이름 (비우면 전체)")
	f.StringSliceVar(&cfg.Sorts, "sort", nil, "정렬 이름 (비우면 전체)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "입력 생성 시드")
	f.IntVar(&workers, "workers", 0, "동시 검증 수 (0: CPU 수)")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "분포와 정렬 이름 출력",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "distributions:")
			for _, d := range bench.Distributions() {
				fmt.Fprintf(out, "  %s\n", d.Name)
			}
			fmt.Fprintln(out, "sorts:")
			for _, a := range bench.Algorithms() {
				fmt.Fprintf(out, "  %s\n", a.Name)
			}
			fmt.Fprintln(out, "stores:")
			for _, b := range kvdb.Backends() {
				fmt.Fprintf(out, "  %s\n", b)
			}
		},
	}
}

func newShowCmd() *cobra.Command {
	var (
		sc     bench.StoreConfig
		format string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "저장된 결과를 보고서로 출력",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.At("show").Namespace("store=%s", sc.Backend)

			kv, err := kvdb.Open(sc.Backend, sc.Path)
			if err != nil {
				return l.Error(err)
			}
			defer kv.Close()

			results, err := bench.NewResultStore(kv).All()
			if err != nil {
				return l.Error(err)
			}
			return bench.WriteReport(cmd.OutOrStdout(), format, results)
		},
	}

	f := cmd.Flags()
	f.StringVar(&sc.Backend, "store", kvdb.BackendBolt, "결과 저장소 (bolt|badger|pebble)")
	f.StringVar(&sc.Path, "store-path", "", "저장소 경로")
	f.StringVar(&format, "format", bench.FormatMarkdown, "보고서 형식 (plain|markdown|json)")
	cmd.MarkFlagRequired("store-path")

	return cmd
}
