package bench

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"

	"vergesort"
)

// Config 벤치마크 설정 파일 (YAML)
type Config struct {
	Sizes         []int         `yaml:"sizes"`
	Distributions []string      `yaml:"distributions"`
	Sorts         []string      `yaml:"sorts"`
	Budget        time.Duration `yaml:"budget"`
	Samples       int           `yaml:"samples"`
	Seed          int64         `yaml:"seed"`
	Verify        bool          `yaml:"verify"`
	Format        string        `yaml:"format"`
	Output        string        `yaml:"output"`

	Store     StoreConfig     `yaml:"store"`
	Vergesort VergesortConfig `yaml:"vergesort"`
}

// StoreConfig 결과 저장소 설정
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Resume  bool   `yaml:"resume"`
}

// VergesortConfig vergesort 임계값 덮어쓰기. 0 이면 기본값.
type VergesortConfig struct {
	MinSize     int  `yaml:"min_size"`
	MergeBuffer *int `yaml:"merge_buffer"`
}

// DefaultConfig 기본값: 백만 개, 조합당 10초
func DefaultConfig() Config {
	return Config{
		Sizes:  []int{1000000},
		Budget: 10 * time.Second,
		Seed:   42,
		Format: FormatPlain,
		Store:  StoreConfig{Backend: "none"},
	}
}

// LoadConfig 기본값 위에 파일 내용을 덮어쓴다.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Options vergesort 옵션으로 변환
func (c Config) Options() []vergesort.Option {
	var opts []vergesort.Option
	if c.Vergesort.MinSize > 0 {
		opts = append(opts, vergesort.WithMinSize(c.Vergesort.MinSize))
	}
	if c.Vergesort.MergeBuffer != nil {
		opts = append(opts, vergesort.WithMergeBuffer(*c.Vergesort.MergeBuffer))
	}
	return opts
}

// Runner 설정으로 실행기를 만든다. 비어 있는 목록은 전체를 뜻한다.
func (c Config) Runner() (*Runner, error) {
	r := &Runner{
		Sizes:      c.Sizes,
		Budget:     c.Budget,
		MaxSamples: c.Samples,
		Seed:       c.Seed,
		Verify:     c.Verify,
		Resume:     c.Store.Resume,
	}

	if len(r.Sizes) == 0 {
		return nil, errors.New("no sizes configured")
	}
	for _, size := range r.Sizes {
		if size < 0 {
			return nil, errors.Newf("negative size %d", size)
		}
	}

	if len(c.Distributions) == 0 {
		r.Distributions = Distributions()
	}
	for _, name := range c.Distributions {
		d, err := LookupDistribution(name)
		if err != nil {
			return nil, err
		}
		r.Distributions = append(r.Distributions, d)
	}

	opts := c.Options()
	if len(c.Sorts) == 0 {
		r.Algorithms = Algorithms(opts...)
	}
	for _, name := range c.Sorts {
		a, err := LookupAlgorithm(name, opts...)
		if err != nil {
			return nil, err
		}
		r.Algorithms = append(r.Algorithms, a)
	}

	return r, nil
}
