package vergesort

import "math/bits"

// 기본 임계값. 경험적으로 정한 값이며 아키텍처와
// 폴백 정렬에 따라 최적값이 달라지므로 Option 으로 덮어쓸 수 있다.
const (
	// DefaultMinSize 이보다 짧은 입력은 런 탐지 없이 폴백 정렬로 바로 넘긴다.
	DefaultMinSize = 80

	// DefaultMergeBuffer 버퍼 병합에 쓰는 임시 버퍼의 최대 원소 수.
	DefaultMergeBuffer = 1 << 20
)

// Config 정렬 동작을 조정하는 설정
type Config struct {
	// MinSize 미만 길이는 전체를 폴백 정렬한다. 2 미만이면 2로 본다.
	MinSize int

	// UnstableLimit 길이 n 에 대해 "긴 런" 판정 기준을 돌려준다.
	// 이 값 이하 길이의 런은 모아 두었다가 한 번에 폴백 정렬한다.
	// nil 이면 DefaultUnstableLimit.
	UnstableLimit func(n int) int

	// MergeBuffer 병합 시 복사해 둘 수 있는 최대 원소 수.
	// 0 이면 버퍼 없이 회전 기반 제자리 병합만 쓴다.
	MergeBuffer int
}

// Option Config 를 수정하는 함수형 옵션
type Option func(*Config)

// DefaultConfig 기본 설정
func DefaultConfig() Config {
	return Config{
		MinSize:       DefaultMinSize,
		UnstableLimit: DefaultUnstableLimit,
		MergeBuffer:   DefaultMergeBuffer,
	}
}

// DefaultUnstableLimit n / floor(log2(n))
func DefaultUnstableLimit(n int) int {
	if n < 2 {
		return 1
	}
	return n / log2(n)
}

// WithMinSize 폴백 전환 임계값 지정
func WithMinSize(n int) Option {
	return func(c *Config) { c.MinSize = n }
}

// WithUnstableLimit 긴 런 판정 함수 지정
func WithUnstableLimit(f func(n int) int) Option {
	return func(c *Config) { c.UnstableLimit = f }
}

// WithMergeBuffer 병합 버퍼 상한 지정
func WithMergeBuffer(n int) Option {
	return func(c *Config) { c.MergeBuffer = n }
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.normalize()
}

func (c Config) isZero() bool {
	return c.MinSize == 0 && c.UnstableLimit == nil && c.MergeBuffer == 0
}

// normalize 범위를 벗어난 값을 보정한다.
func (c Config) normalize() Config {
	if c.MinSize < 2 {
		c.MinSize = 2
	}
	if c.UnstableLimit == nil {
		c.UnstableLimit = DefaultUnstableLimit
	}
	if c.MergeBuffer < 0 {
		c.MergeBuffer = 0
	}
	return c
}

// limit 길이 n 에 대한 긴 런 기준 (최소 1)
func (c Config) limit(n int) int {
	return max(c.UnstableLimit(n), 1)
}

func log2(n int) int {
	return bits.Len(uint(n)) - 1
}
