// Package bloomfilter 저장소 앞단의 멤버십 확인용 블룸 필터.
package bloomfilter

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// BloomFilter 기본 블룸 필터. 거짓 음성은 없다.
// 동시 사용은 호출자가 직렬화해야 한다.
type BloomFilter struct {
	bitArray []uint64
	size     uint64
	numHash  uint
	numItems uint64
	hashSeed uint64
}

// New 예상 아이템 수와 목표 오탐률로 필터 생성. 시드는 무작위.
func New(expectedItems uint64, falsePositiveRate float64) *BloomFilter {
	var seed [8]byte
	rand.Read(seed[:])
	return NewWithSeed(expectedItems, falsePositiveRate, binary.LittleEndian.Uint64(seed[:]))
}

// NewWithSeed 고정 시드로 필터 생성 (재현 가능한 테스트용)
func NewWithSeed(expectedItems uint64, falsePositiveRate float64, seed uint64) *BloomFilter {
	expectedItems = max(expectedItems, 1)
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = 0.01
	}

	size := uint64(-float64(expectedItems) * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2))
	size = max(size, 64)
	numHash := min(max(uint(float64(size)/float64(expectedItems)*math.Ln2), 1), 15)

	return &BloomFilter{
		bitArray: make([]uint64, (size+63)/64),
		size:     size,
		numHash:  numHash,
		hashSeed: seed,
	}
}

// hashes 이중 해싱의 두 기본값
func (bf *BloomFilter) hashes(data []byte) (uint64, uint64) {
	hash1 := mix(xxhash.Sum64(data) ^ bf.hashSeed)
	hash2 := hash1>>17 ^ hash1<<47 ^ 0x9e3779b97f4a7c15
	// 홀수로 만들어 모든 비트 위치를 돌 수 있게 한다
	return hash1, hash2 | 1
}

// mix splitmix64 마무리 단계
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Add 아이템 추가
func (bf *BloomFilter) Add(data []byte) {
	h1, h2 := bf.hashes(data)
	for i := uint64(0); i < uint64(bf.numHash); i++ {
		pos := (h1 + i*h2) % bf.size
		bf.bitArray[pos/64] |= 1 << (pos % 64)
	}
	bf.numItems++
}

// Contains 아이템이 있을 수 있으면 true. false 면 확실히 없다.
func (bf *BloomFilter) Contains(data []byte) bool {
	h1, h2 := bf.hashes(data)
	for i := uint64(0); i < uint64(bf.numHash); i++ {
		pos := (h1 + i*h2) % bf.size
		if bf.bitArray[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// Len 추가된 아이템 수 (중복 포함)
func (bf *BloomFilter) Len() uint64 { return bf.numItems }

// Stats 설정된 비트 수, 채움 비율, 추정 오탐률
func (bf *BloomFilter) Stats() (uint64, float64, float64) {
	setBits := uint64(0)
	for _, word := range bf.bitArray {
		setBits += uint64(bits.OnesCount64(word))
	}

	fillRatio := float64(setBits) / float64(bf.size)
	estimatedFPR := math.Pow(fillRatio, float64(bf.numHash))

	return setBits, fillRatio, estimatedFPR
}
