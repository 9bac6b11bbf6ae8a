package kvdb

import (
	"github.com/cockroachdb/errors"

	"vergesort/bloomfilter"
)

// Filtered 블룸 필터를 앞에 둔 Store. 필터가 없다고 하면 백엔드를 건드리지 않는다.
type Filtered struct {
	Store
	filter  *bloomfilter.BloomFilter
	skipped uint64
}

// NewFiltered 기존 키를 모두 훑어 필터를 채운 뒤 감싼다.
func NewFiltered(s Store, expectedItems uint64) (*Filtered, error) {
	f := &Filtered{
		Store:  s,
		filter: bloomfilter.New(expectedItems, 0.001),
	}

	err := s.Scan("", func(key string, _ []byte) error {
		f.filter.Add([]byte(key))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "warm bloom filter")
	}
	return f, nil
}

// Put 저장 후 필터에 키를 등록한다.
func (f *Filtered) Put(key string, value []byte) error {
	if err := f.Store.Put(key, value); err != nil {
		return err
	}
	f.filter.Add([]byte(key))
	return nil
}

// Get 필터가 없다고 하면 바로 ErrNotFound
func (f *Filtered) Get(key string) ([]byte, error) {
	if !f.filter.Contains([]byte(key)) {
		f.skipped++
		return nil, errors.Wrapf(ErrNotFound, "filtered get %s", key)
	}
	return f.Store.Get(key)
}

// Has 필터로 먼저 거른다.
func (f *Filtered) Has(key string) (bool, error) {
	if !f.filter.Contains([]byte(key)) {
		f.skipped++
		return false, nil
	}
	return f.Store.Has(key)
}

// Skipped 필터 덕분에 백엔드 조회를 건너뛴 횟수
func (f *Filtered) Skipped() uint64 { return f.skipped }

// Filter 내부 블룸 필터 (통계용)
func (f *Filtered) Filter() *bloomfilter.BloomFilter { return f.filter }
