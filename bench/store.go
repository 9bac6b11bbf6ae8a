package bench

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"vergesort/kvdb"
)

// ResultStore Result 를 JSON 으로 kvdb.Store 에 저장한다.
type ResultStore struct {
	kv kvdb.Store
}

// NewResultStore kv 를 감싼다. 닫는 것은 호출자 책임.
func NewResultStore(kv kvdb.Store) *ResultStore {
	return &ResultStore{kv: kv}
}

// Save 결과 저장 (같은 키는 덮어쓴다)
func (s *ResultStore) Save(r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrapf(err, "encode %s", r.Key())
	}
	return s.kv.Put(r.Key(), data)
}

// Load 키로 결과를 읽는다. 없으면 ok == false.
func (s *ResultStore) Load(key string) (Result, bool, error) {
	var r Result

	ok, err := s.kv.Has(key)
	if err != nil || !ok {
		return r, false, err
	}

	data, err := s.kv.Get(key)
	if err != nil {
		return r, false, err
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, false, errors.Wrapf(err, "decode %s", key)
	}
	return r, true, nil
}

// All 저장된 결과 전체 (크기 → 분포 → 정렬 이름 순)
func (s *ResultStore) All() ([]Result, error) {
	var results []Result
	err := s.kv.Scan("", func(key string, value []byte) error {
		var r Result
		if err := json.Unmarshal(value, &r); err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		results = append(results, r)
		return nil
	})
	return results, err
}
