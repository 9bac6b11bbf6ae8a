// Package kvdb 벤치마크 결과를 담는 키-값 저장소. bbolt, BadgerDB, Pebble 백엔드를 지원한다.
package kvdb

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound 키가 없음
	ErrNotFound = errors.New("key not found")

	// ErrUnknownBackend 지원하지 않는 백엔드 이름
	ErrUnknownBackend = errors.New("unknown store backend")
)

// 백엔드 이름
const (
	BackendBolt   = "bolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// Store 키-값 저장소
type Store interface {
	Put(key string, value []byte) error
	// Get 값의 복사본을 돌려준다. 없으면 ErrNotFound.
	Get(key string) ([]byte, error)
	Has(key string) (bool, error)
	// Scan prefix 로 시작하는 키를 오름차순으로 방문한다.
	// value 는 fn 안에서만 유효하다. fn 이 에러를 돌려주면 중단한다.
	Scan(prefix string, fn func(key string, value []byte) error) error
	Close() error
}

// Backends 지원하는 백엔드 이름 목록
func Backends() []string {
	return []string{BackendBolt, BackendBadger, BackendPebble}
}

// Open 이름으로 백엔드를 골라 연다. bolt 는 파일 경로, 나머지는 디렉터리 경로.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendBolt, "bbolt":
		return OpenBolt(path)
	case BackendBadger:
		return OpenBadger(path)
	case BackendPebble:
		return OpenPebble(path)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
}

// has Get 기반 Has 구현
func has(s Store, key string) (bool, error) {
	_, err := s.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	}
	return false, err
}

// prefixEnd prefix 로 시작하는 모든 키보다 큰 가장 작은 키. 없으면 nil.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
