package kvdb

import (
	"bytes"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("results")

type boltStore struct {
	db *bbolt.DB
}

// OpenBolt bbolt 파일 저장소
func OpenBolt(path string) (Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "create bucket %s", bucketName)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	return errors.Wrapf(err, "bolt put %s", key)
}

func (s *boltStore) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// 트랜잭션이 끝나면 v 는 무효
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "bolt get %s", key)
	}
	return out, nil
}

func (s *boltStore) Has(key string) (bool, error) {
	return has(s, key)
}

func (s *boltStore) Scan(prefix string, fn func(key string, value []byte) error) error {
	p := []byte(prefix)
	return s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()
		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			if err := fn(string(k), v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
