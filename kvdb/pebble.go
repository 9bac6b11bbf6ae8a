package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

// OpenPebble PebbleDB 저장소
func OpenPebble(dir string) (Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(key string, value []byte) error {
	return errors.Wrapf(s.db.Set([]byte(key), value, pebble.Sync), "pebble put %s", key)
}

func (s *pebbleStore) Get(key string) ([]byte, error) {
	v, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "pebble get %s", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "pebble get %s", key)
	}
	defer closer.Close()
	return append([]byte(nil), v...), nil
}

func (s *pebbleStore) Has(key string) (bool, error) {
	return has(s, key)
}

func (s *pebbleStore) Scan(prefix string, fn func(key string, value []byte) error) error {
	p := []byte(prefix)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: p,
		UpperBound: prefixEnd(p),
	})
	if err != nil {
		return errors.Wrap(err, "pebble iterator")
	}

	for iter.First(); iter.Valid(); iter.Next() {
		if err := fn(string(iter.Key()), iter.Value()); err != nil {
			iter.Close()
			return err
		}
	}
	return errors.CombineErrors(iter.Error(), iter.Close())
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
