package dataset

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

// BoltStore 데이터셋마다 버킷 하나. 키는 빅엔디언 인덱스라 커서 순서가 곧 원래 순서다.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore path 는 DB 파일 경로
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create dir for %s", path)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := []byte(name)
		if tx.Bucket(bucket) != nil {
			if err := tx.DeleteBucket(bucket); err != nil {
				return errors.Wrapf(err, "drop bucket %s", name)
			}
		}
		b, err := tx.CreateBucket(bucket)
		if err != nil {
			return errors.Wrapf(err, "create bucket %s", name)
		}
		// 키가 항상 증가하므로 채움 비율을 높여 페이지 분할을 줄임
		b.FillPercent = 1.0
		for i, v := range data {
			if err := b.Put(encodeUint(uint64(i)), encodeValue(v)); err != nil {
				return errors.Wrapf(err, "put %s[%d]", name, i)
			}
		}
		return nil
	})
}

func (s *BoltStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	var data []int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return errors.Wrapf(ErrNotFound, "%s", name)
		}
		data = []int{}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if len(k) != keySize || binary.BigEndian.Uint64(k) != uint64(len(data)) {
				return errors.Wrapf(ErrCorrupt, "%s: unexpected key %x", name, k)
			}
			val, err := decodeValue(v)
			if err != nil {
				return err
			}
			data = append(data, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BoltStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := []byte(name)
		if tx.Bucket(bucket) == nil {
			return errors.Wrapf(ErrNotFound, "%s", name)
		}
		return tx.DeleteBucket(bucket)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
