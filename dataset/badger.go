package dataset

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

// BadgerStore badger LSM 위의 저장소. 키 레이아웃은 keys.go 참고.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore dir 은 badger 데이터 디렉터리
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(newKVLogger("badger"))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	return &BadgerStore{db: db}, nil
}

// Save 기존 요소를 지운 뒤 WriteBatch 로 기록. 개수(meta)는 마지막에 쓴다.
func (s *BadgerStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.drop(name); err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for i, v := range data {
		if err := wb.Set(elemKey(name, i), encodeValue(v)); err != nil {
			return errors.Wrapf(err, "set %s[%d]", name, i)
		}
	}
	if err := wb.Set(metaKey(name), encodeUint(uint64(len(data)))); err != nil {
		return errors.Wrapf(err, "set %s count", name)
	}
	return errors.Wrapf(wb.Flush(), "flush %s", name)
}

// drop meta 를 먼저 지워 도중에 실패해도 반쯤 지워진 데이터셋이 보이지 않게 함
func (s *BadgerStore) drop(name string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(metaKey(name))
	})
	if err != nil {
		return errors.Wrapf(err, "delete %s count", name)
	}
	return errors.Wrapf(s.db.DropPrefix(elemPrefix(name)), "drop %s", name)
}

func (s *BadgerStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var data []int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "%s", name)
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		n, err := decodeCount(raw)
		if err != nil {
			return err
		}

		prefix := elemPrefix(name)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		data = make([]int, 0, n)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				v, err := decodeValue(val)
				if err != nil {
					return err
				}
				data = append(data, v)
				return nil
			})
			if err != nil {
				return err
			}
		}
		if len(data) != n {
			return errors.Wrapf(ErrCorrupt, "%s: count %d, found %d", name, n, len(data))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BadgerStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(metaKey(name))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.Wrapf(ErrNotFound, "%s", name)
	}
	if err != nil {
		return err
	}
	return s.drop(name)
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
