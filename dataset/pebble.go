package dataset

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// PebbleStore pebble LSM 위의 저장소. 키 레이아웃은 badger 와 같다.
type PebbleStore struct {
	db *pebble.DB
}

// OpenPebbleStore dir 은 pebble 데이터 디렉터리
func OpenPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{Logger: newKVLogger("pebble")})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &PebbleStore{db: db}, nil
}

// Save 이전 요소 삭제와 새 요소 기록을 하나의 배치로 커밋
func (s *PebbleStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}

	b := s.db.NewBatch()
	defer b.Close()

	if err := b.DeleteRange(elemPrefix(name), elemUpperBound(name), nil); err != nil {
		return errors.Wrapf(err, "clear %s", name)
	}
	for i, v := range data {
		if err := b.Set(elemKey(name, i), encodeValue(v), nil); err != nil {
			return errors.Wrapf(err, "set %s[%d]", name, i)
		}
	}
	if err := b.Set(metaKey(name), encodeUint(uint64(len(data))), nil); err != nil {
		return errors.Wrapf(err, "set %s count", name)
	}
	return errors.Wrapf(b.Commit(pebble.Sync), "commit %s", name)
}

func (s *PebbleStore) count(name string) (int, error) {
	raw, closer, err := s.db.Get(metaKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, errors.Wrapf(ErrNotFound, "%s", name)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "get %s count", name)
	}
	defer closer.Close()
	return decodeCount(raw)
}

func (s *PebbleStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	n, err := s.count(name)
	if err != nil {
		return nil, err
	}

	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: elemPrefix(name),
		UpperBound: elemUpperBound(name),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "iterate %s", name)
	}

	data := make([]int, 0, n)
	for it.First(); it.Valid(); it.Next() {
		v, err := decodeValue(it.Value())
		if err != nil {
			it.Close()
			return nil, err
		}
		data = append(data, v)
	}
	if err := errors.CombineErrors(it.Error(), it.Close()); err != nil {
		return nil, errors.Wrapf(err, "iterate %s", name)
	}
	if len(data) != n {
		return nil, errors.Wrapf(ErrCorrupt, "%s: count %d, found %d", name, n, len(data))
	}
	return data, nil
}

func (s *PebbleStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if _, err := s.count(name); err != nil {
		return err
	}

	b := s.db.NewBatch()
	defer b.Close()
	if err := b.Delete(metaKey(name), nil); err != nil {
		return errors.Wrapf(err, "delete %s", name)
	}
	if err := b.DeleteRange(elemPrefix(name), elemUpperBound(name), nil); err != nil {
		return errors.Wrapf(err, "delete %s", name)
	}
	return errors.Wrapf(b.Commit(pebble.Sync), "delete %s", name)
}

func (s *PebbleStore) Close() error {
	return s.db.Close()
}
