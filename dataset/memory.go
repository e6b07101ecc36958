package dataset

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// MemoryStore 프로세스 메모리에만 두는 저장소
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]int)}
}

func (s *MemoryStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// 호출자가 원본을 정렬해도 저장본은 그대로 유지
	s.sets[name] = slices.Clone(data)
	if s.sets[name] == nil {
		s.sets[name] = []int{}
	}
	return nil
}

func (s *MemoryStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.sets[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%s", name)
	}
	return slices.Clone(data), nil
}

func (s *MemoryStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sets[name]; !ok {
		return errors.Wrapf(ErrNotFound, "%s", name)
	}
	delete(s.sets, name)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
