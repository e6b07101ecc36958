// Package dataset 는 벤치마크용 정수 데이터셋을 만들고 저장한다.
//
// Store 구현은 memory, file, bbolt, badger, pebble 다섯 가지이며 Open 으로 연다.
package dataset

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound 해당 이름의 데이터셋 없음
	ErrNotFound = errors.New("dataset: not found")
	// ErrInvalidName 빈 이름이거나 경로 구분자/NUL 포함
	ErrInvalidName = errors.New("dataset: invalid name")
	// ErrCorrupt 저장된 개수와 실제 요소 수가 다름
	ErrCorrupt = errors.New("dataset: corrupt")
)

// Kind 저장소 종류
type Kind string

const (
	Memory Kind = "memory"
	File   Kind = "file"
	Bolt   Kind = "bbolt"
	Badger Kind = "badger"
	Pebble Kind = "pebble"
)

// Kinds 지원하는 저장소 목록
func Kinds() []Kind {
	return []Kind{Memory, File, Bolt, Badger, Pebble}
}

// Store 이름 붙은 정수 데이터셋 저장소
type Store interface {
	// Save 같은 이름의 기존 데이터셋을 대체한다.
	Save(name string, data []int) error
	// Load 없으면 ErrNotFound.
	Load(name string) ([]int, error)
	// Delete 없으면 ErrNotFound.
	Delete(name string) error
	Close() error
}

// Open kind 에 맞는 저장소를 path 에 연다. memory 는 path 를 무시한다.
func Open(kind Kind, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch kind {
	case Memory:
		return NewMemoryStore(), nil
	case File:
		s, err = OpenFileStore(path)
	case Bolt:
		s, err = OpenBoltStore(path)
	case Badger:
		s, err = OpenBadgerStore(path)
	case Pebble:
		s, err = OpenPebbleStore(path)
	default:
		return nil, errors.Newf("dataset: unknown storage kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\\x00") {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}
