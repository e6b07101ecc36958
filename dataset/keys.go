package dataset

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// kv 저장소(badger, pebble) 키 레이아웃:
//
//	d/<name>\x00<8바이트 빅엔디언 인덱스>  -> 8바이트 빅엔디언 값
//	m/<name>                              -> 8바이트 빅엔디언 개수
//
// 이름에 NUL 이 없으므로 한 이름의 요소 키는 다른 이름과 겹치지 않고 인덱스 순으로 정렬된다.
const (
	dataPrefix = "d/"
	metaPrefix = "m/"
	keySize    = 8
)

// elemPrefix 데이터셋 요소 키의 공통 접두사
func elemPrefix(name string) []byte {
	p := make([]byte, 0, len(dataPrefix)+len(name)+1)
	p = append(p, dataPrefix...)
	p = append(p, name...)
	return append(p, 0)
}

// elemUpperBound 접두사 바로 다음 키 (범위 끝, 미포함)
func elemUpperBound(name string) []byte {
	p := elemPrefix(name)
	p[len(p)-1] = 1
	return p
}

func elemKey(name string, i int) []byte {
	p := elemPrefix(name)
	return binary.BigEndian.AppendUint64(p, uint64(i))
}

func metaKey(name string) []byte {
	return append([]byte(metaPrefix), name...)
}

func encodeUint(v uint64) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, keySize), v)
}

func encodeValue(v int) []byte {
	return encodeUint(uint64(int64(v)))
}

func decodeValue(b []byte) (int, error) {
	if len(b) != keySize {
		return 0, errors.Wrapf(ErrCorrupt, "value of %d bytes", len(b))
	}
	return int(int64(binary.BigEndian.Uint64(b))), nil
}

func decodeCount(b []byte) (int, error) {
	if len(b) != keySize {
		return 0, errors.Wrapf(ErrCorrupt, "count of %d bytes", len(b))
	}
	return int(binary.BigEndian.Uint64(b)), nil
}
