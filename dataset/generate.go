package dataset

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// Pattern 생성할 데이터 모양
type Pattern string

const (
	Random   Pattern = "random"
	Sorted   Pattern = "sorted"
	Reversed Pattern = "reversed"
	Equal    Pattern = "equal"
	Few      Pattern = "few"
)

// DefaultSeed 재현 가능한 벤치마크를 위한 고정 시드
const DefaultSeed int64 = 42

const (
	randomMax = 1000000
	fewMax    = 8
	equalVal  = 7
)

// Patterns 지원하는 패턴 목록
func Patterns() []Pattern {
	return []Pattern{Random, Sorted, Reversed, Equal, Few}
}

// ParsePattern 문자열을 Pattern 으로 변환
func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.Newf("dataset: unknown pattern %q", s)
}

// Generate 패턴에 맞는 size 개의 정수 생성. 같은 seed 면 같은 결과.
func Generate(p Pattern, size int, seed int64) ([]int, error) {
	if size < 0 {
		return nil, errors.Newf("dataset: negative size %d", size)
	}

	rng := rand.New(rand.NewSource(seed))
	data := make([]int, size)

	switch p {
	case Random:
		for i := range size {
			data[i] = rng.Intn(randomMax)
		}
	case Sorted:
		for i := range size {
			data[i] = i
		}
	case Reversed:
		for i := range size {
			data[i] = size - 1 - i
		}
	case Equal:
		for i := range size {
			data[i] = equalVal
		}
	case Few:
		for i := range size {
			data[i] = rng.Intn(fewMax)
		}
	default:
		return nil, errors.Newf("dataset: unknown pattern %q", p)
	}
	return data, nil
}
