package bench

import (
	"github.com/cockroachdb/errors"

	"github.com/rlaau/sortbench/dataset"
)

// Config 벤치마크 설정
type Config struct {
	Sizes       []int
	Algorithms  []string
	Runs        int
	Storage     dataset.Kind
	StoragePath string
	Pattern     dataset.Pattern
	Seed        int64
	// Verify 정렬 결과 검사 여부
	Verify bool
}

// DefaultConfig 기본 설정
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{1000, 10000},
		Algorithms:  Algorithms(),
		Runs:        3,
		Storage:     dataset.Memory,
		StoragePath: "./sortbench-data",
		Pattern:     dataset.Random,
		Seed:        dataset.DefaultSeed,
		Verify:      true,
	}
}

// Validate 실행 전에 잘못된 설정을 걸러냄
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("bench: no sizes")
	}
	for _, size := range c.Sizes {
		if size < 0 {
			return errors.Newf("bench: negative size %d", size)
		}
	}
	if len(c.Algorithms) == 0 {
		return errors.New("bench: no algorithms")
	}
	for _, name := range c.Algorithms {
		if _, err := Lookup(name); err != nil {
			return err
		}
	}
	if c.Runs < 1 {
		return errors.Newf("bench: runs must be positive, got %d", c.Runs)
	}
	if _, err := dataset.ParsePattern(string(c.Pattern)); err != nil {
		return err
	}
	return nil
}
