// Package bench 는 정렬 알고리즘 벤치마크를 실행하고 결과를 보고서로 남긴다.
package bench

import (
	"fmt"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/rlaau/sortbench/dataset"
	"github.com/rlaau/sortbench/sort"
)

// ErrNotSorted 정렬 후 검사에서 순서가 틀림
var ErrNotSorted = errors.New("bench: result not sorted")

// Result 정렬 한 번의 결과
type Result struct {
	Algorithm    string          `json:"algorithm"`
	DataSize     int             `json:"data_size"`
	StorageType  dataset.Kind    `json:"storage_type"`
	Pattern      dataset.Pattern `json:"pattern"`
	TestRun      int             `json:"test_run"`
	Duration     time.Duration   `json:"duration"`
	MemoryUsage  uint64          `json:"memory_usage_bytes"`
	GoroutineNum int             `json:"goroutine_num"`
}

// Runner 저장소에서 데이터를 읽어 알고리즘별로 반복 측정
type Runner struct {
	cfg     Config
	store   dataset.Store
	metrics *Metrics
	log     *logrus.Entry
}

// NewRunner store 는 호출자가 닫는다. metrics 가 nil 이면 등록 없는 지표를 쓴다.
func NewRunner(cfg Config, store dataset.Store, metrics *Metrics, log *logrus.Entry) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Runner{cfg: cfg, store: store, metrics: metrics, log: log}, nil
}

// DatasetName 크기별 데이터셋 이름
func DatasetName(p dataset.Pattern, size int) string {
	return fmt.Sprintf("%s-%d", p, size)
}

// Run 크기 × 알고리즘 × 반복 횟수만큼 측정
func (r *Runner) Run() ([]Result, error) {
	results := make([]Result, 0, len(r.cfg.Sizes)*len(r.cfg.Algorithms)*r.cfg.Runs)

	for _, size := range r.cfg.Sizes {
		name := DatasetName(r.cfg.Pattern, size)
		log := r.log.WithFields(logrus.Fields{"dataset": name, "storage": r.cfg.Storage})

		data, err := dataset.Generate(r.cfg.Pattern, size, r.cfg.Seed)
		if err != nil {
			return nil, err
		}
		if err := r.store.Save(name, data); err != nil {
			return nil, errors.Wrapf(err, "save dataset %s", name)
		}
		log.Infof("testing %d elements", size)

		for _, algo := range r.cfg.Algorithms {
			for run := 1; run <= r.cfg.Runs; run++ {
				result, err := r.runOnce(algo, name, run)
				if err != nil {
					return nil, err
				}
				log.WithFields(logrus.Fields{
					"algorithm": algo,
					"run":       run,
					"duration":  result.Duration,
					"memory":    humanize.Bytes(result.MemoryUsage),
				}).Debug("run finished")
				results = append(results, result)
			}
		}
	}
	return results, nil
}

// runOnce 매번 저장소에서 다시 읽어 이전 실행의 정렬 결과를 쓰지 않음
func (r *Runner) runOnce(algo, name string, run int) (Result, error) {
	sortFn, err := Lookup(algo)
	if err != nil {
		return Result{}, err
	}

	data, err := r.store.Load(name)
	if err != nil {
		return Result{}, errors.Wrapf(err, "load dataset %s", name)
	}

	result := Result{
		Algorithm:    algo,
		DataSize:     len(data),
		StorageType:  r.cfg.Storage,
		Pattern:      r.cfg.Pattern,
		TestRun:      run,
		GoroutineNum: runtime.NumGoroutine(),
	}

	stats := startStats()
	sortFn(data)
	result.Duration, result.MemoryUsage = stats.endStats()

	if r.cfg.Verify && !sort.IsSorted(data) {
		return Result{}, errors.Wrapf(ErrNotSorted, "%s on %s run %d", algo, name, run)
	}

	r.metrics.observe(result)
	return result, nil
}
