package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/rlaau/sortbench/dataset"
	"github.com/rlaau/sortbench/sort"
)

// now 보고서 생성 시각 (테스트에서 교체)
var now = time.Now

type group struct {
	storage dataset.Kind
	size    int
}

// groups 결과에 나타난 (저장소, 크기) 조합을 처음 나온 순서대로
func groups(results []Result) []group {
	return lo.Uniq(lo.Map(results, func(r Result, _ int) group {
		return group{storage: r.StorageType, size: r.DataSize}
	}))
}

func algorithmsOf(results []Result) []string {
	return lo.Uniq(lo.Map(results, func(r Result, _ int) string { return r.Algorithm }))
}

// Summary 한 그룹에서 알고리즘 하나의 집계
type Summary struct {
	Algorithm      string
	Runs           int
	MeanDuration   time.Duration
	MedianDuration time.Duration
	MeanMemory     uint64
}

// Summarize 같은 알고리즘의 실행 결과를 묶어 평균/중앙값 계산
func Summarize(results []Result) []Summary {
	summaries := make([]Summary, 0)
	for _, algo := range algorithmsOf(results) {
		runs := lo.Filter(results, func(r Result, _ int) bool { return r.Algorithm == algo })

		durations := lo.Map(runs, func(r Result, _ int) int { return int(r.Duration) })
		sort.MergeSort(durations)

		var median time.Duration
		if n := len(durations); n%2 == 1 {
			median = time.Duration(durations[n/2])
		} else {
			median = time.Duration((durations[n/2-1] + durations[n/2]) / 2)
		}

		total := lo.Sum(durations)
		memory := lo.SumBy(runs, func(r Result) uint64 { return r.MemoryUsage })

		summaries = append(summaries, Summary{
			Algorithm:      algo,
			Runs:           len(runs),
			MeanDuration:   time.Duration(total / len(runs)),
			MedianDuration: median,
			MeanMemory:     memory / uint64(len(runs)),
		})
	}
	return summaries
}

// WriteMarkdown 그룹별 결과표와 요약 통계
func WriteMarkdown(w io.Writer, results []Result) error {
	bw := bufio.NewWriterSize(w, 32*1024)

	fmt.Fprintf(bw, "# 정렬 알고리즘 벤치마크 결과\n\n")
	fmt.Fprintf(bw, "실행 시간: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Fprintf(bw, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	for _, g := range groups(results) {
		inGroup := filterGroup(results, g)

		fmt.Fprintf(bw, "## %s - %d개 데이터\n\n", g.storage, g.size)
		fmt.Fprintf(bw, "| 알고리즘 | 패턴 | 테스트 | 실행시간 | 메모리사용량 | 고루틴수 |\n")
		fmt.Fprintf(bw, "|----------|------|--------|----------|--------------|----------|\n")
		for _, r := range inGroup {
			fmt.Fprintf(bw, "| %s | %s | %d | %v | %s | %d |\n",
				r.Algorithm, r.Pattern, r.TestRun, r.Duration, humanize.Bytes(r.MemoryUsage), r.GoroutineNum)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "## 요약 통계\n\n")
	for _, g := range groups(results) {
		fmt.Fprintf(bw, "### %s - %d개 데이터 평균\n\n", g.storage, g.size)
		fmt.Fprintf(bw, "| 알고리즘 | 평균 실행시간 | 중앙 실행시간 | 평균 메모리사용량 |\n")
		fmt.Fprintf(bw, "|----------|---------------|---------------|-------------------|\n")
		for _, s := range Summarize(filterGroup(results, g)) {
			fmt.Fprintf(bw, "| %s | %v | %v | %s |\n",
				s.Algorithm, s.MeanDuration, s.MedianDuration, humanize.Bytes(s.MeanMemory))
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func filterGroup(results []Result, g group) []Result {
	return lo.Filter(results, func(r Result, _ int) bool {
		return r.StorageType == g.storage && r.DataSize == g.size
	})
}

// WriteJSON 결과 배열을 들여쓰기 된 JSON 으로
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
