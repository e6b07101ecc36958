package bench

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlaau/sortbench/dataset"
)

func sampleResults() []Result {
	mk := func(algo string, size, run int, d time.Duration, mem uint64) Result {
		return Result{
			Algorithm:   algo,
			DataSize:    size,
			StorageType: dataset.Memory,
			Pattern:     dataset.Random,
			TestRun:     run,
			Duration:    d,
			MemoryUsage: mem,
		}
	}
	return []Result{
		mk("quicksort", 1000, 1, 30*time.Microsecond, 0),
		mk("quicksort", 1000, 2, 10*time.Microsecond, 0),
		mk("quicksort", 1000, 3, 20*time.Microsecond, 0),
		mk("mergesort", 1000, 1, 40*time.Microsecond, 3000),
		mk("mergesort", 1000, 2, 60*time.Microsecond, 1000),
		mk("quicksort", 10000, 1, 300*time.Microsecond, 0),
	}
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleResults()[:5])
	require.Len(t, summaries, 2)

	q := summaries[0]
	assert.Equal(t, "quicksort", q.Algorithm)
	assert.Equal(t, 3, q.Runs)
	assert.Equal(t, 20*time.Microsecond, q.MeanDuration)
	assert.Equal(t, 20*time.Microsecond, q.MedianDuration)

	m := summaries[1]
	assert.Equal(t, "mergesort", m.Algorithm)
	assert.Equal(t, 50*time.Microsecond, m.MedianDuration)
	assert.Equal(t, uint64(2000), m.MeanMemory)
}

func TestWriteMarkdown(t *testing.T) {
	now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResults()))
	out := buf.String()

	assert.Contains(t, out, "실행 시간: 2025-01-02 03:04:05")
	assert.Contains(t, out, "## memory - 1000개 데이터")
	assert.Contains(t, out, "## memory - 10000개 데이터")
	assert.Contains(t, out, "| mergesort | random | 1 | 40µs | 3.0 kB | 0 |")
	assert.Contains(t, out, "| quicksort | 20µs | 20µs | 0 B |")

	// 결과 행 6개 + 요약 행 3개
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| quicksort") || strings.HasPrefix(line, "| mergesort") {
			rows++
		}
	}
	assert.Equal(t, 9, rows)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	in := sampleResults()
	require.NoError(t, WriteJSON(&buf, in))

	var out []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
	assert.Contains(t, buf.String(), `"memory_usage_bytes": 3000`)
}
