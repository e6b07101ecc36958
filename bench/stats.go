package bench

import (
	"runtime"
	"time"
)

// systemStats 한 번의 정렬 전후 측정값
type systemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// startStats 성능 측정 시작
func startStats() *systemStats {
	runtime.GC() // 가비지 컬렉션으로 정확한 측정

	s := &systemStats{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// endStats 경과 시간과 그 사이 할당된 바이트 수
func (s *systemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)
	runtime.ReadMemStats(&s.endMem)
	return duration, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}
