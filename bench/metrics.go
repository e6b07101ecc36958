package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 벤치마크 Prometheus 지표
type Metrics struct {
	duration  *prometheus.HistogramVec
	elements  *prometheus.CounterVec
	allocated *prometheus.CounterVec
}

// NewMetrics reg 에 지표를 등록. reg 가 nil 이면 등록하지 않는다.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortbench",
			Name:      "sort_duration_seconds",
			Help:      "Wall time of a single sort run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm", "storage"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortbench",
			Name:      "sorted_elements_total",
			Help:      "Number of elements sorted.",
		}, []string{"algorithm"}),
		allocated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortbench",
			Name:      "allocated_bytes_total",
			Help:      "Heap bytes allocated while sorting.",
		}, []string{"algorithm"}),
	}
	if reg != nil {
		reg.MustRegister(m.duration, m.elements, m.allocated)
	}
	return m
}

func (m *Metrics) observe(r Result) {
	m.duration.WithLabelValues(r.Algorithm, string(r.StorageType)).Observe(r.Duration.Seconds())
	m.elements.WithLabelValues(r.Algorithm).Add(float64(r.DataSize))
	m.allocated.WithLabelValues(r.Algorithm).Add(float64(r.MemoryUsage))
}
