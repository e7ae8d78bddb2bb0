// Package metrics - các Prometheus metric của dịch vụ dữ liệu nước.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics gom các counter / histogram Prometheus của seeder và tầng HTTP.
type Metrics struct {
	SeedRuns      *prometheus.CounterVec // labels: outcome={success,error}
	SeedDocuments *prometheus.CounterVec // labels: collection
	SeedDuration  prometheus.Histogram

	HTTPRequests *prometheus.CounterVec // labels: endpoint, status
}

// NewMetrics tạo và đăng ký toàn bộ metric với registry mặc định của Prometheus.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.SeedRuns,
		m.SeedDocuments,
		m.SeedDuration,
		m.HTTPRequests,
	)
	return m
}

// NewMetricsForTesting tạo Metrics không đăng ký registry, tránh panic
// "already registered" khi gọi từ nhiều test.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SeedRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cwc_water",
			Name:      "seed_runs_total",
			Help:      "Số lần chạy seeder theo kết quả.",
		}, []string{"outcome"}),
		SeedDocuments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cwc_water",
			Name:      "seed_documents_total",
			Help:      "Số document đã insert theo collection.",
		}, []string{"collection"}),
		SeedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cwc_water",
			Name:      "seed_duration_seconds",
			Help:      "Thời gian một lần chạy seeder.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cwc_water",
			Name:      "http_requests_total",
			Help:      "Số request HTTP theo endpoint và status code.",
		}, []string{"endpoint", "status"}),
	}
}
