package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the API server.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec // labels: path, code
	RequestDur    *prometheus.HistogramVec

	// Pattern scan metrics
	ScanDur         prometheus.Histogram
	DetectionsTotal prometheus.Counter
	DetectorFaults  prometheus.Counter

	// Indicator metrics
	IndicatorDur prometheus.Histogram
}

// NewMetrics registers and returns all Prometheus metrics. It must be called
// at most once per process because it registers on the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "candleapi_http_requests_total",
			Help: "Total HTTP requests by path and status code",
		}, []string{"path", "code"}),
		RequestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "candleapi_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),

		ScanDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "candleapi_pattern_scan_duration_seconds",
			Help:    "Pattern scan latency per request",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		DetectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "candleapi_pattern_detections_total",
			Help: "Total pattern detections returned",
		}),
		DetectorFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "candleapi_detector_faults_total",
			Help: "Detector panics recovered during scans",
		}),

		IndicatorDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "candleapi_indicator_compute_duration_seconds",
			Help:    "Indicator computation latency per request",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDur,
		m.ScanDur,
		m.DetectionsTotal,
		m.DetectorFaults,
		m.IndicatorDur,
	)

	return m
}
