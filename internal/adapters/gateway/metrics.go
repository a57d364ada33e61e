package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks backend request counts and latency per resource.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Backend API requests by resource, method and outcome.",
		}, []string{"resource", "method", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portal",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend API request latency by resource.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
	}
	reg.MustRegister(m.Requests, m.Duration)
	return m
}
