package verify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage labels.
const (
	StageConformance = "conformance"
	StageCrosscheck  = "crosscheck"
)

// Metrics counts verification work. Register it once per registry.
type Metrics struct {
	Checks   *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the verification metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Checks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lanes_verify_checks_total",
			Help: "Randomized checks executed, by backend and stage",
		}, []string{"backend", "stage"}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lanes_verify_failures_total",
			Help: "Checks that found a mismatch, by backend and stage",
		}, []string{"backend", "stage"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lanes_verify_duration_seconds",
			Help:    "Wall time of one stage for one backend",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"backend", "stage"}),
	}
}
