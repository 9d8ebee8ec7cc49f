// Package metrics exposes Prometheus instrumentation for the results sync
// pipeline. The recorder is constructor-injected; a nil recorder disables
// collection without branching at call sites.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sync outcome label values.
const (
	OutcomeCacheHit      = "cache_hit"
	OutcomeNetwork       = "network"
	OutcomeStaleFallback = "stale_fallback"
	OutcomeMock          = "mock"
	OutcomeError         = "error"
)

// Recorder registers the sync metrics on its own registry so the scrape
// surface stays limited to domain series.
type Recorder struct {
	registry *prometheus.Registry

	syncOutcomes  *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	cacheEntries  prometheus.Gauge
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Recorder{
		registry: registry,
		syncOutcomes: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "regatta",
				Subsystem: "results",
				Name:      "sync_total",
				Help:      "Championship sync requests by event and outcome",
			},
			[]string{"event", "outcome"},
		),
		fetchDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "regatta",
			Subsystem: "results",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream standings fetch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheEntries: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: "regatta",
			Subsystem: "results",
			Name:      "cache_entries",
			Help:      "Championship entries currently cached, fresh and stale",
		}),
	}
}

// RecordSync counts one sync request for an event with its outcome.
func (r *Recorder) RecordSync(event, outcome string) {
	if r == nil {
		return
	}
	r.syncOutcomes.WithLabelValues(event, outcome).Inc()
}

// ObserveFetchDuration records one upstream fetch duration.
func (r *Recorder) ObserveFetchDuration(seconds float64) {
	if r == nil {
		return
	}
	r.fetchDuration.Observe(seconds)
}

// SetCacheEntries updates the cache size gauge.
func (r *Recorder) SetCacheEntries(count int) {
	if r == nil {
		return
	}
	r.cacheEntries.Set(float64(count))
}

// Handler serves the registry in Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
