package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	detectionRuns       *prometheus.CounterVec
	detectionDuration   prometheus.Histogram
	patternsDetected    *prometheus.CounterVec
	patternTransitions  *prometheus.CounterVec
	stalePatternsTotal  prometheus.Counter
	mappingMatches      *prometheus.CounterVec
	mappingBulkRows     *prometheus.CounterVec
	sweepDuration       prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	pendingPatterns     prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		detectionRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pattern_detection_runs_total",
				Help: "Total number of per-account detection runs",
			},
			[]string{"status"},
		),
		detectionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pattern_detection_duration_milliseconds",
				Help:    "Per-account detection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		patternsDetected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patterns_detected_total",
				Help: "Total number of patterns detected by type",
			},
			[]string{"pattern_type"},
		),
		patternTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pattern_status_transitions_total",
				Help: "Total number of pattern review transitions by target status",
			},
			[]string{"status"},
		),
		stalePatternsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stale_patterns_deleted_total",
				Help: "Total number of stale patterns deleted",
			},
		),
		mappingMatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mapping_matches_total",
				Help: "Total number of mapping lookups by kind and matched tier",
			},
			[]string{"kind", "tier"},
		),
		mappingBulkRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mapping_bulk_rows_total",
				Help: "Total number of rows written by bulk mapping imports",
			},
			[]string{"kind", "result"},
		),
		sweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "detection_sweep_duration_seconds",
				Help:    "Background detection sweep duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		pendingPatterns: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "patterns_pending_review",
				Help: "Patterns awaiting review after the last sweep",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "detection.run.success":
		m.detectionRuns.WithLabelValues("success").Inc()
	case "detection.run.failed":
		m.detectionRuns.WithLabelValues("failed").Inc()
	case "pattern.detected":
		if patternType := tags["pattern_type"]; patternType != "" {
			m.patternsDetected.WithLabelValues(patternType).Inc()
		}
	case "pattern.transition":
		if status := tags["status"]; status != "" {
			m.patternTransitions.WithLabelValues(status).Inc()
		}
	case "mapping.match":
		tier := tags["tier"]
		if tier == "" {
			tier = "none"
		}
		m.mappingMatches.WithLabelValues(tags["kind"], tier).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	case "circuit_breaker.half_open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(2)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "detection.account":
		m.detectionDuration.Observe(float64(duration.Milliseconds()))
	case "detection.sweep":
		m.sweepDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "patterns.stale_deleted":
		m.stalePatternsTotal.Add(value)
	case "mapping.bulk_rows":
		if result := tags["result"]; result != "" {
			m.mappingBulkRows.WithLabelValues(tags["kind"], result).Add(value)
		}
	case "patterns.pending":
		m.pendingPatterns.Set(value)
	}
}
