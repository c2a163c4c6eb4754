package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics is the per-operation instrumentation surface every
// application service depends on.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, module string)
	RecordOperationSuccess(ctx context.Context, operation, module string)
	RecordOperationFailure(ctx context.Context, operation, module string)
	RecordOperationDuration(ctx context.Context, operation, module string, duration time.Duration)
}

// PrometheusOperationMetrics implements OperationMetrics on a prometheus
// registry, one time series per (operation, module) pair.
type PrometheusOperationMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewOperationMetrics registers the operation metric vectors on reg.
func NewOperationMetrics(reg prometheus.Registerer) *PrometheusOperationMetrics {
	labels := []string{"operation", "module"}
	m := &PrometheusOperationMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golftracker",
			Name:      "operation_attempts_total",
			Help:      "Number of service operation attempts.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golftracker",
			Name:      "operation_successes_total",
			Help:      "Number of service operations that completed successfully.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golftracker",
			Name:      "operation_failures_total",
			Help:      "Number of service operations that failed.",
		}, labels),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "golftracker",
			Name:      "operation_duration_seconds",
			Help:      "Service operation duration.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	return m
}

func (m *PrometheusOperationMetrics) RecordOperationAttempt(_ context.Context, operation, module string) {
	m.attempts.WithLabelValues(operation, module).Inc()
}

func (m *PrometheusOperationMetrics) RecordOperationSuccess(_ context.Context, operation, module string) {
	m.successes.WithLabelValues(operation, module).Inc()
}

func (m *PrometheusOperationMetrics) RecordOperationFailure(_ context.Context, operation, module string) {
	m.failures.WithLabelValues(operation, module).Inc()
}

func (m *PrometheusOperationMetrics) RecordOperationDuration(_ context.Context, operation, module string, duration time.Duration) {
	m.durations.WithLabelValues(operation, module).Observe(duration.Seconds())
}

// NoOpMetrics satisfies OperationMetrics without recording anything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationFailure(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}

var (
	_ OperationMetrics = (*PrometheusOperationMetrics)(nil)
	_ OperationMetrics = NoOpMetrics{}
)
