package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/devsession/pkg/domain"
	"github.com/aretw0/devsession/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results recorded by the metrics middleware.
const (
	ResultOK    = "ok"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Metrics holds the Prometheus collectors for store operations.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the store metrics with the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Operations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "devsession",
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Total number of backing store operations",
			},
			[]string{"op", "result"},
		),
		Duration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "devsession",
				Subsystem: "store",
				Name:      "operation_duration_seconds",
				Help:      "Backing store round trip duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
}

type metricsMiddleware struct {
	next    ports.KeyValueStore
	metrics *Metrics
}

// NewMetricsMiddleware records the count, outcome and latency of every store operation.
func NewMetricsMiddleware(metrics *Metrics) Middleware {
	return func(next ports.KeyValueStore) ports.KeyValueStore {
		return &metricsMiddleware{next: next, metrics: metrics}
	}
}

func (m *metricsMiddleware) observe(op string, start time.Time, err error) {
	m.metrics.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	result := ResultOK
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = ResultMiss
	case err != nil:
		result = ResultError
	}
	m.metrics.Operations.WithLabelValues(op, result).Inc()
}

func (m *metricsMiddleware) Read(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := m.next.Read(ctx, key)
	m.observe("read", start, err)
	return value, err
}

func (m *metricsMiddleware) Write(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := m.next.Write(ctx, key, value)
	m.observe("write", start, err)
	return err
}

func (m *metricsMiddleware) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := m.next.Delete(ctx, key)
	m.observe("delete", start, err)
	return err
}

func (m *metricsMiddleware) Keys(ctx context.Context, prefix string) ([]string, error) {
	start := time.Now()
	keys, err := m.next.Keys(ctx, prefix)
	m.observe("keys", start, err)
	return keys, err
}
