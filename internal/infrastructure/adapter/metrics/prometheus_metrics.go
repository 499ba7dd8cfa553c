// Package metrics exports ledger, database and HTTP metrics to prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
)

// PrometheusMetrics owns a registry so several instances can coexist in tests
type PrometheusMetrics struct {
	registry *prometheus.Registry

	mutationDuration    *prometheus.HistogramVec
	conflictRetries     prometheus.Counter
	continuationFailure *prometheus.CounterVec
	reconciled          prometheus.Counter
	gamePlays           *prometheus.CounterVec

	queryDuration *prometheus.HistogramVec
	queryErrors   *prometheus.CounterVec
	poolOpen      prometheus.Gauge
	poolInUse     prometheus.Gauge
	poolIdle      prometheus.Gauge
	poolWaitCount prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

var (
	_ coreport.Metrics       = (*PrometheusMetrics)(nil)
	_ database.QueryObserver = (*PrometheusMetrics)(nil)
	_ database.PoolObserver  = (*PrometheusMetrics)(nil)
)

// NewPrometheusMetrics registers every collector under namespace
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,

		mutationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_mutation_duration_seconds",
			Help:      "Duration of wallet mutations by transaction type and outcome",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"type", "outcome"}),
		conflictRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_conflict_retries_total",
			Help:      "Optimistic lock conflicts that were retried",
		}),
		continuationFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_continuation_failures_total",
			Help:      "Post-commit steps that failed and were left to the reconciler",
		}, []string{"stage"}),
		reconciled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_reconciled_transactions_total",
			Help:      "Transactions re-driven by the reconciler",
		}),
		gamePlays: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_game_plays_total",
			Help:      "Settled game rounds by result",
		}, []string{"result"}),

		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "SQL statement latency by operation and table",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "table"}),
		queryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_query_errors_total",
			Help:      "Failed SQL statements by operation",
		}, []string{"operation"}),
		poolOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_open_connections",
			Help:      "Open database connections",
		}),
		poolInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_in_use_connections",
			Help:      "Database connections in use",
		}),
		poolIdle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_idle_connections",
			Help:      "Idle database connections",
		}),
		poolWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_wait_count",
			Help:      "Connections waited for since start",
		}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distributions",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "path"}),
	}
}

// Handler serves the registry in the prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusMetrics) ObserveMutation(txType string, outcome string, duration coreport.Duration) {
	m.mutationDuration.WithLabelValues(txType, outcome).Observe(duration.Std().Seconds())
}

func (m *PrometheusMetrics) IncConflictRetry() {
	m.conflictRetries.Inc()
}

func (m *PrometheusMetrics) IncContinuationFailure(stage string) {
	m.continuationFailure.WithLabelValues(stage).Inc()
}

func (m *PrometheusMetrics) AddReconciled(count int) {
	if count > 0 {
		m.reconciled.Add(float64(count))
	}
}

func (m *PrometheusMetrics) ObserveGamePlay(result string) {
	m.gamePlays.WithLabelValues(result).Inc()
}

// ObserveQuery records one SQL statement
func (m *PrometheusMetrics) ObserveQuery(operation, table string, elapsed time.Duration, failed bool) {
	if operation == "" {
		operation = "other"
	}
	m.queryDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
	if failed {
		m.queryErrors.WithLabelValues(operation).Inc()
	}
}

// ObservePool records a connection pool sample
func (m *PrometheusMetrics) ObservePool(stats sql.DBStats) {
	m.poolOpen.Set(float64(stats.OpenConnections))
	m.poolInUse.Set(float64(stats.InUse))
	m.poolIdle.Set(float64(stats.Idle))
	m.poolWaitCount.Set(float64(stats.WaitCount))
}

// ObserveHTTPRequest records a served request. path is the route template.
func (m *PrometheusMetrics) ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
