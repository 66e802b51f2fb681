// Package metrics содержит Prometheus-коллекторы devnet-шлюза.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iudanet/gophcert/pkg/api"
)

const namespace = "gophcert_devnet"

// Metrics holds the devnet collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	txSubmitted   *prometheus.CounterVec
	txExecuted    *prometheus.CounterVec
	viewCalls     *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	blocks        prometheus.Counter
	ledgerVersion prometheus.Gauge
	pending       prometheus.Gauge
}

// New creates collectors and registers them with registry.
// With a nil registry the collectors are created but not registered.
func New(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		txSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_submitted_total",
			Help:      "Total number of accepted transactions by entry function",
		}, []string{"function"}),
		txExecuted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_executed_total",
			Help:      "Total number of confirmed transactions by final status",
		}, []string{"status"}),
		viewCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_calls_total",
			Help:      "Total number of view function calls",
		}, []string{"function", "result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "code"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		blocks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_produced_total",
			Help:      "Total number of non-empty blocks",
		}),
		ledgerVersion: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_version",
			Help:      "Version of the last confirmed transaction",
		}),
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions_pending",
			Help:      "Number of transactions picked up by the last block",
		}),
	}
}

// TransactionSubmitted counts an accepted transaction.
func (m *Metrics) TransactionSubmitted(function string) {
	if m == nil {
		return
	}
	m.txSubmitted.WithLabelValues(function).Inc()
}

// TransactionExecuted counts a confirmed transaction.
func (m *Metrics) TransactionExecuted(status api.TxStatus) {
	if m == nil {
		return
	}
	m.txExecuted.WithLabelValues(string(status)).Inc()
}

// BlockProduced records a block of size transactions ending at version.
func (m *Metrics) BlockProduced(version uint64, size int) {
	if m == nil {
		return
	}
	m.pending.Set(float64(size))
	if size == 0 {
		return
	}
	m.blocks.Inc()
	m.ledgerVersion.Set(float64(version))
}

// ViewCalled counts a view call.
func (m *Metrics) ViewCalled(function string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.viewCalls.WithLabelValues(function, result).Inc()
}

// HTTPRequest records a served request.
func (m *Metrics) HTTPRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
