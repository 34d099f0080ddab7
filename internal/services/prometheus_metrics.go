package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated  *prometheus.CounterVec
	transactionsDeleted  prometheus.Counter
	statementUploads     *prometheus.CounterVec
	statementRowsTotal   prometheus.Counter
	coachRequests        *prometheus.CounterVec
	coachRequestDuration prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created",
			},
			[]string{"kind"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		statementUploads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_uploads_total",
				Help: "Total number of statement upload attempts",
			},
			[]string{"status"},
		),
		statementRowsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_rows_ingested_total",
				Help: "Total number of statement rows accepted and stored",
			},
		),
		coachRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_requests_total",
				Help: "Total number of AI coach requests",
			},
			[]string{"status"},
		),
		coachRequestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "coach_request_duration_seconds",
				Help:    "AI coach request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransactionCreated(kind string) {
	m.transactionsCreated.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordTransactionDeleted() {
	m.transactionsDeleted.Inc()
}

func (m *PrometheusMetrics) RecordStatementUpload(status string, accepted int) {
	m.statementUploads.WithLabelValues(status).Inc()
	if accepted > 0 {
		m.statementRowsTotal.Add(float64(accepted))
	}
}

func (m *PrometheusMetrics) RecordCoachRequest(status string, duration time.Duration) {
	m.coachRequests.WithLabelValues(status).Inc()
	m.coachRequestDuration.Observe(duration.Seconds())
}

// NoopMetrics is a MetricsRecorderInterface that records nothing, for tests
type NoopMetrics struct{}

func (NoopMetrics) RecordTransactionCreated(string)          {}
func (NoopMetrics) RecordTransactionDeleted()                {}
func (NoopMetrics) RecordStatementUpload(string, int)        {}
func (NoopMetrics) RecordCoachRequest(string, time.Duration) {}
