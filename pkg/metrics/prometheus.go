package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics. A nil *Metrics is valid and records
// nothing, which keeps tests free of prometheus registry state.
type Metrics struct {
	GateClaims       prometheus.Counter
	GateReleases     prometheus.Counter
	GateConflicts    prometheus.Counter
	ReportsGenerated prometheus.Counter
	ErrorsCount      *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// NewMetrics creates new prometheus metrics registered on the default
// registry. Call it once per process.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		GateClaims: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_claims_total",
			Help:      "The total number of boarding gates claimed by flights",
		}),
		GateReleases: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_releases_total",
			Help:      "The total number of boarding gates released back to available",
		}),
		GateConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_conflicts_total",
			Help:      "The total number of rejected gate assignments",
		}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "The total number of daily flight reports generated",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncGateClaim records a successful gate claim.
func (m *Metrics) IncGateClaim() {
	if m != nil {
		m.GateClaims.Inc()
	}
}

// IncGateRelease records a gate release.
func (m *Metrics) IncGateRelease() {
	if m != nil {
		m.GateReleases.Inc()
	}
}

// IncGateConflict records a rejected gate assignment.
func (m *Metrics) IncGateConflict() {
	if m != nil {
		m.GateConflicts.Inc()
	}
}

// IncReportGenerated records one daily report generation.
func (m *Metrics) IncReportGenerated() {
	if m != nil {
		m.ReportsGenerated.Inc()
	}
}

// IncError records an error for the given operation.
func (m *Metrics) IncError(operation string) {
	if m != nil {
		m.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
	}
}
