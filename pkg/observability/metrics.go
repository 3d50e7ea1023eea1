package observability

import (
	"context"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by store lifecycle hooks.
type Metrics struct {
	Started        *prometheus.CounterVec
	Fulfilled      *prometheus.CounterVec
	Diagnostics    *prometheus.CounterVec
	ReduceDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_transactions_started_total",
				Help: "Total number of transactions started",
			},
			[]string{"action"},
		),
		Fulfilled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_transactions_fulfilled_total",
				Help: "Total number of transactions fulfilled",
			},
			[]string{"action"},
		),
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_diagnostics_total",
				Help: "Total number of mutations skipped with a diagnostic",
			},
			[]string{"action"},
		),
		ReduceDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lattice_reduce_duration_seconds",
				Help:    "Time spent holding exclusive access to the model",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"action"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Started, m.Fulfilled, m.Diagnostics, m.ReduceDuration)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransactionStart: func(_ context.Context, e *domain.TransactionEvent) {
			m.Started.WithLabelValues(e.Action).Inc()
		},
		OnReduce: func(_ context.Context, e *domain.TransactionEvent) {
			m.ReduceDuration.WithLabelValues(e.Action).Observe(e.Duration.Seconds())
		},
		OnTransactionFulfill: func(_ context.Context, e *domain.TransactionEvent) {
			m.Fulfilled.WithLabelValues(e.Action).Inc()
		},
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			m.Diagnostics.WithLabelValues(e.Action).Inc()
		},
	}
}
