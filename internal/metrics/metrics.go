package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for registry operations.
type Metrics struct {
	// Operation outcomes by operation name and error code ("ok" on success)
	Operations *prometheus.CounterVec

	// Operation latency including the storage commit
	OperationLatency *prometheus.HistogramVec

	// Investments created, and their total amount in micro-units. The amount
	// is a gauge because the configured band may admit negative amounts.
	InvestmentsCreated prometheus.Counter
	InvestedAmount     prometheus.Gauge

	// Status transitions by target status
	StatusChanges *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg. A nil reg registers
// with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doblink_registry_operations_total",
			Help: "Total registry operations by operation and result code",
		}, []string{"operation", "code"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "doblink_registry_operation_duration_seconds",
			Help:    "Duration of registry operations including the storage commit",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		InvestmentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "doblink_investments_created_total",
			Help: "Total number of investments recorded",
		}),

		InvestedAmount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "doblink_invested_amount_micro",
			Help: "Sum of recorded investment amounts in micro-units",
		}),

		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doblink_investment_status_changes_total",
			Help: "Total investment status transitions by target status",
		}, []string{"status"}),
	}
}

// ObserveOperation records the outcome and duration of one operation. An
// empty code counts as success.
func (m *Metrics) ObserveOperation(operation, code string, d time.Duration) {
	if m == nil {
		return
	}
	if code == "" {
		code = "ok"
	}
	m.Operations.WithLabelValues(operation, code).Inc()
	m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrementInvestment records a newly created investment.
func (m *Metrics) IncrementInvestment(amount int64) {
	if m != nil {
		m.InvestmentsCreated.Inc()
		m.InvestedAmount.Add(float64(amount))
	}
}

// IncrementStatusChange records a status transition.
func (m *Metrics) IncrementStatusChange(status string) {
	if m != nil {
		m.StatusChanges.WithLabelValues(status).Inc()
	}
}
