// Package metrics holds the Prometheus instruments of the registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by every operation.
const (
	OutcomeOK = "ok"
)

// Metrics provides observability for the registry engines.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Operation outcomes by operation and error kind
	Operations *prometheus.CounterVec

	// Operation latency by operation
	OperationLatency *prometheus.HistogramVec

	// Airdrop recipients by outcome
	AirdropRecipients *prometheus.CounterVec
}

// New creates a new Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shielded_nft_operations_total",
			Help: "Total registry operations by operation and outcome",
		}, []string{"op", "outcome"}), // outcome: "ok", "not_found", "asset_locked", ...

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shielded_nft_operation_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),

		AirdropRecipients: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shielded_nft_airdrop_recipients_total",
			Help: "Airdrop recipients processed by outcome",
		}, []string{"outcome"}), // outcome: "minted", "failed"
	}
}

// ObserveOperation records one finished operation.
func (m *Metrics) ObserveOperation(op, outcome string, d time.Duration) {
	if m != nil {
		m.Operations.WithLabelValues(op, outcome).Inc()
		m.OperationLatency.WithLabelValues(op).Observe(d.Seconds())
	}
}

// AddAirdropRecipients records the per-recipient result of one airdrop.
func (m *Metrics) AddAirdropRecipients(minted, failed int) {
	if m != nil {
		m.AirdropRecipients.WithLabelValues("minted").Add(float64(minted))
		m.AirdropRecipients.WithLabelValues("failed").Add(float64(failed))
	}
}
