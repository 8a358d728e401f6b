package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveOperation("mint", OutcomeOK, 2*time.Millisecond)
	m.ObserveOperation("mint", OutcomeOK, 3*time.Millisecond)
	m.ObserveOperation("transfer", "asset_locked", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("mint", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("transfer", "asset_locked")))

	count, err := testutil.GatherAndCount(reg, "shielded_nft_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAddAirdropRecipients(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AddAirdropRecipients(3, 1)
	m.AddAirdropRecipients(2, 0)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.AirdropRecipients.WithLabelValues("minted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AirdropRecipients.WithLabelValues("failed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("mint", OutcomeOK, time.Millisecond)
		m.AddAirdropRecipients(1, 1)
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
