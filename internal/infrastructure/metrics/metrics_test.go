package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.TransactionsProcessed.WithLabelValues("deposit").Inc()
	m.TransactionsProcessed.WithLabelValues("deposit").Inc()
	m.TransactionsFailed.WithLabelValues("withdrawal").Inc()
	m.RecordsSkipped.Inc()

	if got := testutil.ToFloat64(m.TransactionsProcessed.WithLabelValues("deposit")); got != 2 {
		t.Errorf("processed deposits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.TransactionsFailed.WithLabelValues("withdrawal")); got != 1 {
		t.Errorf("failed withdrawals = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RecordsSkipped); got != 1 {
		t.Errorf("skipped records = %v, want 1", got)
	}
}

func TestNew_SeparateRegistries(t *testing.T) {
	// Each run owns its registry; a second New must not panic on duplicate
	// registration.
	_ = New(prometheus.NewRegistry())
	_ = New(prometheus.NewRegistry())
}
