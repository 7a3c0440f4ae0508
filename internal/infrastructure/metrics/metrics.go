package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for a replay run.
type Metrics struct {
	// Transaction metrics
	TransactionsProcessed *prometheus.CounterVec
	TransactionsFailed    *prometheus.CounterVec

	// Account metrics
	AccountsCreated prometheus.Counter
	AccountsLocked  prometheus.Counter

	// Input metrics
	RecordsSkipped prometheus.Counter
}

// New creates and registers all Prometheus metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_transactions_processed_total",
				Help: "Total number of transactions processed by kind",
			},
			[]string{"kind"},
		),
		TransactionsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_transactions_failed_total",
				Help: "Total number of transactions rejected by the ledger by kind",
			},
			[]string{"kind"},
		),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_locked_total",
			Help: "Total number of accounts locked by chargebacks",
		}),
		RecordsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_records_skipped_total",
			Help: "Total number of malformed input records skipped",
		}),
	}
}
