package usecase

import (
	"github.com/rs/zerolog"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
)

// Engine is the entry point for transaction processing.
//
// For every incoming transaction the engine asks the processor for the
// account delta it implies, applies that delta to the owning account
// (creating the account on first reference) and reports the outcome back so
// the transaction log can advance the lifecycle state. A rejected delta
// (locked account, insufficient funds) fails only that transaction; the run
// continues.
type Engine struct {
	processor *Processor
	accounts  AccountStore
	metrics   *metrics.Metrics
	log       zerolog.Logger

	processed int64
	failed    int64
}

func NewEngine(processor *Processor, accounts AccountStore, m *metrics.Metrics, log zerolog.Logger) *Engine {
	return &Engine{
		processor: processor,
		accounts:  accounts,
		metrics:   m,
		log:       log,
	}
}

// ProcessTransaction applies one transaction to the ledger.
func (e *Engine) ProcessTransaction(tx *domain.Transaction) {
	clientID := tx.ClientID
	txID := tx.TxID
	kind := tx.Kind

	delta := e.processor.ProduceDelta(tx)

	account := e.accounts.GetOrCreate(clientID)
	wasLocked := account.Locked

	e.processed++
	e.metrics.TransactionsProcessed.WithLabelValues(string(kind)).Inc()

	if err := account.Apply(delta); err != nil {
		e.processor.Fail(txID)
		e.failed++
		e.metrics.TransactionsFailed.WithLabelValues(string(kind)).Inc()
		e.log.Error().
			Err(err).
			Uint32("tx", uint32(txID)).
			Uint16("client", uint16(clientID)).
			Str("kind", string(kind)).
			Msg("transaction failed")
		return
	}

	e.processor.Succeed(txID)

	if !wasLocked && account.Locked {
		e.metrics.AccountsLocked.Inc()
	}
}

// Accounts returns every account referenced during the run.
func (e *Engine) Accounts() map[domain.ClientID]*domain.Account {
	return e.accounts.All()
}

// Summary returns how many transactions were processed and how many of them
// the ledger rejected.
func (e *Engine) Summary() (processed, failed int64) {
	return e.processed, e.failed
}
