package memory

import (
	"github.com/iho/payengine/internal/domain"
)

// TransactionStore is a map-backed transaction log keyed by transaction id.
// Entries are appended for deposits and withdrawals and mutated in place for
// lifecycle-state transitions.
type TransactionStore struct {
	transactions map[domain.TransactionID]*domain.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		transactions: make(map[domain.TransactionID]*domain.Transaction),
	}
}

func (s *TransactionStore) Insert(tx *domain.Transaction) {
	s.transactions[tx.TxID] = tx
}

func (s *TransactionStore) Get(txID domain.TransactionID) (*domain.Transaction, bool) {
	tx, ok := s.transactions[txID]
	return tx, ok
}
