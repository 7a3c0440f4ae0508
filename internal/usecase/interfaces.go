package usecase

import (
	"github.com/iho/payengine/internal/domain"
)

// AccountStore defines access to the account ledger.
type AccountStore interface {
	// GetOrCreate returns the account for a client, creating an empty one on
	// first reference.
	GetOrCreate(clientID domain.ClientID) *domain.Account
	// All returns every account ever referenced during the run.
	All() map[domain.ClientID]*domain.Account
}

// TransactionStore defines access to the transaction log. Only deposits and
// withdrawals are stored; reference kinds are never inserted.
type TransactionStore interface {
	Insert(tx *domain.Transaction)
	Get(txID domain.TransactionID) (*domain.Transaction, bool)
}
