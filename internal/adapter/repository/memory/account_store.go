package memory

import (
	"github.com/iho/payengine/internal/domain"
)

// AccountStore is a map-backed account ledger. It lives for one run and is
// owned by a single goroutine; no locking is required.
type AccountStore struct {
	accounts map[domain.ClientID]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[domain.ClientID]*domain.Account),
	}
}

// GetOrCreate returns the account for a client, creating an empty one on
// first reference.
func (s *AccountStore) GetOrCreate(clientID domain.ClientID) *domain.Account {
	if account, ok := s.accounts[clientID]; ok {
		return account
	}

	account := domain.NewAccount(clientID)
	s.accounts[clientID] = account

	return account
}

// All returns every account ever referenced.
func (s *AccountStore) All() map[domain.ClientID]*domain.Account {
	return s.accounts
}
