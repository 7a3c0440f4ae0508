package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
)

func TestAccountStore_GetOrCreate(t *testing.T) {
	store := NewAccountStore()

	if len(store.All()) != 0 {
		t.Fatal("new store should be empty")
	}

	account := store.GetOrCreate(1)
	if account.ClientID != 1 {
		t.Errorf("client id = %d, want 1", account.ClientID)
	}
	if !account.Available.IsZero() || !account.Held.IsZero() || account.Locked {
		t.Error("new account should be zeroed and unlocked")
	}

	account.Available = decimal.NewFromInt(5)

	again := store.GetOrCreate(1)
	if !again.Available.Equal(decimal.NewFromInt(5)) {
		t.Error("GetOrCreate should return the same account on repeat calls")
	}

	if len(store.All()) != 1 {
		t.Errorf("store size = %d, want 1", len(store.All()))
	}
}

func TestTransactionStore_InsertAndGet(t *testing.T) {
	store := NewTransactionStore()

	if _, ok := store.Get(1); ok {
		t.Fatal("empty store should not return a transaction")
	}

	store.Insert(domain.NewTransaction(domain.KindDeposit, 1, 9, decimal.NewFromInt(3)))

	tx, ok := store.Get(1)
	if !ok {
		t.Fatal("expected transaction to be stored")
	}
	if tx.ClientID != 9 {
		t.Errorf("client id = %d, want 9", tx.ClientID)
	}

	// Lifecycle state mutations must be visible through later lookups.
	tx.State = domain.StateDisputed

	again, _ := store.Get(1)
	if again.State != domain.StateDisputed {
		t.Error("state change should be visible on re-read")
	}
}
