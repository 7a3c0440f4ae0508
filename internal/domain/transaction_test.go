package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionKind_Monetary(t *testing.T) {
	monetary := map[TransactionKind]bool{
		KindDeposit:    true,
		KindWithdrawal: true,
		KindDispute:    false,
		KindResolve:    false,
		KindChargeback: false,
	}

	for kind, want := range monetary {
		if got := kind.Monetary(); got != want {
			t.Errorf("%s.Monetary() = %v, want %v", kind, got, want)
		}
	}
}

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction(KindDeposit, 42, 7, decimal.NewFromInt(3))

	if tx.TxID != 42 || tx.ClientID != 7 {
		t.Errorf("unexpected ids: %+v", tx)
	}
	if tx.State != StateNew {
		t.Errorf("state = %s, want new", tx.State)
	}
}
