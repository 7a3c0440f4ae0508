package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionID identifies a deposit or withdrawal transaction.
type TransactionID uint32

// TransactionKind determines the type of an incoming transaction.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// Monetary reports whether the kind carries an amount of its own.
// Dispute, resolve and chargeback reference an earlier transaction instead.
func (k TransactionKind) Monetary() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// TransactionState is the lifecycle state of a stored transaction.
//
// A transaction starts as New and moves exactly once to Succeeded or Failed
// once its delta has been applied. Independently a New (or Succeeded)
// transaction can be disputed; a disputed one either resolves or charges
// back. Resolved and Chargeback are terminal.
type TransactionState string

const (
	StateNew        TransactionState = "new"
	StateSucceeded  TransactionState = "succeeded"
	StateFailed     TransactionState = "failed"
	StateDisputed   TransactionState = "disputed"
	StateResolved   TransactionState = "resolved"
	StateChargeback TransactionState = "chargeback"
)

// Transaction is an incoming operation plus its lifecycle state. Amount is
// only meaningful for deposit and withdrawal kinds.
type Transaction struct {
	TxID     TransactionID
	ClientID ClientID
	Kind     TransactionKind
	Amount   decimal.Decimal
	State    TransactionState
}

// NewTransaction creates a transaction in state New.
func NewTransaction(kind TransactionKind, txID TransactionID, clientID ClientID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TxID:     txID,
		ClientID: clientID,
		Kind:     kind,
		Amount:   amount,
		State:    StateNew,
	}
}
