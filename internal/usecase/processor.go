package usecase

import (
	"github.com/iho/payengine/internal/domain"
)

// Processor turns incoming transactions into account deltas.
//
// Deposits and withdrawals are recorded in the transaction log before their
// delta is returned. Dispute, resolve and chargeback look up the referenced
// transaction and advance its lifecycle state; any unresolvable reference
// (unknown tx, client mismatch, wrong state, non-monetary target) produces an
// empty delta and is silently ignored.
type Processor struct {
	transactions TransactionStore
}

func NewProcessor(transactions TransactionStore) *Processor {
	return &Processor{transactions: transactions}
}

// ProduceDelta returns the balance change the transaction implies.
func (p *Processor) ProduceDelta(tx *domain.Transaction) domain.Delta {
	switch tx.Kind {
	case domain.KindDeposit:
		p.transactions.Insert(tx)
		return domain.DepositDelta(tx.Amount)
	case domain.KindWithdrawal:
		p.transactions.Insert(tx)
		return domain.WithdrawalDelta(tx.Amount)
	case domain.KindDispute:
		return p.dispute(tx)
	case domain.KindResolve:
		return p.resolve(tx)
	case domain.KindChargeback:
		return p.chargeback(tx)
	}

	return domain.NoDelta()
}

// Succeed marks a stored transaction as succeeded. Only transactions still in
// state New are touched, so a later dispute can never be clobbered by a stale
// outcome report.
func (p *Processor) Succeed(txID domain.TransactionID) {
	p.setOutcome(txID, domain.StateSucceeded)
}

// Fail marks a stored transaction as failed, under the same New-only guard as
// Succeed.
func (p *Processor) Fail(txID domain.TransactionID) {
	p.setOutcome(txID, domain.StateFailed)
}

func (p *Processor) setOutcome(txID domain.TransactionID, state domain.TransactionState) {
	tx, ok := p.transactions.Get(txID)
	if !ok {
		return
	}

	if tx.State == domain.StateNew {
		tx.State = state
	}
}

// dispute freezes the referenced transaction's funds. A deposit dispute moves
// the amount from available to held and may create debt, because the client
// can already have withdrawn the disputed funds. A withdrawal dispute only
// grows held; the funds left available at withdrawal time.
func (p *Processor) dispute(ref *domain.Transaction) domain.Delta {
	tx, ok := p.transactions.Get(ref.TxID)
	if !ok {
		return domain.NoDelta()
	}

	// The client check comes before the state check on every reference kind.
	if ref.ClientID != tx.ClientID {
		return domain.NoDelta()
	}

	switch tx.State {
	case domain.StateDisputed, domain.StateResolved, domain.StateChargeback:
		// A transaction is disputable at most once across its lifetime.
		return domain.NoDelta()
	}

	switch tx.Kind {
	case domain.KindDeposit:
		tx.State = domain.StateDisputed
		return domain.DisputeDepositDelta(tx.Amount)
	case domain.KindWithdrawal:
		tx.State = domain.StateDisputed
		return domain.DisputeWithdrawalDelta(tx.Amount)
	}

	return domain.NoDelta()
}

// resolve releases the held funds of a disputed transaction back to
// available.
func (p *Processor) resolve(ref *domain.Transaction) domain.Delta {
	tx, ok := p.transactions.Get(ref.TxID)
	if !ok {
		return domain.NoDelta()
	}

	if ref.ClientID != tx.ClientID {
		return domain.NoDelta()
	}

	if tx.State != domain.StateDisputed {
		return domain.NoDelta()
	}

	if !tx.Kind.Monetary() {
		return domain.NoDelta()
	}

	tx.State = domain.StateResolved

	return domain.ResolveDelta(tx.Amount)
}

// chargeback withdraws the held funds of a disputed transaction and locks the
// account. There is no re-validation of available funds; the held amount is
// removed unconditionally.
func (p *Processor) chargeback(ref *domain.Transaction) domain.Delta {
	tx, ok := p.transactions.Get(ref.TxID)
	if !ok {
		return domain.NoDelta()
	}

	if ref.ClientID != tx.ClientID {
		return domain.NoDelta()
	}

	if tx.State != domain.StateDisputed {
		return domain.NoDelta()
	}

	if !tx.Kind.Monetary() {
		return domain.NoDelta()
	}

	tx.State = domain.StateChargeback

	return domain.ChargebackDelta(tx.Amount)
}
