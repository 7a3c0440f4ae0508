package domain

import (
	"github.com/shopspring/decimal"
)

// ClientID identifies a client account.
type ClientID uint16

// Account represents one client's balance record.
type Account struct {
	ClientID  ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(clientID ClientID) *Account {
	return &Account{ClientID: clientID}
}

// Apply mutates the account by the given delta.
//
// A locked account rejects every delta. An available change that would drive
// the balance negative fails with ErrInsufficientFunds unless the delta
// permits debt. Held changes are applied unconditionally; the processor is
// the only producer of held deltas and they always match an earlier movement.
// Total is recomputed on every call.
func (a *Account) Apply(delta Delta) error {
	if a.Locked {
		return ErrAccountLocked
	}

	if delta.Available != nil {
		next := a.Available.Add(*delta.Available)
		if !delta.CanCreateDebt && next.IsNegative() {
			return ErrInsufficientFunds
		}
		a.Available = next
	}

	if delta.Held != nil {
		a.Held = a.Held.Add(*delta.Held)
	}

	if delta.Locked != nil {
		a.Locked = *delta.Locked
	}

	a.Total = a.Available.Add(a.Held)

	return nil
}

// Delta describes a requested account mutation produced from one transaction.
// Nil fields are left untouched. CanCreateDebt permits available to go
// negative; this only happens when a deposit is disputed after its funds were
// already withdrawn.
type Delta struct {
	Available     *decimal.Decimal
	Held          *decimal.Decimal
	Locked        *bool
	CanCreateDebt bool
}

// NoDelta returns a delta that changes nothing.
func NoDelta() Delta {
	return Delta{}
}

// DepositDelta adds amount to available funds.
func DepositDelta(amount decimal.Decimal) Delta {
	return Delta{Available: &amount}
}

// WithdrawalDelta removes amount from available funds.
func WithdrawalDelta(amount decimal.Decimal) Delta {
	return DepositDelta(amount.Neg())
}

// DisputeDepositDelta moves a disputed deposit from available to held funds.
func DisputeDepositDelta(amount decimal.Decimal) Delta {
	neg := amount.Neg()
	return Delta{Available: &neg, Held: &amount, CanCreateDebt: true}
}

// DisputeWithdrawalDelta freezes the disputed amount. Available is untouched
// because the funds already left the account at withdrawal time.
func DisputeWithdrawalDelta(amount decimal.Decimal) Delta {
	return Delta{Held: &amount}
}

// ResolveDelta releases held funds back to available.
func ResolveDelta(amount decimal.Decimal) Delta {
	neg := amount.Neg()
	return Delta{Available: &amount, Held: &neg}
}

// ChargebackDelta withdraws held funds and locks the account.
func ChargebackDelta(amount decimal.Decimal) Delta {
	neg := amount.Neg()
	locked := true
	return Delta{Held: &neg, Locked: &locked}
}
