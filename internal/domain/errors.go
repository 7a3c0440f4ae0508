package domain

import "errors"

var (
	// Account errors
	ErrAccountLocked     = errors.New("account is locked")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
