package domain

import "errors"

var (
	// Withdrawal errors
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrOverdraftLimitExceeded = errors.New("overdraft limit exceeded")
	ErrCreditLimitExceeded    = errors.New("credit limit exceeded")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrUnknownKind     = errors.New("unknown account kind")
)
