package domain

import "github.com/shopspring/decimal"

// Current is an everyday account that may be overdrawn down to -overdraftLimit.
type Current struct {
	holding
	overdraftLimit decimal.Decimal
}

// NewCurrent creates a current account.
func NewCurrent(name string, balance, overdraftLimit decimal.Decimal) *Current {
	return &Current{
		holding:        newHolding(name, balance),
		overdraftLimit: overdraftLimit,
	}
}

// Kind returns KindCurrent.
func (a *Current) Kind() Kind {
	return KindCurrent
}

// OverdraftLimit returns how far below zero the balance may go.
func (a *Current) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

// Withdraw debits amount, drawing on the overdraft when the balance is not enough.
// It returns ErrOverdraftLimitExceeded when balance plus overdraft cannot cover amount.
func (a *Current) Withdraw(amount decimal.Decimal) error {
	return a.withdrawWithin(amount, a.overdraftLimit, ErrOverdraftLimitExceeded)
}
