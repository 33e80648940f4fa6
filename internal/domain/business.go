package domain

import "github.com/shopspring/decimal"

// Business is a business account backed by a credit line of creditLimit.
type Business struct {
	holding
	creditLimit decimal.Decimal
}

// NewBusiness creates a business account.
func NewBusiness(name string, balance, creditLimit decimal.Decimal) *Business {
	return &Business{
		holding:     newHolding(name, balance),
		creditLimit: creditLimit,
	}
}

// Kind returns KindBusiness.
func (a *Business) Kind() Kind {
	return KindBusiness
}

// CreditLimit returns how far below zero the balance may go.
func (a *Business) CreditLimit() decimal.Decimal {
	return a.creditLimit
}

// Withdraw debits amount, drawing on credit when the balance is not enough.
// It returns ErrCreditLimitExceeded when balance plus credit cannot cover amount.
func (a *Business) Withdraw(amount decimal.Decimal) error {
	return a.withdrawWithin(amount, a.creditLimit, ErrCreditLimitExceeded)
}
