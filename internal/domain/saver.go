package domain

import "github.com/shopspring/decimal"

// Saver is a savings account that earns a bonus of amount*interestRate on every deposit.
type Saver struct {
	holding
	interestRate decimal.Decimal
}

// NewSaver creates a savings account.
func NewSaver(name string, balance, interestRate decimal.Decimal) *Saver {
	return &Saver{
		holding:      newHolding(name, balance),
		interestRate: interestRate,
	}
}

// Kind returns KindSaver.
func (a *Saver) Kind() Kind {
	return KindSaver
}

// InterestRate returns the fraction credited on top of each deposit.
func (a *Saver) InterestRate() decimal.Decimal {
	return a.interestRate
}

// Deposit credits amount and then the interest earned on it.
func (a *Saver) Deposit(amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.credit(amount)
	a.credit(amount.Mul(a.interestRate))
}
