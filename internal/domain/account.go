package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the rules an account applies to deposits and withdrawals.
type Kind string

const (
	KindStandard Kind = "standard"
	KindSaver    Kind = "saver"
	KindCurrent  Kind = "current"
	KindBusiness Kind = "business"
)

// Account is the behaviour shared by every account kind.
type Account interface {
	Name() string
	Kind() Kind
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal)
	Withdraw(amount decimal.Decimal) error
	String() string
}

// Record is an account stored under an identifier.
type Record struct {
	CreatedAt time.Time
	ID        string
	Account   Account
}

// holding keeps the name and balance every account kind is built on.
// The balance is guarded by mu since deposit and withdraw read, then write it.
type holding struct {
	mu      sync.Mutex
	name    string
	balance decimal.Decimal
}

func newHolding(name string, balance decimal.Decimal) holding {
	return holding{name: name, balance: balance}
}

// Name returns the account holder's name.
func (h *holding) Name() string {
	return h.name
}

// Balance returns the current balance.
func (h *holding) Balance() decimal.Decimal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.balance
}

// Deposit credits amount. The sign of amount is not checked.
func (h *holding) Deposit(amount decimal.Decimal) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credit(amount)
}

// Withdraw debits amount, or returns ErrInsufficientFunds when the balance is lower than amount.
func (h *holding) Withdraw(amount decimal.Decimal) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, h.balance, amount)
	}

	h.debit(amount)
	return nil
}

// String formats the account the same way for every kind.
func (h *holding) String() string {
	return fmt.Sprintf("Account(name=%s, balance=%s)", h.name, h.Balance())
}

// withdrawWithin debits amount as long as the balance stays at or above -limit.
// Caller must not hold mu.
func (h *holding) withdrawWithin(amount, limit decimal.Decimal, exceeded error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.balance.LessThan(amount) && h.balance.Add(limit).LessThan(amount) {
		return fmt.Errorf("%w: balance %s, limit %s, requested %s", exceeded, h.balance, limit, amount)
	}

	h.debit(amount)
	return nil
}

// credit and debit require mu to be held.
func (h *holding) credit(amount decimal.Decimal) {
	h.balance = h.balance.Add(amount)
}

func (h *holding) debit(amount decimal.Decimal) {
	h.balance = h.balance.Sub(amount)
}

// Standard is a plain account: no bonus on deposit, no overdraft on withdrawal.
type Standard struct {
	holding
}

// NewStandard creates a standard account with an opening balance.
func NewStandard(name string, balance decimal.Decimal) *Standard {
	return &Standard{holding: newHolding(name, balance)}
}

// Kind returns KindStandard.
func (a *Standard) Kind() Kind {
	return KindStandard
}
