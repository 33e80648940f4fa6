package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// Outcome labels for account operations.
const (
	OutcomeOK                     = "ok"
	OutcomeInsufficientFunds      = "insufficient_funds"
	OutcomeOverdraftLimitExceeded = "overdraft_limit_exceeded"
	OutcomeCreditLimitExceeded    = "credit_limit_exceeded"
	OutcomeError                  = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	AccountsOpened    *prometheus.CounterVec
	AccountOperations *prometheus.CounterVec
	AccountBalance    *prometheus.GaugeVec
}

// New creates and registers all Prometheus metrics on reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_opened_total",
				Help:      "Total number of accounts opened by kind",
			},
			[]string{"kind"},
		),
		AccountOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_operations_total",
				Help:      "Total account operations by kind, operation and outcome",
			},
			[]string{"kind", "operation", "outcome"},
		),
		AccountBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "account_balance",
				Help:      "Current account balance",
			},
			[]string{"account_id", "kind"},
		),
	}
}

// RecordOpened counts a newly opened account.
func (m *Metrics) RecordOpened(kind domain.Kind) {
	m.AccountsOpened.WithLabelValues(string(kind)).Inc()
}

// RecordOperation counts a deposit or withdrawal and how it ended.
func (m *Metrics) RecordOperation(kind domain.Kind, operation string, err error) {
	m.AccountOperations.WithLabelValues(string(kind), operation, Outcome(err)).Inc()
}

// RecordBalance sets the balance gauge of an account.
func (m *Metrics) RecordBalance(id string, kind domain.Kind, balance decimal.Decimal) {
	m.AccountBalance.WithLabelValues(id, string(kind)).Set(balance.InexactFloat64())
}

// Outcome maps an operation error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	case errors.Is(err, domain.ErrOverdraftLimitExceeded):
		return OutcomeOverdraftLimitExceeded
	case errors.Is(err, domain.ErrCreditLimitExceeded):
		return OutcomeCreditLimitExceeded
	default:
		return OutcomeError
	}
}
