package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountName  = errors.New("invalid account name")
	ErrInvalidInterestRate = errors.New("invalid interest rate")
	ErrInvalidLimit        = errors.New("invalid limit")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MinAccountNameLength = 1
	MaxInterestRate      = "1" // 100%
)

// ValidateAccountName validates account name
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinAccountNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateInterestRate checks that rate is a fraction between zero and MaxInterestRate.
func ValidateInterestRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidInterestRate, rate)
	}

	maxRate, _ := decimal.NewFromString(MaxInterestRate)
	if rate.GreaterThan(maxRate) {
		return fmt.Errorf("%w: maximum rate is %s", ErrInvalidInterestRate, MaxInterestRate)
	}

	return nil
}

// ValidateLimit validates an overdraft or credit limit
func ValidateLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidLimit, limit)
	}
	return nil
}

// ParseKind maps a kind name, in any case, to its Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindStandard, KindSaver, KindCurrent, KindBusiness:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ParseAmount parses a decimal amount. The sign is left to the caller.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return amount, nil
}
