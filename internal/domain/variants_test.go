package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSaver_Deposit(t *testing.T) {
	acc := NewSaver("John", dec("1000"), dec("0.05"))

	acc.Deposit(dec("100"))

	expected := dec("1105.00")
	if !acc.Balance().Equal(expected) {
		t.Errorf("expected balance %s, got %s", expected, acc.Balance())
	}
}

func TestSaver_DepositAppliesBonusPerCall(t *testing.T) {
	acc := NewSaver("John", dec("0"), dec("0.1"))

	acc.Deposit(dec("40"))
	acc.Deposit(dec("60"))

	plain := dec("100")
	if acc.Balance().Equal(plain) {
		t.Fatalf("expected interest on top of %s, got plain sum", plain)
	}

	expected := dec("110")
	if !acc.Balance().Equal(expected) {
		t.Errorf("expected balance %s, got %s", expected, acc.Balance())
	}
}

func TestSaver_ZeroRateBehavesLikeStandard(t *testing.T) {
	acc := NewSaver("John", dec("10"), decimal.Zero)
	acc.Deposit(dec("5"))

	if !acc.Balance().Equal(dec("15")) {
		t.Errorf("expected balance 15, got %s", acc.Balance())
	}
}

func TestSaver_WithdrawHasNoOverdraft(t *testing.T) {
	acc := NewSaver("John", dec("100"), dec("0.05"))

	err := acc.Withdraw(dec("101"))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !acc.Balance().Equal(dec("100")) {
		t.Errorf("expected balance unchanged, got %s", acc.Balance())
	}

	if err := acc.Withdraw(dec("60")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acc.Balance().Equal(dec("40")) {
		t.Errorf("expected balance 40, got %s", acc.Balance())
	}
}

func TestLimitedAccounts_Withdraw(t *testing.T) {
	tests := []struct {
		name            string
		newAccount      func() Account
		amount          decimal.Decimal
		expectedBalance decimal.Decimal
		expectError     error
	}{
		{
			name:            "current within balance",
			newAccount:      func() Account { return NewCurrent("Jane", dec("5000"), dec("500")) },
			amount:          dec("1000"),
			expectedBalance: dec("4000"),
		},
		{
			name:            "current into overdraft",
			newAccount:      func() Account { return NewCurrent("Jane", dec("5000"), dec("500")) },
			amount:          dec("5400"),
			expectedBalance: dec("-400"),
		},
		{
			name:            "current down to the limit",
			newAccount:      func() Account { return NewCurrent("Jane", dec("5000"), dec("500")) },
			amount:          dec("5500"),
			expectedBalance: dec("-500"),
		},
		{
			name:            "current beyond overdraft",
			newAccount:      func() Account { return NewCurrent("Jane", dec("5000"), dec("500")) },
			amount:          dec("5600"),
			expectedBalance: dec("5000"),
			expectError:     ErrOverdraftLimitExceeded,
		},
		{
			name:            "business within balance",
			newAccount:      func() Account { return NewBusiness("Jane", dec("5000"), dec("1000")) },
			amount:          dec("5000"),
			expectedBalance: dec("0"),
		},
		{
			name:            "business into credit",
			newAccount:      func() Account { return NewBusiness("Jane", dec("5000"), dec("1000")) },
			amount:          dec("5999"),
			expectedBalance: dec("-999"),
		},
		{
			name:            "business beyond credit",
			newAccount:      func() Account { return NewBusiness("Jane", dec("5000"), dec("1000")) },
			amount:          dec("6001"),
			expectedBalance: dec("5000"),
			expectError:     ErrCreditLimitExceeded,
		},
		{
			name:            "current already overdrawn",
			newAccount:      func() Account { return NewCurrent("Jane", dec("-400"), dec("500")) },
			amount:          dec("101"),
			expectedBalance: dec("-400"),
			expectError:     ErrOverdraftLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := tt.newAccount()

			err := acc.Withdraw(tt.amount)

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && !errors.Is(err, tt.expectError) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
			if !acc.Balance().Equal(tt.expectedBalance) {
				t.Errorf("expected balance %s, got %s", tt.expectedBalance, acc.Balance())
			}
		})
	}
}

func TestLimitedAccounts_ErrorsAreDistinct(t *testing.T) {
	current := NewCurrent("Jane", dec("0"), dec("10"))
	business := NewBusiness("Jane", dec("0"), dec("10"))

	currentErr := current.Withdraw(dec("11"))
	businessErr := business.Withdraw(dec("11"))

	if errors.Is(currentErr, ErrCreditLimitExceeded) {
		t.Errorf("current account reported a credit limit error: %v", currentErr)
	}
	if errors.Is(businessErr, ErrOverdraftLimitExceeded) {
		t.Errorf("business account reported an overdraft error: %v", businessErr)
	}
}

func TestLimitedAccounts_Accessors(t *testing.T) {
	current := NewCurrent("Jane", dec("0"), dec("500"))
	if !current.OverdraftLimit().Equal(dec("500")) {
		t.Errorf("expected overdraft limit 500, got %s", current.OverdraftLimit())
	}

	business := NewBusiness("Jane", dec("0"), dec("1000"))
	if !business.CreditLimit().Equal(dec("1000")) {
		t.Errorf("expected credit limit 1000, got %s", business.CreditLimit())
	}

	saver := NewSaver("John", dec("0"), dec("0.05"))
	if !saver.InterestRate().Equal(dec("0.05")) {
		t.Errorf("expected interest rate 0.05, got %s", saver.InterestRate())
	}
}
