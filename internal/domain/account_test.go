package domain

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccount_OpeningBalance(t *testing.T) {
	opening := dec("1234.56")

	accounts := []Account{
		NewStandard("a", opening),
		NewSaver("b", opening, dec("0.05")),
		NewCurrent("c", opening, dec("500")),
		NewBusiness("d", opening, dec("1000")),
	}

	for _, acc := range accounts {
		if !acc.Balance().Equal(opening) {
			t.Errorf("%s: expected balance %s, got %s", acc.Kind(), opening, acc.Balance())
		}
	}
}

func TestAccount_Kind(t *testing.T) {
	tests := []struct {
		acc  Account
		want Kind
	}{
		{NewStandard("a", decimal.Zero), KindStandard},
		{NewSaver("a", decimal.Zero, decimal.Zero), KindSaver},
		{NewCurrent("a", decimal.Zero, decimal.Zero), KindCurrent},
		{NewBusiness("a", decimal.Zero, decimal.Zero), KindBusiness},
	}

	for _, tt := range tests {
		if got := tt.acc.Kind(); got != tt.want {
			t.Errorf("expected kind %q, got %q", tt.want, got)
		}
	}
}

func TestAccount_DepositAddsExactAmount(t *testing.T) {
	tests := []struct {
		name string
		acc  Account
	}{
		{name: "standard", acc: NewStandard("Jane", dec("100"))},
		{name: "current", acc: NewCurrent("Jane", dec("100"), dec("500"))},
		{name: "business", acc: NewBusiness("Jane", dec("100"), dec("1000"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.acc.Deposit(dec("25.50"))

			expected := dec("125.50")
			if !tt.acc.Balance().Equal(expected) {
				t.Errorf("expected balance %s, got %s", expected, tt.acc.Balance())
			}
		})
	}
}

func TestAccount_SplitDepositsAreAdditive(t *testing.T) {
	split := NewCurrent("Jane", dec("10"), dec("0"))
	split.Deposit(dec("30"))
	split.Deposit(dec("12.5"))

	single := NewCurrent("Jane", dec("10"), dec("0"))
	single.Deposit(dec("42.5"))

	if !split.Balance().Equal(single.Balance()) {
		t.Errorf("expected %s, got %s", single.Balance(), split.Balance())
	}
}

func TestAccount_DepositAcceptsNegativeAmount(t *testing.T) {
	acc := NewStandard("Jane", dec("100"))
	acc.Deposit(dec("-40"))

	if !acc.Balance().Equal(dec("60")) {
		t.Errorf("expected balance 60, got %s", acc.Balance())
	}
}

func TestStandard_Withdraw(t *testing.T) {
	tests := []struct {
		name            string
		balance         decimal.Decimal
		amount          decimal.Decimal
		expectedBalance decimal.Decimal
		expectError     error
	}{
		{
			name:            "less than balance",
			balance:         dec("100"),
			amount:          dec("30"),
			expectedBalance: dec("70"),
		},
		{
			name:            "exact balance",
			balance:         dec("100"),
			amount:          dec("100"),
			expectedBalance: dec("0"),
		},
		{
			name:            "more than balance",
			balance:         dec("100"),
			amount:          dec("100.01"),
			expectedBalance: dec("100"),
			expectError:     ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewStandard("John", tt.balance)

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

func TestAccount_String(t *testing.T) {
	tests := []struct {
		acc  Account
		want string
	}{
		{NewStandard("John Doe", dec("10.5")), "Account(name=John Doe, balance=10.5)"},
		{NewSaver("John Doe", dec("1000"), dec("0.05")), "Account(name=John Doe, balance=1000)"},
		{NewCurrent("Jane Doe", dec("5000"), dec("500")), "Account(name=Jane Doe, balance=5000)"},
		{NewBusiness("Jane Doe", dec("-999"), dec("1000")), "Account(name=Jane Doe, balance=-999)"},
	}

	for _, tt := range tests {
		if got := tt.acc.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestAccount_ConcurrentDeposits(t *testing.T) {
	acc := NewSaver("John", decimal.Zero, dec("0.1"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Deposit(dec("10"))
		}()
	}
	wg.Wait()

	expected := dec("550")
	if !acc.Balance().Equal(expected) {
		t.Errorf("expected balance %s, got %s", expected, acc.Balance())
	}
}
