package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	recorder    OperationRecorder
	logger      zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, recorder OperationRecorder, logger zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		recorder:    recorder,
		logger:      logger.With().Str("component", "account_usecase").Logger(),
	}
}

// OpenAccountInput represents input for opening an account.
// InterestRate applies to savers, Limit to current (overdraft) and business (credit) accounts.
type OpenAccountInput struct {
	Kind         domain.Kind
	Name         string
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
	Limit        decimal.Decimal
}

// OpenAccount validates input, builds the account and stores it under a new ID.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Record, error) {
	account, err := buildAccount(input)
	if err != nil {
		return nil, err
	}

	record := &domain.Record{
		ID:        uc.idGen.Generate(),
		CreatedAt: time.Now().UTC(),
		Account:   account,
	}

	if err := uc.accountRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	uc.recorder.RecordOpened(account.Kind())
	uc.recorder.RecordBalance(record.ID, account.Kind(), account.Balance())

	uc.logger.Info().
		Str("account_id", record.ID).
		Str("kind", string(account.Kind())).
		Str("balance", account.Balance().String()).
		Msg("account opened")

	return record, nil
}

func buildAccount(input OpenAccountInput) (domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	switch input.Kind {
	case domain.KindStandard:
		return domain.NewStandard(input.Name, input.Balance), nil
	case domain.KindSaver:
		if err := domain.ValidateInterestRate(input.InterestRate); err != nil {
			return nil, err
		}
		return domain.NewSaver(input.Name, input.Balance, input.InterestRate), nil
	case domain.KindCurrent:
		if err := domain.ValidateLimit(input.Limit); err != nil {
			return nil, err
		}
		return domain.NewCurrent(input.Name, input.Balance, input.Limit), nil
	case domain.KindBusiness:
		if err := domain.ValidateLimit(input.Limit); err != nil {
			return nil, err
		}
		return domain.NewBusiness(input.Name, input.Balance, input.Limit), nil
	default:
		return nil, domain.ErrUnknownKind
	}
}

// Deposit credits an account and returns its new balance.
func (uc *AccountUseCase) Deposit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	record, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	record.Account.Deposit(amount)
	return uc.settle(record, OperationDeposit, amount, nil), nil
}

// Withdraw debits an account and returns its new balance.
// On failure the domain error is returned along with the untouched balance.
func (uc *AccountUseCase) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	record, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	err = record.Account.Withdraw(amount)
	return uc.settle(record, OperationWithdraw, amount, err), err
}

// settle reports the outcome of an operation and returns the resulting balance.
func (uc *AccountUseCase) settle(record *domain.Record, operation string, amount decimal.Decimal, opErr error) decimal.Decimal {
	kind := record.Account.Kind()
	balance := record.Account.Balance()

	uc.recorder.RecordOperation(kind, operation, opErr)
	uc.recorder.RecordBalance(record.ID, kind, balance)

	event := uc.logger.Debug()
	if opErr != nil {
		event = uc.logger.Warn().Err(opErr)
	}
	event.
		Str("account_id", record.ID).
		Str("operation", operation).
		Str("amount", amount.String()).
		Str("balance", balance.String()).
		Msg("account operation")

	return balance
}

// GetBalance returns the current balance of an account.
func (uc *AccountUseCase) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	record, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return record.Account.Balance(), nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Record, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists accounts in the order they were opened.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Record, error) {
	return uc.accountRepo.List(ctx)
}
