package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository defines storage for opened accounts.
type AccountRepository interface {
	Create(ctx context.Context, record *domain.Record) error
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// OperationRecorder observes account activity.
type OperationRecorder interface {
	RecordOpened(kind domain.Kind)
	RecordOperation(kind domain.Kind, operation string, err error)
	RecordBalance(id string, kind domain.Kind, balance decimal.Decimal)
}
