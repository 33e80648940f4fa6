package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository keeps opened accounts for the lifetime of the process.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Record
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Record),
	}
}

// Create stores a record. IDs are unique.
func (r *AccountRepository) Create(ctx context.Context, record *domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[record.ID]; ok {
		return domain.ErrAccountExists
	}
	r.accounts[record.ID] = record
	return nil
}

// GetByID retrieves a record by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if record, ok := r.accounts[id]; ok {
		return record, nil
	}
	return nil, domain.ErrAccountNotFound
}

// List returns all records, oldest first.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	records := make([]*domain.Record, 0, len(r.accounts))
	for _, record := range r.accounts {
		records = append(records, record)
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}
