package txmock

import (
	"context"

	domain "investcore-backend/internal/domain/transaction"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, t *domain.Transaction) error
	GetByTxIDFn             func(ctx context.Context, txID string) (*domain.Transaction, error)
	ListByUserIDFn          func(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
	UpdateStatusIfPendingFn func(ctx context.Context, txID string, newStatus domain.Status) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTxID(ctx context.Context, txID string) (*domain.Transaction, error) {
	if m.GetByTxIDFn != nil {
		return m.GetByTxIDFn(ctx, txID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *Repo) UpdateStatusIfPending(ctx context.Context, txID string, newStatus domain.Status) error {
	if m.UpdateStatusIfPendingFn != nil {
		return m.UpdateStatusIfPendingFn(ctx, txID, newStatus)
	}
	return nil
}
