package walletmock

import (
	"context"

	domain "investcore-backend/internal/domain/wallet"

	"github.com/shopspring/decimal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, w *domain.Wallet) error
	GetByUserIDFn  func(ctx context.Context, userID string) (*domain.Wallet, error)
	AddToBalanceFn func(ctx context.Context, userID string, delta decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Wallet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) AddToBalance(ctx context.Context, userID string, delta decimal.Decimal) error {
	if m.AddToBalanceFn != nil {
		return m.AddToBalanceFn(ctx, userID, delta)
	}
	return nil
}
