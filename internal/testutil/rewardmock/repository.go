package rewardmock

import (
	"context"

	domain "investcore-backend/internal/domain/reward"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, r *domain.AffiliateReward) error
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.AffiliateReward, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.AffiliateReward) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.AffiliateReward, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}
