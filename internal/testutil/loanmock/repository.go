package loanmock

import (
	"context"

	domain "investcore-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn    func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByUserIDFn          func(ctx context.Context, userID string) ([]domain.Application, error)
	ListAllFn               func(ctx context.Context) ([]domain.Application, error)
	UpdateStatusIfPendingFn func(ctx context.Context, applicationID string, newStatus domain.Status, adminID, notes string) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) UpdateStatusIfPending(ctx context.Context, applicationID string, newStatus domain.Status, adminID, notes string) error {
	if m.UpdateStatusIfPendingFn != nil {
		return m.UpdateStatusIfPendingFn(ctx, applicationID, newStatus, adminID, notes)
	}
	return nil
}
