package loan

import (
	"context"
	"errors"
	"fmt"

	"investcore-backend/internal/domain/loan"
	"investcore-backend/internal/domain/transaction"
	"investcore-backend/internal/domain/uow"
	"investcore-backend/internal/domain/wallet"
	"investcore-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// listAllAttempts: the admin listing retries on store failure, no backoff.
const listAllAttempts = 3

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Submit collects the commitment fee and files the application as pending,
// all in one unit of work: the fee debit, its audit record and the new
// application row commit or roll back together.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if in.UserID == "" || len(in.UserID) != 32 || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, loan.ErrInvalidInput
	}
	if u.uow == nil {
		return nil, errors.New("loan usecase: missing unit of work")
	}

	app := &loan.Application{
		ApplicationID: id.NewID32(),
		UserID:        in.UserID,
		ReferrerID:    in.ReferrerID,
		Amount:        in.Amount,
		Purpose:       in.Purpose,
		Status:        loan.StatusPending,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.Wallets.GetByUserID(ctx, in.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return wallet.ErrNotFound
			}
			return fmt.Errorf("submit: load wallet: %w", err)
		}
		if w.Balance.LessThan(in.Amount) {
			return wallet.ErrInsufficientFunds
		}
		if err := r.Wallets.AddToBalance(ctx, in.UserID, in.Amount.Neg()); err != nil {
			return fmt.Errorf("submit: debit commitment fee: %w", err)
		}
		fee := &transaction.Transaction{
			TxID:        id.NewID32(),
			UserID:      in.UserID,
			Type:        transaction.TypeFee,
			Amount:      in.Amount,
			Status:      transaction.StatusCompleted,
			Description: fmt.Sprintf("Commitment fee for loan application %s", app.ApplicationID),
		}
		if err := r.Transactions.Create(ctx, fee); err != nil {
			return fmt.Errorf("submit: record commitment fee: %w", err)
		}
		if err := r.Loans.Create(ctx, app); err != nil {
			return fmt.Errorf("submit: create application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(app), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID string) ([]ApplicationDTO, error) {
	apps, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

// ListAll serves the admin console; the store call is retried because the
// console treats a failed listing as fatal to the review workflow.
func (u *Usecase) ListAll(ctx context.Context) ([]ApplicationDTO, error) {
	var lastErr error
	for attempt := 0; attempt < listAllAttempts; attempt++ {
		apps, err := u.repo.ListAll(ctx)
		if err == nil {
			return toDTOs(apps), nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("list loan applications: %w", lastErr)
}

func toDTO(a *loan.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID: a.ApplicationID,
		UserID:        a.UserID,
		ReferrerID:    a.ReferrerID,
		Amount:        a.Amount,
		Purpose:       a.Purpose,
		Status:        string(a.Status),
		AdminNotes:    a.AdminNotes,
		ApprovedBy:    a.ApprovedBy,
		ApprovedAt:    a.ApprovedAt,
		CreatedAt:     a.CreatedAt,
	}
}

func toDTOs(apps []loan.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out
}
