package decision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"investcore-backend/internal/domain/loan"
	"investcore-backend/internal/domain/transaction"
	"investcore-backend/internal/domain/uow"
	"investcore-backend/internal/usecase/referral"
	"investcore-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Notifier dispatches status-change emails. Delivery is best effort: the
// engine logs failures and never fails a decision over one.
type Notifier interface {
	LoanDecision(ctx context.Context, userID, applicationID, status string, amount decimal.Decimal, notes string) error
}

// BonusProcessor pays referral bonuses; satisfied by *referral.Processor.
type BonusProcessor interface {
	Process(ctx context.Context, in referral.ProcessInput) (bool, error)
}

type Usecase struct {
	uow      uow.UnitOfWork
	notifier Notifier
	bonus    BonusProcessor
}

func NewUsecase(tx uow.UnitOfWork, n Notifier, b BonusProcessor) *Usecase {
	return &Usecase{uow: tx, notifier: n, bonus: b}
}

// Approve transitions pending → approved. Approval moves no money: the
// commitment fee was already collected at submission. The referral bonus and
// the notification run after commit; either failing is logged as requiring
// reconciliation, not surfaced to the reviewing admin.
func (u *Usecase) Approve(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	app, err := u.decide(ctx, in, loan.StatusApproved, nil)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, app, loan.StatusApproved, in.Notes)

	if u.bonus != nil && app.ReferrerID != "" {
		paid, err := u.bonus.Process(ctx, referral.ProcessInput{
			ReferrerID:          app.ReferrerID,
			SourceApplicationID: app.ApplicationID,
			CommitmentFee:       app.Amount,
		})
		if err != nil {
			log.Printf("reconciliation required: referral bonus failed after approving application %s: %v", app.ApplicationID, err)
		} else if paid {
			log.Printf("referral bonus paid to %s for application %s", app.ReferrerID, app.ApplicationID)
		}
	}

	return toDTO(app, in), nil
}

// Reject transitions pending → rejected and refunds the commitment fee.
// The status guard, the wallet credit and the refund audit record are one
// unit of work, so a rejected application with an un-refunded wallet is not
// a reachable state.
func (u *Usecase) Reject(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	app, err := u.decide(ctx, in, loan.StatusRejected, func(ctx context.Context, r uow.Repos, a *loan.Application) error {
		if err := r.Wallets.AddToBalance(ctx, a.UserID, a.Amount); err != nil {
			return fmt.Errorf("reject: refund commitment fee: %w", err)
		}
		refund := &transaction.Transaction{
			TxID:        id.NewID32(),
			UserID:      a.UserID,
			Type:        transaction.TypeFee,
			Amount:      a.Amount,
			Status:      transaction.StatusCompleted,
			Description: fmt.Sprintf("Commitment fee refund for rejected loan application %s", a.ApplicationID),
		}
		if err := r.Transactions.Create(ctx, refund); err != nil {
			return fmt.Errorf("reject: record refund: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, app, loan.StatusRejected, in.Notes)
	return toDTO(app, in), nil
}

// decide runs the guarded status transition plus any settlement steps in one
// tx. Zero rows affected by the guard means another admin already processed
// the application; that is a definite failure, never a silent success.
func (u *Usecase) decide(ctx context.Context, in DecideInput, newStatus loan.Status, settle func(context.Context, uow.Repos, *loan.Application) error) (*loan.Application, error) {
	if u.uow == nil {
		return nil, errors.New("decision usecase: missing unit of work")
	}

	var app *loan.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Loans.GetByApplicationID(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
		if a.Status.Terminal() {
			return loan.ErrAlreadyProcessed
		}
		if err := r.Loans.UpdateStatusIfPending(ctx, in.ApplicationID, newStatus, in.AdminID, in.Notes); err != nil {
			return err
		}
		if settle != nil {
			if err := settle(ctx, r, a); err != nil {
				return err
			}
		}
		a.Status = newStatus
		a.ApprovedBy = in.AdminID
		a.AdminNotes = in.Notes
		app = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (u *Usecase) notify(ctx context.Context, app *loan.Application, status loan.Status, notes string) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.LoanDecision(ctx, app.UserID, app.ApplicationID, string(status), app.Amount, notes); err != nil {
		log.Printf("notification failed for application %s (%s): %v", app.ApplicationID, status, err)
	}
}

func toDTO(app *loan.Application, in DecideInput) *DecisionDTO {
	return &DecisionDTO{
		ApplicationID: app.ApplicationID,
		UserID:        app.UserID,
		Status:        string(app.Status),
		Amount:        app.Amount,
		AdminNotes:    in.Notes,
		DecidedBy:     in.AdminID,
		DecidedAt:     time.Now().UTC(),
	}
}
