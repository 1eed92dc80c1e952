package wallet

import (
	"context"
	"errors"
	"fmt"

	txDomain "investcore-backend/internal/domain/transaction"
	"investcore-backend/internal/domain/uow"
	walletDomain "investcore-backend/internal/domain/wallet"
	"investcore-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrWrongType      = errors.New("transaction is not of the expected type")
	ErrInvalidDecider = errors.New("review decision must be approve or reject")
)

type Usecase struct {
	wallets walletDomain.Repository
	txs     txDomain.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(w walletDomain.Repository, t txDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{wallets: w, txs: t, uow: tx}
}

// Open creates an empty wallet for the user.
func (u *Usecase) Open(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
	if len(userID) != 32 {
		return nil, walletDomain.ErrNotFound
	}
	if _, err := u.wallets.GetByUserID(ctx, userID); err == nil {
		return nil, walletDomain.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	w := &walletDomain.Wallet{
		UserID:         userID,
		Balance:        decimal.Zero,
		AccruedProfits: decimal.Zero,
	}
	if err := u.wallets.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	return w, nil
}

func (u *Usecase) GetBalance(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
	w, err := u.wallets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, walletDomain.ErrNotFound
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return w, nil
}

func (u *Usecase) History(ctx context.Context, userID string, limit, offset int) ([]txDomain.Transaction, error) {
	if _, err := u.GetBalance(ctx, userID); err != nil {
		return nil, err
	}
	out, err := u.txs.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("transaction history: %w", err)
	}
	return out, nil
}

// Deposit files a pending deposit; the balance moves only once an admin
// confirms it.
func (u *Usecase) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*txDomain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if _, err := u.GetBalance(ctx, userID); err != nil {
		return nil, err
	}
	t := &txDomain.Transaction{
		TxID:        id.NewID32(),
		UserID:      userID,
		Type:        txDomain.TypeDeposit,
		Amount:      amount,
		Status:      txDomain.StatusPending,
		Description: "Deposit awaiting confirmation",
	}
	if err := u.txs.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	return t, nil
}

// ConfirmDeposit flips the pending deposit to completed and credits the
// wallet in the same unit of work.
func (u *Usecase) ConfirmDeposit(ctx context.Context, txID string) (*txDomain.Transaction, error) {
	var out *txDomain.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Transactions.GetByTxID(ctx, txID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return txDomain.ErrNotFound
			}
			return err
		}
		if t.Type != txDomain.TypeDeposit {
			return ErrWrongType
		}
		if err := r.Transactions.UpdateStatusIfPending(ctx, txID, txDomain.StatusCompleted); err != nil {
			return err
		}
		if err := r.Wallets.AddToBalance(ctx, t.UserID, t.Amount); err != nil {
			return fmt.Errorf("confirm deposit: credit wallet: %w", err)
		}
		t.Status = txDomain.StatusCompleted
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RequestWithdrawal debits the wallet up front and files the withdrawal as
// pending; a rejected review returns the funds.
func (u *Usecase) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*txDomain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	var out *txDomain.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.Wallets.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return walletDomain.ErrNotFound
			}
			return err
		}
		if w.Balance.LessThan(amount) {
			return walletDomain.ErrInsufficientFunds
		}
		if err := r.Wallets.AddToBalance(ctx, userID, amount.Neg()); err != nil {
			return fmt.Errorf("request withdrawal: debit wallet: %w", err)
		}
		t := &txDomain.Transaction{
			TxID:        id.NewID32(),
			UserID:      userID,
			Type:        txDomain.TypeWithdrawal,
			Amount:      amount,
			Status:      txDomain.StatusPending,
			Description: "Withdrawal awaiting review",
		}
		if err := r.Transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("request withdrawal: record transaction: %w", err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewWithdrawal settles a pending withdrawal: approve completes it,
// reject flips it and returns the held funds atomically with the flip.
func (u *Usecase) ReviewWithdrawal(ctx context.Context, txID string, approve bool) (*txDomain.Transaction, error) {
	var out *txDomain.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Transactions.GetByTxID(ctx, txID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return txDomain.ErrNotFound
			}
			return err
		}
		if t.Type != txDomain.TypeWithdrawal {
			return ErrWrongType
		}
		newStatus := txDomain.StatusCompleted
		if !approve {
			newStatus = txDomain.StatusRejected
		}
		if err := r.Transactions.UpdateStatusIfPending(ctx, txID, newStatus); err != nil {
			return err
		}
		if !approve {
			if err := r.Wallets.AddToBalance(ctx, t.UserID, t.Amount); err != nil {
				return fmt.Errorf("review withdrawal: return funds: %w", err)
			}
		}
		t.Status = newStatus
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
