package wallet

import (
	"context"
	"testing"

	txDomain "investcore-backend/internal/domain/transaction"
	"investcore-backend/internal/domain/uow"
	walletDomain "investcore-backend/internal/domain/wallet"
	"investcore-backend/internal/testutil/txmock"
	"investcore-backend/internal/testutil/uowmock"
	"investcore-backend/internal/testutil/walletmock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUserID = "11111111111111111111111111111111"

func TestOpen(t *testing.T) {
	t.Run("creates empty wallet", func(t *testing.T) {
		var created *walletDomain.Wallet
		wallets := &walletmock.Repo{
			GetByUserIDFn: func(context.Context, string) (*walletDomain.Wallet, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, w *walletDomain.Wallet) error {
				created = w
				return nil
			},
		}
		uc := NewUsecase(wallets, &txmock.Repo{}, uowmock.New())

		w, err := uc.Open(context.Background(), testUserID)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, w.Balance.IsZero())
	})

	t.Run("duplicate wallet", func(t *testing.T) {
		wallets := &walletmock.Repo{
			GetByUserIDFn: func(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
				return &walletDomain.Wallet{UserID: userID}, nil
			},
		}
		uc := NewUsecase(wallets, &txmock.Repo{}, uowmock.New())

		_, err := uc.Open(context.Background(), testUserID)
		assert.ErrorIs(t, err, walletDomain.ErrAlreadyExists)
	})
}

func TestDeposit_FilesPendingWithoutMovingBalance(t *testing.T) {
	balanceTouched := false
	wallets := &walletmock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
			return &walletDomain.Wallet{UserID: userID, Balance: decimal.NewFromInt(100)}, nil
		},
		AddToBalanceFn: func(context.Context, string, decimal.Decimal) error {
			balanceTouched = true
			return nil
		},
	}
	var recorded *txDomain.Transaction
	txs := &txmock.Repo{
		CreateFn: func(ctx context.Context, tx *txDomain.Transaction) error {
			recorded = tx
			return nil
		},
	}
	uc := NewUsecase(wallets, txs, uowmock.New())

	tx, err := uc.Deposit(context.Background(), testUserID, decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.Equal(t, txDomain.StatusPending, tx.Status)
	assert.Equal(t, txDomain.TypeDeposit, tx.Type)
	require.NotNil(t, recorded)
	assert.False(t, balanceTouched, "deposit moved balance before confirmation")
}

func TestDeposit_InvalidAmount(t *testing.T) {
	uc := NewUsecase(&walletmock.Repo{}, &txmock.Repo{}, uowmock.New())
	_, err := uc.Deposit(context.Background(), testUserID, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestConfirmDeposit(t *testing.T) {
	pending := &txDomain.Transaction{
		TxID:   "dddddddddddddddddddddddddddddddd",
		UserID: testUserID,
		Type:   txDomain.TypeDeposit,
		Amount: decimal.NewFromInt(300),
		Status: txDomain.StatusPending,
	}

	t.Run("flips and credits atomically", func(t *testing.T) {
		var credited decimal.Decimal
		wallets := &walletmock.Repo{
			AddToBalanceFn: func(ctx context.Context, userID string, delta decimal.Decimal) error {
				credited = delta
				return nil
			},
		}
		txs := &txmock.Repo{
			GetByTxIDFn: func(context.Context, string) (*txDomain.Transaction, error) {
				cp := *pending
				return &cp, nil
			},
		}
		r := uow.Repos{Wallets: wallets, Transactions: txs}
		uc := NewUsecase(wallets, txs, uowmock.Passthrough(r))

		tx, err := uc.ConfirmDeposit(context.Background(), pending.TxID)
		require.NoError(t, err)
		assert.Equal(t, txDomain.StatusCompleted, tx.Status)
		assert.True(t, credited.Equal(decimal.NewFromInt(300)))
	})

	t.Run("already confirmed", func(t *testing.T) {
		txs := &txmock.Repo{
			GetByTxIDFn: func(context.Context, string) (*txDomain.Transaction, error) {
				cp := *pending
				return &cp, nil
			},
			UpdateStatusIfPendingFn: func(context.Context, string, txDomain.Status) error {
				return txDomain.ErrAlreadyProcessed
			},
		}
		r := uow.Repos{Wallets: &walletmock.Repo{}, Transactions: txs}
		uc := NewUsecase(&walletmock.Repo{}, txs, uowmock.Passthrough(r))

		_, err := uc.ConfirmDeposit(context.Background(), pending.TxID)
		assert.ErrorIs(t, err, txDomain.ErrAlreadyProcessed)
	})

	t.Run("wrong type", func(t *testing.T) {
		txs := &txmock.Repo{
			GetByTxIDFn: func(context.Context, string) (*txDomain.Transaction, error) {
				cp := *pending
				cp.Type = txDomain.TypeWithdrawal
				return &cp, nil
			},
		}
		r := uow.Repos{Wallets: &walletmock.Repo{}, Transactions: txs}
		uc := NewUsecase(&walletmock.Repo{}, txs, uowmock.Passthrough(r))

		_, err := uc.ConfirmDeposit(context.Background(), pending.TxID)
		assert.ErrorIs(t, err, ErrWrongType)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	t.Run("debits up front and files pending", func(t *testing.T) {
		var debited decimal.Decimal
		wallets := &walletmock.Repo{
			GetByUserIDFn: func(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
				return &walletDomain.Wallet{UserID: userID, Balance: decimal.NewFromInt(1000)}, nil
			},
			AddToBalanceFn: func(ctx context.Context, userID string, delta decimal.Decimal) error {
				debited = delta
				return nil
			},
		}
		txs := &txmock.Repo{}
		r := uow.Repos{Wallets: wallets, Transactions: txs}
		uc := NewUsecase(wallets, txs, uowmock.Passthrough(r))

		tx, err := uc.RequestWithdrawal(context.Background(), testUserID, decimal.NewFromInt(400))
		require.NoError(t, err)
		assert.Equal(t, txDomain.StatusPending, tx.Status)
		assert.True(t, debited.Equal(decimal.NewFromInt(400).Neg()), "debited %s", debited)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		wallets := &walletmock.Repo{
			GetByUserIDFn: func(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
				return &walletDomain.Wallet{UserID: userID, Balance: decimal.NewFromInt(100)}, nil
			},
			AddToBalanceFn: func(context.Context, string, decimal.Decimal) error {
				t.Fatal("debited despite insufficient funds")
				return nil
			},
		}
		r := uow.Repos{Wallets: wallets, Transactions: &txmock.Repo{}}
		uc := NewUsecase(wallets, &txmock.Repo{}, uowmock.Passthrough(r))

		_, err := uc.RequestWithdrawal(context.Background(), testUserID, decimal.NewFromInt(400))
		assert.ErrorIs(t, err, walletDomain.ErrInsufficientFunds)
	})
}

func TestReviewWithdrawal(t *testing.T) {
	pending := &txDomain.Transaction{
		TxID:   "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee",
		UserID: testUserID,
		Type:   txDomain.TypeWithdrawal,
		Amount: decimal.NewFromInt(400),
		Status: txDomain.StatusPending,
	}

	t.Run("approve completes without touching balance", func(t *testing.T) {
		wallets := &walletmock.Repo{
			AddToBalanceFn: func(context.Context, string, decimal.Decimal) error {
				t.Fatal("approved withdrawal must not move balance again")
				return nil
			},
		}
		txs := &txmock.Repo{
			GetByTxIDFn: func(context.Context, string) (*txDomain.Transaction, error) {
				cp := *pending
				return &cp, nil
			},
		}
		r := uow.Repos{Wallets: wallets, Transactions: txs}
		uc := NewUsecase(wallets, txs, uowmock.Passthrough(r))

		tx, err := uc.ReviewWithdrawal(context.Background(), pending.TxID, true)
		require.NoError(t, err)
		assert.Equal(t, txDomain.StatusCompleted, tx.Status)
	})

	t.Run("reject returns the held funds", func(t *testing.T) {
		var returned decimal.Decimal
		wallets := &walletmock.Repo{
			AddToBalanceFn: func(ctx context.Context, userID string, delta decimal.Decimal) error {
				returned = delta
				return nil
			},
		}
		txs := &txmock.Repo{
			GetByTxIDFn: func(context.Context, string) (*txDomain.Transaction, error) {
				cp := *pending
				return &cp, nil
			},
		}
		r := uow.Repos{Wallets: wallets, Transactions: txs}
		uc := NewUsecase(wallets, txs, uowmock.Passthrough(r))

		tx, err := uc.ReviewWithdrawal(context.Background(), pending.TxID, false)
		require.NoError(t, err)
		assert.Equal(t, txDomain.StatusRejected, tx.Status)
		assert.True(t, returned.Equal(decimal.NewFromInt(400)), "returned %s", returned)
	})

	t.Run("double review loses on the guard", func(t *testing.T) {
		txs := &txmock.Repo{
			GetByTxIDFn: func(context.Context, string) (*txDomain.Transaction, error) {
				cp := *pending
				return &cp, nil
			},
			UpdateStatusIfPendingFn: func(context.Context, string, txDomain.Status) error {
				return txDomain.ErrAlreadyProcessed
			},
		}
		wallets := &walletmock.Repo{
			AddToBalanceFn: func(context.Context, string, decimal.Decimal) error {
				t.Fatal("funds returned after losing the review race")
				return nil
			},
		}
		r := uow.Repos{Wallets: wallets, Transactions: txs}
		uc := NewUsecase(wallets, txs, uowmock.Passthrough(r))

		_, err := uc.ReviewWithdrawal(context.Background(), pending.TxID, false)
		assert.ErrorIs(t, err, txDomain.ErrAlreadyProcessed)
	})
}
