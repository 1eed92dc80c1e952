package uow

import (
	"context"

	"investcore-backend/internal/domain/loan"
	"investcore-backend/internal/domain/reward"
	"investcore-backend/internal/domain/transaction"
	"investcore-backend/internal/domain/wallet"
)

type Repos struct {
	Loans        loan.Repository
	Wallets      wallet.Repository
	Transactions transaction.Repository
	Rewards      reward.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn with all repos bound to one db transaction;
	// any error from fn rolls the whole unit back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
