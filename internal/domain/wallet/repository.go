package wallet

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	GetByUserID(ctx context.Context, userID string) (*Wallet, error)
	// AddToBalance applies delta as an atomic in-store increment
	// (UPDATE ... SET balance = balance + ?), never read-modify-write.
	// Negative delta debits. Zero rows affected means ErrNotFound.
	AddToBalance(ctx context.Context, userID string, delta decimal.Decimal) error
}
