package mysql

import (
	"context"
	"time"

	walletDomain "investcore-backend/internal/domain/wallet"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

func (r *WalletRepository) Create(ctx context.Context, w *walletDomain.Wallet) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
	var out walletDomain.Wallet
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

// AddToBalance applies the delta in-store so concurrent credits and debits
// on the same wallet serialize at the database instead of losing updates.
func (r *WalletRepository) AddToBalance(ctx context.Context, userID string, delta decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&walletDomain.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrNotFound
	}
	return nil
}
