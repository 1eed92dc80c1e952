package mysql

import (
	"context"

	txDomain "investcore-backend/internal/domain/transaction"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) GetByTxID(ctx context.Context, txID string) (*txDomain.Transaction, error) {
	var out txDomain.Transaction
	res := r.db.WithContext(ctx).Where("tx_id = ?", txID).First(&out)
	return &out, res.Error
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	res := q.Find(&out)
	return out, res.Error
}

// UpdateStatusIfPending flips a pending deposit/withdrawal during admin
// review; the same zero-rows-affected contract as the loan status guard.
func (r *TransactionRepository) UpdateStatusIfPending(ctx context.Context, txID string, newStatus txDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Where("tx_id = ? AND status = ?", txID, txDomain.StatusPending).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return txDomain.ErrAlreadyProcessed
	}
	return nil
}
