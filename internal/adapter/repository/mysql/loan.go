package mysql

import (
	"context"
	"time"

	loanDomain "investcore-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) GetByApplicationID(ctx context.Context, applicationID string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByUserID(ctx context.Context, userID string) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// UpdateStatusIfPending is the conditional update guarding the loan state
// machine: the WHERE clause matches only while status is still pending, so
// a second reviewer's update affects zero rows.
func (r *LoanRepository) UpdateStatusIfPending(ctx context.Context, applicationID string, newStatus loanDomain.Status, adminID, notes string) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Application{}).
		Where("application_id = ? AND status = ?", applicationID, loanDomain.StatusPending).
		Updates(map[string]any{
			"status":      newStatus,
			"admin_notes": notes,
			"approved_by": adminID,
			"approved_at": now,
			"updated_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrAlreadyProcessed
	}
	return nil
}
