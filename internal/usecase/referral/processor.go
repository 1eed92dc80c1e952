package referral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"investcore-backend/internal/domain/reward"
	"investcore-backend/internal/domain/transaction"
	"investcore-backend/internal/domain/uow"
	"investcore-backend/internal/domain/wallet"
	"investcore-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Business constants carried over as-is from the platform's affiliate rules.
var (
	// BonusThreshold is the minimum commitment fee that earns the referrer a bonus.
	BonusThreshold = decimal.NewFromInt(688)
	// BonusAmount is the fixed credit paid per qualifying referral.
	BonusAmount = decimal.NewFromInt(250)
)

type ProcessInput struct {
	ReferrerID          string
	SourceApplicationID string
	CommitmentFee       decimal.Decimal
}

type Processor struct {
	uow uow.UnitOfWork
}

func NewProcessor(tx uow.UnitOfWork) *Processor { return &Processor{uow: tx} }

// Process pays the referral bonus when the referred applicant's commitment
// fee clears the threshold. Below-threshold fees are a defined no-op, not an
// error. The wallet credit, the bonus transaction and the reward row are one
// unit of work; a failure anywhere leaves nothing applied.
func (p *Processor) Process(ctx context.Context, in ProcessInput) (bool, error) {
	if in.CommitmentFee.LessThan(BonusThreshold) {
		return false, nil
	}
	if p.uow == nil {
		return false, errors.New("referral processor: missing unit of work")
	}

	err := p.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Wallets.AddToBalance(ctx, in.ReferrerID, BonusAmount); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return wallet.ErrNotFound
			}
			return fmt.Errorf("referral bonus: credit wallet: %w", err)
		}
		t := &transaction.Transaction{
			TxID:        id.NewID32(),
			UserID:      in.ReferrerID,
			Type:        transaction.TypeBonus,
			Amount:      BonusAmount,
			Status:      transaction.StatusCompleted,
			Description: fmt.Sprintf("Referral bonus: referred commitment fee of %s cleared the qualifying threshold", in.CommitmentFee.StringFixed(2)),
		}
		if err := r.Transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("referral bonus: record transaction: %w", err)
		}
		now := time.Now().UTC()
		rw := &reward.AffiliateReward{
			RewardID:            id.NewID32(),
			UserID:              in.ReferrerID,
			SourceApplicationID: in.SourceApplicationID,
			Amount:              BonusAmount,
			Level:               1,
			Status:              reward.StatusProcessed,
			ProcessedAt:         &now,
		}
		if err := r.Rewards.Create(ctx, rw); err != nil {
			return fmt.Errorf("referral bonus: record reward: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
