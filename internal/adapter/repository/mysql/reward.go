package mysql

import (
	"context"

	rewardDomain "investcore-backend/internal/domain/reward"

	"gorm.io/gorm"
)

type RewardRepository struct{ db *gorm.DB }

func NewRewardRepository(db *gorm.DB) *RewardRepository { return &RewardRepository{db: db} }

func (r *RewardRepository) Create(ctx context.Context, rw *rewardDomain.AffiliateReward) error {
	return r.db.WithContext(ctx).Create(rw).Error
}

func (r *RewardRepository) ListByUserID(ctx context.Context, userID string) ([]rewardDomain.AffiliateReward, error) {
	var out []rewardDomain.AffiliateReward
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
