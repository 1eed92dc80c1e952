package reward

import "context"

type Repository interface {
	Create(ctx context.Context, r *AffiliateReward) error
	ListByUserID(ctx context.Context, userID string) ([]AffiliateReward, error)
}
