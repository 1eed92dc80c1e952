package reward

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("affiliate reward not found")

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
)

type AffiliateReward struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	RewardID string `gorm:"size:32;uniqueIndex:ux_affiliate_rewards_reward_id" json:"reward_id"`
	// UserID is the referrer receiving the reward.
	UserID              string          `gorm:"size:32;index:idx_affiliate_rewards_user" json:"user_id"`
	SourceApplicationID string          `gorm:"size:32;column:source_application_id" json:"source_application_id"`
	Amount              decimal.Decimal `gorm:"type:decimal(20,4)" json:"amount"`
	Level               int             `gorm:"column:level" json:"level"`
	Status              Status          `gorm:"type:enum('pending','processed');default:'pending'" json:"status"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	ProcessedAt         *time.Time      `gorm:"column:processed_at" json:"processed_at,omitempty"`
}

func (AffiliateReward) TableName() string { return "affiliate_rewards" }
