package wallet

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("wallet not found")
	ErrAlreadyExists     = errors.New("wallet already exists")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// Wallet holds one balance per user. Mutated only by server-side financial
// operations; balance changes go through Repository.AddToBalance so the
// store applies them as a single atomic increment.
type Wallet struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	UserID         string          `gorm:"size:32;uniqueIndex:ux_wallets_user_id" json:"user_id"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,4)" json:"balance"`
	AccruedProfits decimal.Decimal `gorm:"type:decimal(20,4);column:accrued_profits" json:"accrued_profits"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }
