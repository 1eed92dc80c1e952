package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("transaction not found")
	ErrAlreadyProcessed = errors.New("transaction already processed")
)

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeInvestment Type = "investment"
	TypeProfit     Type = "profit"
	TypeFee        Type = "fee"
	TypeBonus      Type = "bonus"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusRejected  Status = "rejected"
	StatusFailed    Status = "failed"
)

// Transaction is the append-only audit trail. Rows are never updated after
// creation except the pending→completed/rejected flip during admin review
// of deposits and withdrawals.
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	TxID        string          `gorm:"size:32;uniqueIndex:ux_transactions_tx_id" json:"tx_id"`
	UserID      string          `gorm:"size:32;index:idx_transactions_user" json:"user_id"`
	Type        Type            `gorm:"type:enum('deposit','withdrawal','investment','profit','fee','bonus')" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4)" json:"amount"`
	Status      Status          `gorm:"type:enum('completed','pending','rejected','failed');default:'pending'" json:"status"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
