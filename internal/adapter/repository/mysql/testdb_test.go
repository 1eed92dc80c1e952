package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type loanSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	ApplicationID string          `gorm:"size:32;column:application_id"`
	UserID        string          `gorm:"size:32;column:user_id"`
	ReferrerID    string          `gorm:"size:32;column:referrer_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);column:amount"`
	Purpose       string          `gorm:"column:purpose"`
	Status        string          `gorm:"type:text;column:status"` // ← no enum
	AdminNotes    string          `gorm:"column:admin_notes"`
	ApprovedBy    string          `gorm:"size:32;column:approved_by"`
	ApprovedAt    *time.Time      `gorm:"column:approved_at"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loan_applications" }

type walletSQLite struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	UserID         string          `gorm:"size:32;column:user_id"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,4);column:balance"`
	AccruedProfits decimal.Decimal `gorm:"type:decimal(20,4);column:accrued_profits"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (walletSQLite) TableName() string { return "wallets" }

type transactionSQLite struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	TxID        string          `gorm:"size:32;column:tx_id"`
	UserID      string          `gorm:"size:32;column:user_id"`
	Type        string          `gorm:"type:text;column:type"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);column:amount"`
	Status      string          `gorm:"type:text;column:status"`
	Description string          `gorm:"column:description"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

type rewardSQLite struct {
	ID                  uint64          `gorm:"primaryKey;column:id"`
	RewardID            string          `gorm:"size:32;column:reward_id"`
	UserID              string          `gorm:"size:32;column:user_id"`
	SourceApplicationID string          `gorm:"size:32;column:source_application_id"`
	Amount              decimal.Decimal `gorm:"type:decimal(20,4);column:amount"`
	Level               int             `gorm:"column:level"`
	Status              string          `gorm:"type:text;column:status"`
	CreatedAt           time.Time       `gorm:"column:created_at"`
	ProcessedAt         *time.Time      `gorm:"column:processed_at"`
}

func (rewardSQLite) TableName() string { return "affiliate_rewards" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(&loanSQLite{}, &walletSQLite{}, &transactionSQLite{}, &rewardSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
