package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("loan application not found")
	ErrAlreadyProcessed = errors.New("loan application already processed")
	ErrInvalidInput     = errors.New("invalid loan application input")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_loan_applications_app_id" json:"application_id"`
	UserID        string `gorm:"size:32;index:idx_loan_applications_user" json:"user_id"`
	// ReferrerID is captured at submission; empty when the applicant was not referred.
	ReferrerID string          `gorm:"size:32" json:"referrer_id,omitempty"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4)" json:"amount"`
	Purpose    string          `gorm:"type:text" json:"purpose"`
	Status     Status          `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	AdminNotes string          `gorm:"type:text" json:"admin_notes,omitempty"`
	ApprovedBy string          `gorm:"size:32" json:"approved_by,omitempty"`
	ApprovedAt *time.Time      `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
