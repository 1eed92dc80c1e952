package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	UserID     string
	ReferrerID string
	Amount     decimal.Decimal
	Purpose    string
}

type ApplicationDTO struct {
	ApplicationID string          `json:"application_id"`
	UserID        string          `json:"user_id"`
	ReferrerID    string          `json:"referrer_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Purpose       string          `json:"purpose"`
	Status        string          `json:"status"`
	AdminNotes    string          `json:"admin_notes,omitempty"`
	ApprovedBy    string          `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
