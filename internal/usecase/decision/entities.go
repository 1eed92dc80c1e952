package decision

import (
	"time"

	"github.com/shopspring/decimal"
)

type DecideInput struct {
	ApplicationID string
	AdminID       string
	Notes         string
}

type DecisionDTO struct {
	ApplicationID string          `json:"application_id"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	AdminNotes    string          `json:"admin_notes,omitempty"`
	DecidedBy     string          `json:"decided_by"`
	DecidedAt     time.Time       `json:"decided_at"`
}
