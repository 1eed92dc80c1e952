package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Mailer talks to the external email-sending function. The function resolves
// user ids to addresses, so `to` carries the platform user id as-is.
type Mailer struct {
	baseURL string
	client  *http.Client
}

func NewMailer(baseURL string) *Mailer {
	return &Mailer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
	From    string `json:"from,omitempty"`
}

type sendEmailResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// LoanDecision emails the applicant about a status change on their
// application. Callers treat failures as log-and-continue.
func (m *Mailer) LoanDecision(ctx context.Context, userID, applicationID, status string, amount decimal.Decimal, notes string) error {
	subject := fmt.Sprintf("Your loan application has been %s", status)
	text := fmt.Sprintf("Loan application %s (amount %s) is now %s.", applicationID, amount.StringFixed(2), status)
	if notes != "" {
		text += " Reviewer notes: " + notes
	}
	req := sendEmailRequest{
		To:      userID,
		Subject: subject,
		HTML:    "<p>" + text + "</p>",
		Text:    text,
	}
	return m.send(ctx, req)
}

func (m *Mailer) send(ctx context.Context, payload sendEmailRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailer: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	defer resp.Body.Close()

	var out sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("mailer: decode response: %w", err)
	}
	if resp.StatusCode >= 300 || !out.Success {
		if out.Error != "" {
			return fmt.Errorf("mailer: delivery failed: %s", out.Error)
		}
		return fmt.Errorf("mailer: delivery failed with status %d", resp.StatusCode)
	}
	return nil
}
