package captcha

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrVerificationFailed = errors.New("captcha verification failed")

// Client calls the external captcha-verification function, which validates
// the token against the third-party secret server-side.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyRequest struct {
	CaptchaToken string `json:"captchaToken"`
}

type verifyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (c *Client) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrVerificationFailed
	}
	body, err := json.Marshal(verifyRequest{CaptchaToken: token})
	if err != nil {
		return fmt.Errorf("captcha: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("captcha: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("captcha: verify: %w", err)
	}
	defer resp.Body.Close()

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("captcha: decode response: %w", err)
	}
	if resp.StatusCode >= 300 || !out.Success {
		return ErrVerificationFailed
	}
	return nil
}
