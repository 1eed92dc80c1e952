package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "investcore-backend/internal/domain/loan"
	"investcore-backend/internal/domain/uow"
	walletDomain "investcore-backend/internal/domain/wallet"
	"investcore-backend/internal/testutil/loanmock"
	"investcore-backend/internal/testutil/txmock"
	"investcore-backend/internal/testutil/uowmock"
	"investcore-backend/internal/testutil/walletmock"
	loanUC "investcore-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newSubmitEnv(balance int64) (*echo.Echo, *LoanHandler) {
	wallets := &walletmock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
			return &walletDomain.Wallet{UserID: userID, Balance: decimal.NewFromInt(balance)}, nil
		},
	}
	loans := &loanmock.Repo{}
	r := uow.Repos{Loans: loans, Wallets: wallets, Transactions: &txmock.Repo{}}
	uc := loanUC.NewUsecase(loans, uowmock.Passthrough(r))

	e := echo.New()
	e.Validator = NewValidator()
	return e, NewLoanHandler(uc)
}

func doJSON(e *echo.Echo, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestSubmitLoan_HappyPath(t *testing.T) {
	e, h := newSubmitEnv(10000)

	body := `{"user_id":"` + strings.Repeat("a", 32) + `","amount":5000,"purpose":"Proposed investment of 5000"}`
	rec := doJSON(e, h.SubmitLoan, http.MethodPost, "/loans", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto loanUC.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != "pending" || len(dto.ApplicationID) != 32 {
		t.Errorf("unexpected dto: %+v", dto)
	}
}

func TestSubmitLoan_ValidationFailures(t *testing.T) {
	e, h := newSubmitEnv(10000)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing user id", `{"amount":5000}`, "UserID"},
		{"bad user id", `{"user_id":"nope","amount":5000}`, "UserID"},
		{"zero amount", `{"user_id":"` + strings.Repeat("a", 32) + `"}`, "Amount"},
		{"too many decimals", `{"user_id":"` + strings.Repeat("a", 32) + `","amount":10.123}`, "Amount"},
		{"bad referrer", `{"user_id":"` + strings.Repeat("a", 32) + `","referrer_id":"XYZ","amount":100}`, "ReferrerID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, h.SubmitLoan, http.MethodPost, "/loans", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			found := false
			for _, fe := range resp.Details {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected detail for %s, got %+v", tt.field, resp.Details)
			}
		})
	}
}

func TestSubmitLoan_InsufficientBalance(t *testing.T) {
	e, h := newSubmitEnv(100)

	body := `{"user_id":"` + strings.Repeat("a", 32) + `","amount":5000}`
	rec := doJSON(e, h.SubmitLoan, http.MethodPost, "/loans", body)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "insufficient") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGetLoan_NotFound(t *testing.T) {
	loans := &loanmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return nil, domain.ErrNotFound
		},
	}
	uc := loanUC.NewUsecase(loans, uowmock.New())
	e := echo.New()
	h := NewLoanHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/loans/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(strings.Repeat("f", 32))
	_ = h.GetLoan(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
