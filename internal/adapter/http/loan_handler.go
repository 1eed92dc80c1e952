package http

import (
	"net/http"

	"investcore-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type submitLoanReq struct {
	UserID     string  `json:"user_id"     validate:"required,hex32"`
	ReferrerID string  `json:"referrer_id" validate:"omitempty,hex32"`
	Amount     float64 `json:"amount"      validate:"required,gt=0,dec2"`
	Purpose    string  `json:"purpose"`
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), loan.SubmitInput{
		UserID:     req.UserID,
		ReferrerID: req.ReferrerID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Purpose:    req.Purpose,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	applicationID := c.Param("application_id")
	dto, err := h.uc.Get(c.Request().Context(), applicationID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListUserLoans(c echo.Context) error {
	userID := c.Param("user_id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	dtos, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

// ListAllLoans serves the admin console review queue.
func (h *LoanHandler) ListAllLoans(c echo.Context) error {
	dtos, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}
