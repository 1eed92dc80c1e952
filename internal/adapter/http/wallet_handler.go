package http

import (
	"net/http"
	"strconv"

	"investcore-backend/internal/usecase/wallet"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

type openWalletReq struct {
	UserID string `json:"user_id" validate:"required,hex32"`
}

func (h *WalletHandler) OpenWallet(c echo.Context) error {
	var req openWalletReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	w, err := h.uc.Open(c.Request().Context(), req.UserID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID := c.Param("user_id")
	w, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WalletHandler) ListTransactions(c echo.Context) error {
	userID := c.Param("user_id")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	txs, err := h.uc.History(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, txs)
}

type fundsReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *WalletHandler) Deposit(c echo.Context) error {
	userID := c.Param("user_id")
	var req fundsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.Deposit(c.Request().Context(), userID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *WalletHandler) RequestWithdrawal(c echo.Context) error {
	userID := c.Param("user_id")
	var req fundsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.RequestWithdrawal(c.Request().Context(), userID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *WalletHandler) ConfirmDeposit(c echo.Context) error {
	txID := c.Param("tx_id")
	t, err := h.uc.ConfirmDeposit(c.Request().Context(), txID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

type reviewWithdrawalReq struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

func (h *WalletHandler) ReviewWithdrawal(c echo.Context) error {
	txID := c.Param("tx_id")
	var req reviewWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.ReviewWithdrawal(c.Request().Context(), txID, req.Decision == "approve")
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}
