package http

import (
	"context"
	"net/http"

	"investcore-backend/internal/adapter/middleware"
	"investcore-backend/internal/usecase/decision"

	"github.com/labstack/echo/v4"
)

type DecisionHandler struct{ uc *decision.Usecase }

func NewDecisionHandler(uc *decision.Usecase) *DecisionHandler { return &DecisionHandler{uc: uc} }

type decideLoanReq struct {
	Notes string `json:"notes"`
}

func (h *DecisionHandler) ApproveLoan(c echo.Context) error { return h.decide(c, h.uc.Approve) }

func (h *DecisionHandler) RejectLoan(c echo.Context) error { return h.decide(c, h.uc.Reject) }

func (h *DecisionHandler) decide(c echo.Context, do func(context.Context, decision.DecideInput) (*decision.DecisionDTO, error)) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req decideLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := do(c.Request().Context(), decision.DecideInput{
		ApplicationID: applicationID,
		AdminID:       middleware.AdminID(c),
		Notes:         req.Notes,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
