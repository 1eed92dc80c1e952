package http

import (
	"net/http"

	"investcore-backend/internal/domain/reward"

	"github.com/labstack/echo/v4"
)

type RewardHandler struct{ repo reward.Repository }

func NewRewardHandler(repo reward.Repository) *RewardHandler { return &RewardHandler{repo: repo} }

func (h *RewardHandler) ListUserRewards(c echo.Context) error {
	userID := c.Param("user_id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	rewards, err := h.repo.ListByUserID(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rewards)
}
