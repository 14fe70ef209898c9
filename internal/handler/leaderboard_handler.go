package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"focusapp/internal/service"
)

// LeaderboardHandler serves the XP leaderboard.
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Top godoc
// @Summary Top 10 users by XP
// @Tags leaderboard
// @Produce json
// @Success 200 {array} service.LeaderboardEntry
// @Failure 500 {object} errors.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Top(c echo.Context) error {
	if _, err := sessionClaims(c); err != nil {
		return err
	}

	entries, err := h.leaderboardService.Top(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, entries)
}
