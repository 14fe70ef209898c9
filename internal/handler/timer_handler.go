package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"focusapp/internal/service"
)

// TimerHandler handles focus timer start and end.
type TimerHandler struct {
	timerService service.TimerService
}

// NewTimerHandler creates a new timer handler.
func NewTimerHandler(timerService service.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

// StartTimerRequest represents a start-timer form submission. FriendID is
// optional and deliberately unchecked against the friends list.
type StartTimerRequest struct {
	Minutes  int   `json:"minutes" form:"minutes" validate:"required,min=1"`
	FriendID *uint `json:"friend_id,omitempty" form:"friend_id"`
}

// EndTimerRequest represents an end-timer form submission.
type EndTimerRequest struct {
	Focused string `json:"focused" form:"focused" validate:"required,oneof=yes no"`
	Reason  string `json:"reason" form:"reason"`
	Minutes int    `json:"minutes" form:"minutes" validate:"min=0"`
}

// Start godoc
// @Summary Start a focus timer session
// @Tags timer
// @Accept x-www-form-urlencoded
// @Param minutes formData int true "Planned minutes"
// @Param friend_id formData int false "Friend to share the timer with"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /start_timer [post]
func (h *TimerHandler) Start(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req StartTimerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sessionID, err := h.timerService.Start(c.Request().Context(), claims.UserID, req.Minutes, req.FriendID)
	if err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/?session_id=%d", sessionID))
}

// End godoc
// @Summary End a focus timer session and credit XP if focused
// @Tags timer
// @Accept x-www-form-urlencoded
// @Param session_id path int true "Session ID"
// @Param focused formData string true "yes or no"
// @Param reason formData string false "Distraction reason"
// @Param minutes formData int false "Minutes elapsed"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /end_timer/{session_id} [post]
func (h *TimerHandler) End(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	sessionID, err := parseID(c.Param("session_id"))
	if err != nil {
		return err
	}

	var req EndTimerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	focused := req.Focused == "yes"
	if err := h.timerService.End(c.Request().Context(), claims.UserID, sessionID, focused, req.Reason, req.Minutes); err != nil {
		return errorResponse(err)
	}

	return c.NoContent(http.StatusNoContent)
}
