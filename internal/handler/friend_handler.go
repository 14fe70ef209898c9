package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"focusapp/internal/model"
	"focusapp/internal/service"
)

// FriendHandler handles friend requests and friend task visibility.
type FriendHandler struct {
	friendService service.FriendService
}

// NewFriendHandler creates a new friend handler.
func NewFriendHandler(friendService service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// AddFriendRequest represents an add-friend-by-code form submission.
type AddFriendRequest struct {
	FriendID uint `json:"friend_id" form:"friend_id" validate:"required"`
}

// FriendTasksResponse is the read-only view of a friend's task list.
type FriendTasksResponse struct {
	FriendID uint         `json:"friend_id"`
	Tasks    []model.Task `json:"tasks"`
}

// Overview godoc
// @Summary Incoming friend requests and accepted friends
// @Tags friends
// @Produce json
// @Success 200 {object} service.FriendOverview
// @Failure 500 {object} errors.ErrorResponse
// @Router /friends [get]
func (h *FriendHandler) Overview(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	overview, err := h.friendService.Overview(c.Request().Context(), claims.UserID)
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, overview)
}

// AddByCode godoc
// @Summary Send a friend request by user id
// @Tags friends
// @Accept x-www-form-urlencoded
// @Param friend_id formData int true "Target user ID"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /add_friend_by_code [post]
func (h *FriendHandler) AddByCode(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req AddFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.friendService.SendRequest(c.Request().Context(), claims.UserID, req.FriendID); err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, "/friends")
}

// Respond godoc
// @Summary Accept or reject an incoming friend request
// @Tags friends
// @Param id path int true "Request ID"
// @Param action path string true "accept or reject"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /respond_request/{id}/{action} [get]
func (h *FriendHandler) Respond(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	requestID, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	// Anything other than accept/reject falls through to the redirect,
	// matching the silent no-op contract for bad responder input.
	switch action := c.Param("action"); action {
	case "accept", "reject":
		if err := h.friendService.Respond(c.Request().Context(), claims.UserID, requestID, action == "accept"); err != nil {
			return errorResponse(err)
		}
	}

	return c.Redirect(http.StatusFound, "/friends")
}

// FriendTasks godoc
// @Summary View a friend's task list
// @Tags friends
// @Produce json
// @Param friend_id path int true "Friend's user ID"
// @Success 200 {object} FriendTasksResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /friend_tasks/{friend_id} [get]
func (h *FriendHandler) FriendTasks(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	friendID, err := parseID(c.Param("friend_id"))
	if err != nil {
		return err
	}

	tasks, err := h.friendService.FriendTasks(c.Request().Context(), claims.UserID, friendID)
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, FriendTasksResponse{FriendID: friendID, Tasks: tasks})
}
