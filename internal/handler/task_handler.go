package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "focusapp/internal/errors"
	"focusapp/internal/model"
	"focusapp/internal/service"
)

// TaskHandler handles the home page and task mutations.
type TaskHandler struct {
	userService service.UserService
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(userService service.UserService, taskService service.TaskService) *TaskHandler {
	return &TaskHandler{userService: userService, taskService: taskService}
}

// AddTaskRequest represents an add-task form submission.
type AddTaskRequest struct {
	Description string `json:"description" form:"description" validate:"required"`
}

// HomeResponse is the home page payload.
type HomeResponse struct {
	User  *model.User  `json:"user"`
	Tasks []model.Task `json:"tasks"`
}

// Home godoc
// @Summary Home: profile and task list, with lazy daily XP reset
// @Tags tasks
// @Produce json
// @Success 200 {object} HomeResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router / [get]
func (h *TaskHandler) Home(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	user, tasks, err := h.userService.Home(c.Request().Context(), claims.UserID)
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, HomeResponse{User: user, Tasks: tasks})
}

// Add godoc
// @Summary Add a task
// @Tags tasks
// @Accept x-www-form-urlencoded
// @Param description formData string true "Task description"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /add_task [post]
func (h *TaskHandler) Add(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req AddTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.taskService.Add(c.Request().Context(), claims.UserID, req.Description); err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// Toggle godoc
// @Summary Toggle a task's completed flag
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /toggle_task/{id} [get]
func (h *TaskHandler) Toggle(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	taskID, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	// A foreign or unknown task id matches nothing; that is still success.
	if err := h.taskService.Toggle(c.Request().Context(), taskID, claims.UserID); err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /delete_task/{id} [get]
func (h *TaskHandler) Delete(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	taskID, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), taskID, claims.UserID); err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// Clear godoc
// @Summary Delete all of the user's tasks
// @Tags tasks
// @Success 302
// @Router /clear_tasks [get]
func (h *TaskHandler) Clear(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Clear(c.Request().Context(), claims.UserID); err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// parseID parses a numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
