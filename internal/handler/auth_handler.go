package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"focusapp/internal/auth"
	"focusapp/internal/service"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup form submission.
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignupForm godoc
// @Summary Signup form placeholder
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /signup [get]
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "POST username and password to /signup",
	})
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password); err != nil {
		return errorResponse(err)
	}

	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm godoc
// @Summary Login form placeholder
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "POST username and password to /login",
	})
}

// Login godoc
// @Summary Log in and establish a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errorResponse(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// @Summary Clear the session
// @Tags auth
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if claims, err := sessionClaims(c); err == nil {
		_ = h.authService.Logout(c.Request().Context(), claims.ID, claims.ExpiresAt.Time)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, "/login")
}
