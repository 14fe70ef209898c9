package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"focusapp/internal/auth"
	apperrors "focusapp/internal/errors"
)

// sessionClaims pulls the parsed session claims the auth middleware stored
// on the request context.
func sessionClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return claims, nil
}

// errorResponse maps a domain error onto the standard error payload.
func errorResponse(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
