package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken is returned when signing up with an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound is returned when a friend request targets an unknown user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfFriendRequest is returned when a user sends a friend request to themselves.
	ErrSelfFriendRequest = errors.New("cannot add yourself as a friend")
	// ErrAlreadyRelated is returned when a friendship row already connects the two users.
	ErrAlreadyRelated = errors.New("already friends or request pending")
	// ErrNotFriends is returned when viewing tasks of a user with no relationship.
	ErrNotFriends = errors.New("not friends")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUsernameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrSelfFriendRequest:
		return NewHTTPError(http.StatusConflict, err.Error(), "SELF_FRIEND_REQUEST")
	case ErrAlreadyRelated:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_RELATED")
	case ErrNotFriends:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_FRIENDS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
