package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrPropertyNotFound is returned when a property is not found.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrMissingUserID is returned when an upload carries no usable user_id field.
	ErrMissingUserID = errors.New("user_id required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// UploadFailure is the error envelope for the upload endpoint; the frontend
// keys off the success flag rather than the HTTP status.
type UploadFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewUploadFailure builds the failed-upload envelope.
func NewUploadFailure(message string) UploadFailure {
	return UploadFailure{Success: false, Message: message}
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
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrPropertyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPERTY_NOT_FOUND")
	case errors.Is(err, ErrMissingUserID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_USER_ID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
