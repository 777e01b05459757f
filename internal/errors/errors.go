package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any failed login attempt. The
	// message is deliberately identical for unknown email, inactive account
	// and wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenInvalid is returned when a token's signature or shape is bad.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMissing is returned when no token was presented.
	ErrTokenMissing = errors.New("no token provided")
	// ErrStoreUnavailable is returned when the database cannot be reached.
	ErrStoreUnavailable = errors.New("database connection not available")
	// ErrEmailTaken is returned when creating an admin with an existing email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Token errors are not
// distinguished externally: expired and malformed both map to TOKEN_INVALID.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrTokenMissing):
		return NewHTTPError(http.StatusUnauthorized, ErrTokenMissing.Error(), "TOKEN_MISSING")
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, ErrTokenInvalid.Error(), "TOKEN_INVALID")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrStoreUnavailable.Error(), "STORE_UNAVAILABLE")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
