package errors

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyExists is returned when registering an email that is taken.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrWeakPassword is returned when a password fails the store's policy.
	ErrWeakPassword = errors.New("password does not meet policy requirements")
	// ErrSigningSecret is returned when the token signing secret is missing or too short.
	ErrSigningSecret = errors.New("jwt signing secret missing or too short")
	// ErrMissingSubject is returned when verified claims carry no subject.
	ErrMissingSubject = errors.New("token has no subject claim")
	// ErrUserNotFound is returned when a token subject no longer maps to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable wraps unexpected persistence failures.
	ErrStoreUnavailable = errors.New("credential store unavailable")
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	TraceID string `json:"trace_id,omitempty"`
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

// ToErrorResponse converts an HTTPError to an ErrorResponse. Internal errors
// get a trace id so operators can correlate with server-side logs without the
// body leaking any detail.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	resp := ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
	if e.StatusCode >= http.StatusInternalServerError {
		resp.TraceID = uuid.New().String()
	}
	return resp
}

// MapErrorToHTTP maps domain errors to HTTP errors. Identity-resolution
// failures map to 401, never 404, so resource existence is not leaked.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, "User already exists!", "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, "Invalid email or password!", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, "User creation failed! Please check user details and try again.", "USER_CREATION_FAILED")
	case errors.Is(err, ErrMissingSubject), errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, "product not found", "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, "category not found", "CATEGORY_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
