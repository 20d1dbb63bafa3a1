package clocksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field of the error envelope.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeUnauthenticated      = "unauthenticated"
	ErrorCodeInsufficientScope    = "insufficient_scope"
	ErrorCodeUserNotFound         = "user_not_found"
	ErrorCodeNoLocationConfigured = "no_location_configured"
	ErrorCodeOutsidePerimeter     = "outside_perimeter"
	ErrorCodeAlreadyClockedIn     = "already_clocked_in"
	ErrorCodeNoActiveShift        = "no_active_shift"
	ErrorCodeAlreadyExists        = "already_exists"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeServerError          = "server_error"
)

// APIError is the error envelope every failing endpoint returns. It
// implements the error interface so the SDK client can hand it straight
// back to callers.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description with enough context for the
	// caller to self-correct.
	Message string `json:"message"`

	// DistanceKm and AllowedKm are set on outside_perimeter errors so the
	// caller can show how far off they are.
	DistanceKm *float64 `json:"distance_km,omitempty"`
	AllowedKm  *float64 `json:"allowed_km,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Write writes the error to an HTTP response writer.
func (e *APIError) Write(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// Predefined errors for the common failure modes. Handlers clone and
// specialise the message where extra context helps.
var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required fields",
	}

	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "a valid bearer token is required",
	}

	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeUserNotFound,
		Message:    "no timeclock user matches the authenticated identity",
	}

	ErrNoLocationConfigured = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeNoLocationConfigured,
		Message:    "no geofence location has been configured",
	}

	ErrAlreadyClockedIn = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeAlreadyClockedIn,
		Message:    "you already have an open shift; clock out first",
	}

	ErrNoActiveShift = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeNoActiveShift,
		Message:    "no open shift to clock out of",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "not found",
	}

	ErrAlreadyExists = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeAlreadyExists,
		Message:    "a record with the same identity already exists",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewOutsidePerimeterError builds the perimeter rejection with the computed
// distance and the allowed radius, both in kilometres.
func NewOutsidePerimeterError(distanceKm, allowedKm float64) *APIError {
	return &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeOutsidePerimeter,
		Message: fmt.Sprintf("outside perimeter (%.2f km away, allowed radius %.2f km)",
			distanceKm, allowedKm),
		DistanceKm: &distanceKm,
		AllowedKm:  &allowedKm,
	}
}

// NewValidationError builds an invalid_request error with a specific message.
func NewValidationError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    message,
	}
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(statusCode int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: statusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}
