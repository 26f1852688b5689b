package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/castlewars/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidRules    = "INVALID_RULES"
	CodeInvalidUnitType = "INVALID_UNIT_TYPE"
	CodeMatchNotFound   = "MATCH_NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status WriteError would use for err
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// From returns the error body WriteError would send for err
func From(err error) APIError {
	return toHTTPError(err).apiError
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrInvalidRules):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRules, err.Error()}}
	case errors.Is(err, model.ErrInvalidUnitType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidUnitType, "Unknown unit type"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
