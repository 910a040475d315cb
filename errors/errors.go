// Package errors provides the error handling system for the travel planner API.
// It defines typed API errors, renders them as JSON bodies, and integrates
// with Uber's zap logger for error reporting.
//
// Every error body carries an "error" field holding the user-facing message,
// so clients only need to read one key:
//
//	{"error": "All fields are required!", "type": "invalid_input", "request_id": "..."}
//
// Handlers that wrap an underlying cause build the error with a constructor
// from types.go and write it:
//
//	err := errors.NewUpstreamError(requestID, completionErr)
//	errors.LogError(logger, err, requestID)
//	errors.WriteError(w, err)
//
// Error is the drop-in replacement for http.Error when there is no cause:
//
//	errors.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// DefaultLogger is used by LogError when it is given a nil logger.
// It is initialized to a production configuration but can be overridden using SetLogger.
var DefaultLogger *zap.Logger

func init() {
	var err error
	DefaultLogger, err = zap.NewProduction()
	if err != nil {
		DefaultLogger = zap.NewNop()
	}
}

// SetLogger allows setting a custom zap logger instance.
// A nil logger is ignored so logging can't be disabled by accident.
func SetLogger(logger *zap.Logger) {
	if logger != nil {
		DefaultLogger = logger
	}
}

// ErrorType represents the categories of errors surfaced to API clients.
type ErrorType string

const (
	// InvalidInputError is a client-caused failure, such as a missing trip field.
	InvalidInputError ErrorType = "invalid_input"

	// UpstreamError is a failure of the completion service: network, auth,
	// malformed or empty responses.
	UpstreamError ErrorType = "upstream_error"

	// MethodNotAllowedError is returned when an endpoint is called with the wrong method.
	MethodNotAllowedError ErrorType = "method_not_allowed"

	// InternalError represents unexpected internal server errors
	InternalError ErrorType = "internal_error"

	// NotFoundError represents unknown routes
	NotFoundError ErrorType = "not_found"
)

// PlannerError is the error type written to API clients. It keeps the
// underlying cause for logging while only the message reaches the body.
type PlannerError struct {
	// Type categorizes the error for client handling
	Type ErrorType `json:"type"`

	// Message is the user-facing description, serialized as "error"
	Message string `json:"error"`

	// Code is the HTTP status code (not exposed in JSON)
	Code int `json:"-"`

	// RequestID links the error to a specific request
	RequestID string `json:"request_id"`

	// Details contains additional error context
	Details map[string]interface{} `json:"details,omitempty"`

	// err is the underlying error (not exposed in JSON)
	err error
}

// Error combines the error type, message, and underlying error (if any).
func (e *PlannerError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.err
}

// Is matches on error type only, so errors.Is(err, &PlannerError{Type: UpstreamError})
// works regardless of message or request.
func (e *PlannerError) Is(target error) bool {
	t, ok := target.(*PlannerError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WriteError formats and writes a PlannerError to an http.ResponseWriter.
func WriteError(w http.ResponseWriter, err *PlannerError) {
	if err.RequestID == "" {
		err.RequestID = w.Header().Get("X-Request-ID")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
}

// Error is a drop-in replacement for http.Error that writes an InternalError
// body. The request ID is taken from the response headers if present.
func Error(w http.ResponseWriter, message string, code int) {
	ErrorWithType(w, message, InternalError, code)
}

// ErrorWithType is like Error but allows specifying the error type.
func ErrorWithType(w http.ResponseWriter, message string, errType ErrorType, code int) {
	WriteError(w, &PlannerError{
		Type:      errType,
		Message:   message,
		Code:      code,
		RequestID: w.Header().Get("X-Request-ID"),
	})
}
