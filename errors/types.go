package errors

import (
	"net/http"
)

// RequiredFieldsMessage is the message returned for any incomplete trip request.
const RequiredFieldsMessage = "All fields are required!"

// InvalidMethodMessage is the message returned for a non-POST call to /ask/.
const InvalidMethodMessage = "Invalid request method"

// NewError creates a new PlannerError with full control over its fields.
// For most cases, use one of the specialized constructors below.
//
// Example:
//
//	err := NewError(InternalError, "template failed", 500, "req_123", nil, tmplErr)
func NewError(errType ErrorType, message string, code int, requestID string, details map[string]interface{}, err error) *PlannerError {
	return &PlannerError{
		Type:      errType,
		Message:   message,
		Code:      code,
		RequestID: requestID,
		Details:   details,
		err:       err,
	}
}

// NewInvalidInputError creates a client error for a rejected trip request.
// Details usually name the offending fields:
//
//	err := NewInvalidInputError("req_123", RequiredFieldsMessage, map[string]interface{}{
//	    "missing_fields": []string{"destination"},
//	})
func NewInvalidInputError(requestID, message string, details map[string]interface{}) *PlannerError {
	return &PlannerError{
		Type:      InvalidInputError,
		Message:   message,
		Code:      http.StatusBadRequest,
		RequestID: requestID,
		Details:   details,
	}
}

// NewUpstreamError creates an error for a failed completion call. The
// underlying message is passed through to the client unredacted.
func NewUpstreamError(requestID string, err error) *PlannerError {
	message := "API Error"
	if err != nil {
		message = "API Error: " + err.Error()
	}
	return &PlannerError{
		Type:      UpstreamError,
		Message:   message,
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
		err:       err,
	}
}

// NewMethodNotAllowedError creates the error for a request with the wrong method.
func NewMethodNotAllowedError(requestID, method string, allowed ...string) *PlannerError {
	return &PlannerError{
		Type:      MethodNotAllowedError,
		Message:   InvalidMethodMessage,
		Code:      http.StatusMethodNotAllowed,
		RequestID: requestID,
		Details: map[string]interface{}{
			"method":          method,
			"allowed_methods": allowed,
		},
	}
}

// NewNotFoundError creates the error for an unknown route.
func NewNotFoundError(requestID, path string) *PlannerError {
	return &PlannerError{
		Type:      NotFoundError,
		Message:   "Not found",
		Code:      http.StatusNotFound,
		RequestID: requestID,
		Details: map[string]interface{}{
			"path": path,
		},
	}
}

// NewInternalError creates an internal server error for unexpected failures
// such as panics or response encoding errors.
func NewInternalError(requestID string, err error) *PlannerError {
	return &PlannerError{
		Type:      InternalError,
		Message:   "An internal error occurred",
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
		err:       err,
	}
}
