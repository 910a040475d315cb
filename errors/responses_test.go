package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            *PlannerError
		expectedCode   int
		expectedType   ErrorType
		expectedFields []string
	}{
		{
			name:           "invalid input",
			err:            NewInvalidInputError("test-id", RequiredFieldsMessage, nil),
			expectedCode:   http.StatusBadRequest,
			expectedType:   InvalidInputError,
			expectedFields: []string{"error", "type", "request_id"},
		},
		{
			name:           "method not allowed with details",
			err:            NewMethodNotAllowedError("test-id", http.MethodPut, http.MethodPost),
			expectedCode:   http.StatusMethodNotAllowed,
			expectedType:   MethodNotAllowedError,
			expectedFields: []string{"error", "type", "request_id", "details"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			if rr.Code != tt.expectedCode {
				t.Errorf("WriteError() status = %v, want %v", rr.Code, tt.expectedCode)
			}

			if contentType := rr.Header().Get("Content-Type"); contentType != "application/json" {
				t.Errorf("WriteError() content-type = %v, want application/json", contentType)
			}

			var response map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response body: %v", err)
			}

			if errorType, ok := response["type"].(string); !ok || ErrorType(errorType) != tt.expectedType {
				t.Errorf("WriteError() error type = %v, want %v", errorType, tt.expectedType)
			}

			for _, field := range tt.expectedFields {
				if _, exists := response[field]; !exists {
					t.Errorf("WriteError() missing expected field: %s", field)
				}
			}
		})
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.Header().Set("X-Request-ID", "from-header")

	ErrorWithType(rr, InvalidMethodMessage, MethodNotAllowedError, http.StatusMethodNotAllowed)

	var response ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	if response.RequestID != "from-header" {
		t.Errorf("request_id = %v, want from-header", response.RequestID)
	}
	if response.Error != InvalidMethodMessage {
		t.Errorf("error = %v, want %v", response.Error, InvalidMethodMessage)
	}
}
