package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teilomillet/gollm"
	"github.com/teilomillet/travelplanner/config"
	"github.com/teilomillet/travelplanner/errors"
	"github.com/teilomillet/travelplanner/server/middleware"
	"github.com/teilomillet/travelplanner/server/mocks"
	"github.com/teilomillet/travelplanner/server/planner"
	"go.uber.org/zap/zaptest"
)

type fakePlanner struct {
	calls  int
	trip   planner.TripRequest
	result *planner.SplitResult
	err    error
}

func (f *fakePlanner) Plan(ctx context.Context, trip planner.TripRequest) (*planner.SplitResult, error) {
	f.calls++
	f.trip = trip
	return f.result, f.err
}

func formRequest(method string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, "/ask/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validForm() url.Values {
	return url.Values{
		"start_location": {"Paris"},
		"destination":    {"Rome"},
		"duration":       {"3 days"},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorResponse {
	t.Helper()
	var body errors.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAskHandlerMethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			p := &fakePlanner{}
			h := NewAskHandler(p, zaptest.NewLogger(t))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, formRequest(method, validForm()))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
			body := decodeError(t, rec)
			assert.Equal(t, "Invalid request method", body.Error)
			assert.Equal(t, errors.MethodNotAllowedError, body.Type)
			assert.Equal(t, 0, p.calls)
		})
	}
}

func TestAskHandlerValidation(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		wantMissing []interface{}
	}{
		{
			name:        "missing destination",
			form:        url.Values{"start_location": {"Paris"}, "duration": {"3 days"}},
			wantMissing: []interface{}{"destination"},
		},
		{
			name:        "blank duration",
			form:        url.Values{"start_location": {"Paris"}, "destination": {"Rome"}, "duration": {"   "}},
			wantMissing: []interface{}{"duration"},
		},
		{
			name:        "empty body",
			form:        url.Values{},
			wantMissing: []interface{}{"start_location", "destination", "duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePlanner{}
			h := NewAskHandler(p, zaptest.NewLogger(t))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, formRequest(http.MethodPost, tt.form))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "All fields are required!", body.Error)
			assert.Equal(t, errors.InvalidInputError, body.Type)
			assert.Equal(t, tt.wantMissing, body.Details["missing_fields"])
			assert.Equal(t, 0, p.calls)
		})
	}
}

func TestAskHandlerIgnoresQueryParameters(t *testing.T) {
	p := &fakePlanner{}
	h := NewAskHandler(p, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/ask/?start_location=Paris&destination=Rome&duration=3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, p.calls)
}

func TestAskHandlerSuccess(t *testing.T) {
	notes := "Important Travel Notes: bring a hat"
	tests := []struct {
		name      string
		result    *planner.SplitResult
		wantNotes interface{}
	}{
		{
			name:      "with notes",
			result:    &planner.SplitResult{Itinerary: "Day 1: Colosseum", Notes: &notes},
			wantNotes: notes,
		},
		{
			name:      "without notes",
			result:    &planner.SplitResult{Itinerary: "Day 1: Colosseum"},
			wantNotes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePlanner{result: tt.result}
			h := NewAskHandler(p, zaptest.NewLogger(t))

			form := url.Values{
				"start_location": {"  Paris "},
				"destination":    {"Rome"},
				"duration":       {"3 days\n"},
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, formRequest(http.MethodPost, form))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, planner.TripRequest{StartLocation: "Paris", Destination: "Rome", Duration: "3 days"}, p.trip)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Len(t, body, 2)
			assert.Equal(t, "Day 1: Colosseum", body["response"])
			require.Contains(t, body, "notes")
			assert.Equal(t, tt.wantNotes, body["notes"])
		})
	}
}

func TestAskHandlerMultipartForm(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range validForm() {
		require.NoError(t, mw.WriteField(k, v[0]))
	}
	require.NoError(t, mw.Close())

	p := &fakePlanner{result: &planner.SplitResult{Itinerary: "Day 1"}}
	h := NewAskHandler(p, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/ask/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rome", p.trip.Destination)
}

func TestAskHandlerPlannerErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantType    errors.ErrorType
		wantMessage string
	}{
		{
			name:        "upstream failure",
			err:         &planner.UpstreamError{Err: fmt.Errorf("401 invalid api key")},
			wantType:    errors.UpstreamError,
			wantMessage: "API Error: 401 invalid api key",
		},
		{
			name:        "wrapped upstream failure",
			err:         fmt.Errorf("plan: %w", &planner.UpstreamError{Err: planner.ErrEmptyCompletion}),
			wantType:    errors.UpstreamError,
			wantMessage: "API Error: " + planner.ErrEmptyCompletion.Error(),
		},
		{
			name:        "unexpected failure",
			err:         fmt.Errorf("build prompt: boom"),
			wantType:    errors.InternalError,
			wantMessage: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAskHandler(&fakePlanner{err: tt.err}, zaptest.NewLogger(t))

			req := formRequest(http.MethodPost, validForm())
			req.Header.Set(middleware.RequestIDHeader, "req-500")
			rec := httptest.NewRecorder()
			middleware.RequestID(h).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantType, body.Type)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, "req-500", body.RequestID)
		})
	}
}

func TestAskHandlerWithPlanner(t *testing.T) {
	llm := mocks.NewMockLLM(func(ctx context.Context, prompt *gollm.Prompt) (string, error) {
		return "Day 1: Louvre.\nDay 2: Montmartre.\n\nImportant Travel Notes:\n- Metro closes at 1am", nil
	})
	p, err := planner.NewPlanner(config.DefaultConfig(), llm)
	require.NoError(t, err)

	h := NewAskHandler(p, zaptest.NewLogger(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, formRequest(http.MethodPost, url.Values{
		"start_location": {"London"},
		"destination":    {"Paris"},
		"duration":       {"2 days"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"response": "Day 1: Louvre.\nDay 2: Montmartre.", "notes": "Important Travel Notes:\n- Metro closes at 1am"}`,
		rec.Body.String(),
	)
	assert.Contains(t, llm.LastPrompt().Messages[1].Content, "from London to Paris for 2 days")
}
