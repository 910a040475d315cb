// Package handlers provides the HTTP handlers for the travel planner API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/teilomillet/travelplanner/errors"
	"github.com/teilomillet/travelplanner/server/middleware"
	"github.com/teilomillet/travelplanner/server/planner"
	"github.com/teilomillet/travelplanner/server/validation"
	"go.uber.org/zap"
)

// maxFormBytes caps the size of a trip form body.
const maxFormBytes = 1 << 20

// TripPlanner turns a validated trip into an itinerary.
type TripPlanner interface {
	Plan(ctx context.Context, trip planner.TripRequest) (*planner.SplitResult, error)
}

// AskHandler serves /ask/. It accepts every method so it can answer non-POST
// requests with its own error body.
type AskHandler struct {
	planner TripPlanner
	logger  *zap.Logger
}

// NewAskHandler creates the /ask/ handler.
func NewAskHandler(p TripPlanner, logger *zap.Logger) *AskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskHandler{
		planner: p,
		logger:  logger,
	}
}

// ServeHTTP validates the trip form, plans the trip and writes the result:
//
//	200 {"response": "...", "notes": "..." | null}
//	400 {"error": "All fields are required!", ...}
//	405 {"error": "Invalid request method", ...}
//	500 {"error": "API Error: ...", ...}
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logger := middleware.LoggerFromContext(r.Context(), h.logger)

	// The method is checked before the body is touched.
	if r.Method != http.MethodPost {
		err := errors.NewMethodNotAllowedError(requestID, r.Method, http.MethodPost)
		errors.LogError(logger, err, requestID)
		w.Header().Set("Allow", http.MethodPost)
		errors.WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	// PostFormValue parses url-encoded and multipart bodies. A body that fails
	// to parse yields empty fields and is rejected as incomplete.
	trip, err := validation.ValidateTrip(
		r.PostFormValue("start_location"),
		r.PostFormValue("destination"),
		r.PostFormValue("duration"),
	)
	if err != nil {
		var details map[string]interface{}
		var fieldsErr *validation.FieldsError
		if errors.As(err, &fieldsErr) {
			details = fieldsErr.Details()
		}
		apiErr := errors.NewInvalidInputError(requestID, errors.RequiredFieldsMessage, details)
		errors.LogError(logger, apiErr, requestID)
		errors.WriteError(w, apiErr)
		return
	}

	logger.Debug("Planning trip",
		zap.String("start_location", trip.StartLocation),
		zap.String("destination", trip.Destination),
		zap.String("duration", trip.Duration),
	)

	result, err := h.planner.Plan(r.Context(), trip)
	if err != nil {
		var apiErr *errors.PlannerError
		var upstream *planner.UpstreamError
		if errors.As(err, &upstream) {
			apiErr = errors.NewUpstreamError(requestID, upstream)
		} else {
			apiErr = errors.NewInternalError(requestID, err)
		}
		errors.LogError(logger, apiErr, requestID)
		errors.WriteError(w, apiErr)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		apiErr := errors.NewInternalError(requestID, err)
		errors.LogError(logger, apiErr, requestID)
		errors.WriteError(w, apiErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(body, '\n'))
}
