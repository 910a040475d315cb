// Package validation checks trip requests before they reach the planner and
// counts prompt tokens.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teilomillet/travelplanner/errors"
	"github.com/teilomillet/travelplanner/server/planner"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// tripFields mirrors planner.TripRequest with validation tags.
type tripFields struct {
	StartLocation string `json:"start_location" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	Duration      string `json:"duration" validate:"required"`
}

// FieldsError reports which trip fields were missing or blank.
type FieldsError struct {
	Missing []string
}

func (e *FieldsError) Error() string {
	return errors.RequiredFieldsMessage
}

// Details returns the error details written to clients.
func (e *FieldsError) Details() map[string]interface{} {
	return map[string]interface{}{
		"missing_fields": e.Missing,
	}
}

// ValidateTrip trims the three raw fields and returns the trip when all of
// them are non-empty. Otherwise it returns a *FieldsError naming every
// missing field in declaration order.
func ValidateTrip(startLocation, destination, duration string) (planner.TripRequest, error) {
	fields := tripFields{
		StartLocation: strings.TrimSpace(startLocation),
		Destination:   strings.TrimSpace(destination),
		Duration:      strings.TrimSpace(duration),
	}

	if err := validate.Struct(fields); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return planner.TripRequest{}, err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return planner.TripRequest{}, &FieldsError{Missing: missing}
	}

	return planner.TripRequest{
		StartLocation: fields.StartLocation,
		Destination:   fields.Destination,
		Duration:      fields.Duration,
	}, nil
}
