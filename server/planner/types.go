// Package planner turns trip requests into itineraries. It builds the prompt,
// makes a single completion call and splits the returned prose into an
// itinerary and an optional notes section.
package planner

// TripRequest is a validated trip: every field is non-empty and trimmed.
type TripRequest struct {
	StartLocation string `json:"start_location"`
	Destination   string `json:"destination"`
	Duration      string `json:"duration"`
}

// SplitResult is the itinerary returned to clients. Notes is nil when the
// completion had no notes section, which encodes as JSON null.
type SplitResult struct {
	Itinerary string  `json:"response"`
	Notes     *string `json:"notes"`

	// Marker is the header marker that produced the split, empty when none matched.
	Marker string `json:"-"`
}

// HasNotes reports whether a notes section was found.
func (r SplitResult) HasNotes() bool {
	return r.Notes != nil
}

// HeaderMarkers lists the headings that start a notes section, in priority
// order. The first entry found anywhere in the text wins, so longer phrasings
// come before the shorter ones they contain.
var HeaderMarkers = []string{
	"Important Travel Notes",
	"Important travel notes",
	"Travel Notes",
	"Notes",
}
