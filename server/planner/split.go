package planner

import "strings"

// Split partitions a completion into itinerary and notes.
//
// Markers are tried in HeaderMarkers order and the first one present decides
// the cut, even when a lower-priority marker appears earlier in the text.
// The marker itself stays at the head of the notes. Without any marker the
// whole text is the itinerary and Notes is nil. Split never fails.
func Split(text string) SplitResult {
	for _, marker := range HeaderMarkers {
		i := strings.Index(text, marker)
		if i < 0 {
			continue
		}
		notes := strings.TrimSpace(text[i:])
		return SplitResult{
			Itinerary: strings.TrimSpace(text[:i]),
			Notes:     &notes,
			Marker:    marker,
		}
	}

	return SplitResult{Itinerary: strings.TrimSpace(text)}
}
