package planner

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/teilomillet/travelplanner/config"
)

// PromptBuilder renders the user prompt for a trip from a text/template.
// It is safe for concurrent use once built.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the template up front so a bad template fails at
// startup. Unknown fields are an execution error.
func NewPromptBuilder(text string) (*PromptBuilder, error) {
	tmpl, err := template.New("trip").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for trip.
func (b *PromptBuilder) Build(trip TripRequest) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, trip); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

var defaultPrompts = mustPromptBuilder(config.DefaultPromptTemplate)

func mustPromptBuilder(text string) *PromptBuilder {
	b, err := NewPromptBuilder(text)
	if err != nil {
		panic(err)
	}
	return b
}

// BuildPrompt renders the default prompt: a route summary, a Morning,
// Afternoon and Evening breakdown per day, and a closing notes block.
func BuildPrompt(trip TripRequest) string {
	// The default template only references TripRequest fields, so it can't fail.
	prompt, _ := defaultPrompts.Build(trip)
	return prompt
}
