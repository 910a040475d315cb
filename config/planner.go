package config

// DefaultSystemPrompt is the fixed system instruction sent with every completion.
const DefaultSystemPrompt = "You are a travel assistant that writes clear, practical day-by-day trip itineraries."

// DefaultPromptTemplate asks for a route summary, a per-day breakdown and a
// closing notes block. Day content must come before the notes heading: the
// response splitter cuts at the first notes marker it finds.
const DefaultPromptTemplate = `I want to travel from {{.StartLocation}} to {{.Destination}} for {{.Duration}}.

Write my itinerary in exactly three parts, in this order:

1. A 1-2 sentence summary of the route from {{.StartLocation}} to {{.Destination}}.

2. A day-by-day plan. For each day write a "Day N:" heading followed by three labeled sub-sections:
   Morning: (70-100 words)
   Afternoon: (70-100 words)
   Evening: (70-100 words)

3. After the last day, a section headed "Important Travel Notes" with a short bulleted list covering safety, local customs and packing.

Do not use the word "Notes" anywhere before the final section.`

// PlannerConfig configures how trip requests are turned into prompts.
type PlannerConfig struct {
	// PromptTemplate is a text/template executed with the trip request.
	// Available fields: .StartLocation, .Destination, .Duration
	PromptTemplate string `yaml:"prompt_template"`
}
