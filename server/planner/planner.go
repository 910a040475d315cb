package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teilomillet/gollm"
	"github.com/teilomillet/gollm/llm"
	"github.com/teilomillet/travelplanner/config"
	"github.com/teilomillet/travelplanner/server/metrics"
	"go.uber.org/zap"
)

// ErrEmptyCompletion is returned when the completion service answers with
// nothing but whitespace.
var ErrEmptyCompletion = errors.New("completion service returned an empty response")

// LLM is the part of gollm.LLM the planner needs.
type LLM interface {
	Generate(ctx context.Context, prompt *gollm.Prompt, opts ...llm.GenerateOption) (string, error)
}

// TokenCounter counts prompt tokens for metrics.
type TokenCounter interface {
	CountTokens(text string) int
}

// UpstreamError wraps any failure of the completion call. Its message is the
// underlying error's message.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Planner builds prompts, calls the completion service once per trip and
// splits the answer. It holds no per-request state.
type Planner struct {
	llm          LLM
	prompts      *PromptBuilder
	systemPrompt string
	tokens       TokenCounter
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// Option configures optional Planner collaborators.
type Option func(*Planner)

// WithTokenCounter enables prompt token metrics.
func WithTokenCounter(tc TokenCounter) Option {
	return func(p *Planner) {
		p.tokens = tc
	}
}

// WithMetrics records completion and split metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Planner) {
		p.metrics = m
	}
}

// WithLogger sets the planner logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner creates a planner from configuration and an LLM client.
// The prompt template is compiled here so a broken template fails at startup.
func NewPlanner(cfg *config.Config, client LLM, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("LLM instance is required")
	}

	prompts, err := NewPromptBuilder(cfg.Planner.PromptTemplate)
	if err != nil {
		return nil, err
	}

	p := &Planner{
		llm:          client,
		prompts:      prompts,
		systemPrompt: cfg.LLM.SystemPrompt,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Plan produces the itinerary for a validated trip. Errors from the
// completion service are returned as *UpstreamError.
func (p *Planner) Plan(ctx context.Context, trip TripRequest) (*SplitResult, error) {
	userPrompt, err := p.prompts.Build(trip)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	var messages []gollm.PromptMessage
	if p.systemPrompt != "" {
		messages = append(messages, gollm.PromptMessage{
			Role:    "system",
			Content: p.systemPrompt,
		})
	}
	messages = append(messages, gollm.PromptMessage{
		Role:    "user",
		Content: userPrompt,
	})
	prompt := &gollm.Prompt{Messages: messages}

	if p.tokens != nil {
		p.metrics.ObservePromptTokens(p.tokens.CountTokens(p.systemPrompt) + p.tokens.CountTokens(userPrompt))
	}

	completion, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := Split(completion)
	p.metrics.ObserveSplit(result.Marker)

	p.logger.Debug("Itinerary split",
		zap.Int("completion_length", len(completion)),
		zap.Int("itinerary_length", len(result.Itinerary)),
		zap.Bool("has_notes", result.HasNotes()),
		zap.String("marker", result.Marker),
	)

	return &result, nil
}

// complete makes exactly one completion call and returns the trimmed text.
func (p *Planner) complete(ctx context.Context, prompt *gollm.Prompt) (string, error) {
	start := time.Now()
	response, err := p.llm.Generate(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		p.metrics.ObserveCompletion(metrics.OutcomeError, elapsed)
		return "", &UpstreamError{Err: err}
	}

	response = strings.TrimSpace(response)
	if response == "" {
		p.metrics.ObserveCompletion(metrics.OutcomeEmpty, elapsed)
		return "", &UpstreamError{Err: ErrEmptyCompletion}
	}

	p.metrics.ObserveCompletion(metrics.OutcomeSuccess, elapsed)
	return response, nil
}
