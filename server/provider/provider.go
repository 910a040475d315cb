// Package provider builds the completion client from configuration.
package provider

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/teilomillet/gollm"
	"github.com/teilomillet/travelplanner/config"
	"go.uber.org/zap"
)

// ErrMissingAPIKey is returned when neither the config nor the provider's
// environment variable holds a credential.
var ErrMissingAPIKey = errors.New("missing API key")

// apiKeyEnv maps gollm provider names to their conventional credential variable.
var apiKeyEnv = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"groq":      "GROQ_API_KEY",
	"mistral":   "MISTRAL_API_KEY",
	"cohere":    "COHERE_API_KEY",
	"deepseek":  "DEEPSEEK_API_KEY",
}

// keylessProviders run locally and take no credential.
var keylessProviders = map[string]bool{
	"ollama": true,
}

// EnvVar returns the environment variable holding the key for provider.
// Unknown providers use the upper-cased name with an _API_KEY suffix.
func EnvVar(provider string) string {
	if name, ok := apiKeyEnv[provider]; ok {
		return name
	}
	return strings.ToUpper(strings.ReplaceAll(provider, "-", "_")) + "_API_KEY"
}

// ResolveAPIKey returns the configured key, falling back to the provider's
// environment variable. Keyless providers return "" without error.
func ResolveAPIKey(cfg config.LLMConfig) (string, error) {
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	if keylessProviders[cfg.Provider] {
		return "", nil
	}
	envVar := EnvVar(cfg.Provider)
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%w: set llm.api_key or %s for provider %s", ErrMissingAPIKey, envVar, cfg.Provider)
}

// NewLLM creates the completion client. gollm's own retries are disabled so
// every request makes exactly one upstream call.
func NewLLM(cfg config.LLMConfig, logger *zap.Logger) (gollm.LLM, error) {
	if cfg.Endpoint != "" && cfg.Provider != "ollama" {
		return nil, fmt.Errorf("llm.endpoint is only supported for ollama, got provider %s", cfg.Provider)
	}

	apiKey, err := ResolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}

	llm, err := gollm.NewLLM(
		gollm.SetProvider(cfg.Provider),
		gollm.SetModel(cfg.Model),
		gollm.SetAPIKey(apiKey),
		gollm.SetMaxTokens(cfg.MaxTokens),
		gollm.SetTemperature(cfg.Temperature),
		gollm.SetMaxRetries(0),
	)
	if err != nil {
		return nil, fmt.Errorf("create LLM: %w", err)
	}

	if cfg.Endpoint != "" {
		if err := llm.SetOllamaEndpoint(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("set ollama endpoint: %w", err)
		}
	}

	logger.Info("Completion client ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.Int("max_tokens", cfg.MaxTokens),
		zap.Float64("temperature", cfg.Temperature),
	)

	return llm, nil
}
