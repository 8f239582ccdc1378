// Package llm provides the text-completion client abstraction used by the
// conversion engine, with OpenAI and Gemini provider implementations.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Params controls a single completion call.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature float64
	// Timeout, when positive, bounds the call; exceeding it surfaces as a
	// *TimeoutError so callers can take their fallback path.
	Timeout time.Duration
}

// Client is an abstraction over text-completion providers. The core depends
// on this interface only; the provider is selected from configuration.
type Client interface {
	// Complete sends a single-turn prompt and returns the completion text.
	Complete(ctx context.Context, prompt string, p Params) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// Provider names accepted in configuration.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewClient creates a completion client for the configured provider.
func NewClient(ctx context.Context, provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderOpenAI, "":
		return NewOpenAIClient(apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}

// TimeoutError marks a completion call that exceeded its deadline. Title
// generation treats it as a recoverable generation failure.
type TimeoutError struct {
	Model string
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("completion timed out (model %s): %v", e.Model, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// withTimeout derives a bounded context when p.Timeout is set.
func withTimeout(ctx context.Context, p Params) (context.Context, context.CancelFunc) {
	if p.Timeout > 0 {
		return context.WithTimeout(ctx, p.Timeout)
	}
	return ctx, func() {}
}
