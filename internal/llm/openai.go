package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client using the official openai-go SDK
// (chat completions).
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates a new OpenAI chat-completions client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Complete sends a single-turn user prompt and returns the completion text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, p Params) (string, error) {
	ctx, cancel := withTimeout(ctx, p)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if p.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.MaxTokens))
	}
	if p.Temperature > 0 {
		params.Temperature = openai.Float(p.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &TimeoutError{Model: p.Model, Cause: err}
		}
		return "", classifyOpenAIError(err, p.Model)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Close releases resources held by the client. The OpenAI client is
// stateless, so there is nothing to release.
func (c *OpenAIClient) Close() error {
	return nil
}

// classifyOpenAIError keeps user-facing messages actionable for the two
// failure modes operators actually hit: bad keys and unknown models.
func classifyOpenAIError(err error, model string) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api_key") || strings.Contains(msg, "api key") || strings.Contains(msg, "authentication"):
		return fmt.Errorf("invalid API key: %w", err)
	case strings.Contains(msg, "model"):
		return fmt.Errorf("model %q not available: %w", model, err)
	default:
		return fmt.Errorf("completion request failed: %w", err)
	}
}
