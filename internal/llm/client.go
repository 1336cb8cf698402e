package llm

import (
	"context"
	"errors"
	"fmt"

	"finu/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ErrMissingAPIKey is returned when the hosted model is called without
// an API key configured.
var ErrMissingAPIKey = errors.New("AI API key is not configured")

// Client is the minimal surface the advisor services need from a
// hosted language model.
type Client interface {
	// Complete sends a prompt and returns the model's free-text reply.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteJSON sends a prompt with JSON output mode enabled and
	// returns the raw model reply, expected to be a JSON document.
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// GoogleAIClient talks to Google's hosted Gemini models through
// langchaingo.
type GoogleAIClient struct {
	model llms.Model
}

// NewGoogleAIClient builds a client for the configured Gemini model.
// Returns ErrMissingAPIKey when no key is set so the caller can decide
// whether to run degraded.
func NewGoogleAIClient(ctx context.Context, cfg config.AIConfig) (*GoogleAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google AI client: %w", err)
	}

	return &GoogleAIClient{model: model}, nil
}

// Complete implements Client
func (c *GoogleAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return "", fmt.Errorf("model completion failed: %w", err)
	}
	return reply, nil
}

// CompleteJSON implements Client
func (c *GoogleAIClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithJSONMode())
	if err != nil {
		return "", fmt.Errorf("model JSON completion failed: %w", err)
	}
	return reply, nil
}
