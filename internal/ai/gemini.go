package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient completes prompts with Google's Gemini API. The chat id is
// not forwarded; every call is a standalone generation.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient builds a client. An empty apiKey yields a client whose
// every call reports ErrNotConfigured without touching the network.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	c := &GeminiClient{model: model, logger: logger}
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiClient) Complete(ctx context.Context, _ string, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
				return "", ErrUnauthorized
			}
			c.logger.Warn("gemini request failed", zap.Int("status", apiErr.Code), zap.String("model", c.model))
			return "", &TransportError{StatusCode: apiErr.Code, Err: err}
		}
		c.logger.Warn("gemini request failed", zap.String("model", c.model), zap.Error(err))
		return "", &TransportError{Err: err}
	}
	text := result.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Model returns the model name requests are sent to.
func (c *GeminiClient) Model() string {
	return c.model
}
