package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"SentimentScope/internal/config"
	"SentimentScope/internal/ports"
)

// A one-word label never needs more than a handful of tokens.
const anthropicMaxTokens = 16

// AnthropicGenerator implements ports.Generator via the Anthropic messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

var _ ports.Generator = (*AnthropicGenerator)(nil)

// NewAnthropicGenerator builds a client from configuration with retries disabled.
func NewAnthropicGenerator(cfg config.LLMConfig) (*AnthropicGenerator, error) {
	if cfg.APIKey == "" || cfg.Model == "" {
		return nil, errors.New("anthropic client misconfigured")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}

	return &AnthropicGenerator{client: anthropic.NewClient(opts...), model: cfg.Model}, nil
}

// Generate sends the prompt as one user turn and joins the text blocks of the reply.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("no response from anthropic")
	}
	return sb.String(), nil
}
