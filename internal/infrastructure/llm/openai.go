package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"SentimentScope/internal/config"
	"SentimentScope/internal/ports"
)

// OpenAIGenerator implements ports.Generator backed by OpenAI-compatible chat APIs.
type OpenAIGenerator struct {
	client openai.Client
	model  string
}

var _ ports.Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator builds a client from configuration with retries disabled.
func NewOpenAIGenerator(cfg config.LLMConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" || cfg.Model == "" {
		return nil, errors.New("openai client misconfigured")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}

	return &OpenAIGenerator{client: openai.NewClient(opts...), model: cfg.Model}, nil
}

// Generate posts the prompt as a single user message.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
