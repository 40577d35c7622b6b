package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"SentimentScope/internal/config"
	"SentimentScope/internal/ports"
)

// GeminiGenerator sends prompts to the Google Generative Language API.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ ports.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator builds a client from configuration. The client is
// created once and reused for every classification.
func NewGeminiGenerator(ctx context.Context, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" || cfg.Model == "" {
		return nil, errors.New("gemini client misconfigured")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: client.GenerativeModel(cfg.Model)}, nil
}

// Generate submits the prompt and returns the text of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return responseText(resp)
}

// Close releases the underlying connection.
func (g *GeminiGenerator) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("empty gemini response")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("gemini response has no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", errors.New("gemini candidate has no content")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini candidate has no text (finish reason %s)", candidate.FinishReason)
	}
	return sb.String(), nil
}
