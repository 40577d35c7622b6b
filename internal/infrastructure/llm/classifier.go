package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"SentimentScope/internal/config"
	"SentimentScope/internal/domain"
	"SentimentScope/internal/ports"
)

var (
	errMisconfigured = errors.New("classifier misconfigured")
	errEmptyReply    = errors.New("empty model reply")
)

// Classifier implements ports.SentimentClassifier on top of any provider generator.
type Classifier struct {
	provider  string
	generator ports.Generator
	logger    *slog.Logger
}

var _ ports.SentimentClassifier = (*Classifier)(nil)

// NewClassifier binds a generator to the provider name used in error messages.
func NewClassifier(provider string, generator ports.Generator, log *slog.Logger) *Classifier {
	return &Classifier{provider: provider, generator: generator, logger: log}
}

// Provider returns the configured provider name.
func (c *Classifier) Provider() string {
	if c == nil {
		return ""
	}
	return c.provider
}

// Classify returns the model reply with surrounding whitespace removed.
// The reply is not checked against the expected labels, but a blank one is
// an error.
func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	if c == nil || c.generator == nil {
		return "", &domain.ClassificationError{Provider: c.Provider(), Err: errMisconfigured}
	}

	started := time.Now()
	reply, err := c.generator.Generate(ctx, BuildPrompt(text))
	if err != nil {
		return "", &domain.ClassificationError{Provider: c.provider, Err: err}
	}

	label := strings.TrimSpace(reply)
	if c.logger != nil {
		c.logger.Debug("model replied", "provider", c.provider, "label", label, "elapsed", time.Since(started))
	}
	if label == "" {
		return "", &domain.ClassificationError{Provider: c.provider, Err: errEmptyReply}
	}
	return label, nil
}

// DisplayName renders a provider name for user-facing messages.
func DisplayName(provider string) string {
	switch provider {
	case config.ProviderGemini:
		return "Gemini"
	case config.ProviderOpenAI:
		return "OpenAI"
	case config.ProviderAnthropic:
		return "Anthropic"
	case "":
		return "model"
	default:
		return provider
	}
}
