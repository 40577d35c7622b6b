package llm

import (
	"context"

	"SentimentScope/internal/config"
	"SentimentScope/internal/ports"
	"SentimentScope/internal/provider"
)

// RegisterProviders adds every built-in model provider to reg.
func RegisterProviders(reg *provider.Registry) {
	reg.Register(config.ProviderGemini, func(ctx context.Context, cfg config.LLMConfig) (ports.Generator, error) {
		gen, err := NewGeminiGenerator(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	})
	reg.Register(config.ProviderOpenAI, func(_ context.Context, cfg config.LLMConfig) (ports.Generator, error) {
		gen, err := NewOpenAIGenerator(cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	})
	reg.Register(config.ProviderAnthropic, func(_ context.Context, cfg config.LLMConfig) (ports.Generator, error) {
		gen, err := NewAnthropicGenerator(cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	})
}
