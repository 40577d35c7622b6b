package llm

import (
	"context"
	"reflect"
	"testing"

	"SentimentScope/internal/config"
	"SentimentScope/internal/provider"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	reg := provider.NewRegistry()
	RegisterProviders(reg)

	want := []string{config.ProviderAnthropic, config.ProviderGemini, config.ProviderOpenAI}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected providers: %v", got)
	}

	gen, err := reg.Build(context.Background(), config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if _, ok := gen.(*OpenAIGenerator); !ok {
		t.Fatalf("unexpected generator type %T", gen)
	}

	gen, err = reg.Build(context.Background(), config.LLMConfig{Provider: config.ProviderAnthropic})
	if err == nil || gen != nil {
		t.Fatalf("expected misconfiguration error, got gen=%v err=%v", gen, err)
	}
}
