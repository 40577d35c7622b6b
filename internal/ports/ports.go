package ports

import (
	"context"
)

// ContentFetcher pulls the paragraph text of a web page.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// SentimentClassifier asks a language model for a one-word sentiment label.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
	Provider() string
}

// Generator performs a single prompt round trip against a model provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StatusReporter surfaces the outcome of a user action to the UI.
type StatusReporter interface {
	ReportError(message string)
	ReportWarning(message string)
	ReportSuccess(label string)
}
