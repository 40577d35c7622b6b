package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"SentimentScope/internal/domain"
	"SentimentScope/internal/logging"
	"SentimentScope/internal/ports"
)

// User-facing messages.
const (
	MsgEmptyInput   = "Please enter a URL or some text."
	MsgEmptyContent = "No paragraph text found at the URL."
)

var errBlankLabel = errors.New("empty model reply")

// AnalyzerDeps wires the driven adapters into the analysis flow.
type AnalyzerDeps struct {
	Fetcher    ports.ContentFetcher
	Classifier ports.SentimentClassifier
	// ProviderName renders the provider in error messages, e.g. "Gemini".
	ProviderName         string
	ClassifyEmptyContent bool
	Logger               *slog.Logger
}

// Analyzer implements the input → fetch → classify → display workflow.
type Analyzer struct {
	fetcher       ports.ContentFetcher
	classifier    ports.SentimentClassifier
	providerName  string
	classifyEmpty bool
	logger        *slog.Logger
}

// NewAnalyzer constructs the orchestration component.
func NewAnalyzer(deps AnalyzerDeps) *Analyzer {
	name := deps.ProviderName
	if name == "" && deps.Classifier != nil {
		name = deps.Classifier.Provider()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{
		fetcher:       deps.Fetcher,
		classifier:    deps.Classifier,
		providerName:  name,
		classifyEmpty: deps.ClassifyEmptyContent,
		logger:        logger,
	}
}

// ProviderName returns the display name of the model provider.
func (a *Analyzer) ProviderName() string {
	return a.providerName
}

// Analyze runs one user action to a terminal state. Every terminal state is
// reported exactly once through reporter; the returned Outcome mirrors it.
func (a *Analyzer) Analyze(ctx context.Context, raw string, reporter ports.StatusReporter) domain.Outcome {
	run := &analysis{
		Analyzer: a,
		log:      logging.FromContext(ctx, a.logger),
		reporter: reporter,
		outcome:  domain.Outcome{State: domain.StateIdle, Kind: domain.ClassifyInput(raw)},
	}

	switch run.outcome.Kind {
	case domain.InputEmpty:
		return run.warn(MsgEmptyInput)
	case domain.InputURL:
		run.transition(domain.StateFetching)
		content, err := run.fetch(ctx, strings.TrimSpace(raw))
		if err != nil {
			return run.fail(err, fmt.Sprintf("Error fetching URL: %v", err))
		}
		run.outcome.Content = content
		if content == "" && !a.classifyEmpty {
			return run.warn(MsgEmptyContent)
		}
	default:
		run.outcome.Content = raw
	}

	run.transition(domain.StateClassifying)
	label, err := run.classify(ctx, run.outcome.Content)
	if err != nil {
		return run.fail(err, fmt.Sprintf("Error calling %s API: %v", a.providerName, classificationCause(err)))
	}

	run.outcome.Sentiment = label
	run.transition(domain.StateDone)
	reporter.ReportSuccess(label)
	return run.outcome
}

// analysis carries the state of a single Analyze call.
type analysis struct {
	*Analyzer
	log      *slog.Logger
	reporter ports.StatusReporter
	outcome  domain.Outcome
}

func (r *analysis) fetch(ctx context.Context, pageURL string) (string, error) {
	if r.fetcher == nil {
		return "", &domain.FetchError{URL: pageURL, Err: errors.New("fetcher is not configured")}
	}

	started := time.Now()
	content, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		var fetchErr *domain.FetchError
		if !errors.As(err, &fetchErr) {
			err = &domain.FetchError{URL: pageURL, Err: err}
		}
		return "", err
	}
	r.log.Info("content fetched", "url", pageURL, "chars", len(content), "elapsed", time.Since(started))
	return content, nil
}

func (r *analysis) classify(ctx context.Context, text string) (string, error) {
	if r.classifier == nil {
		return "", &domain.ClassificationError{Provider: r.providerName, Err: errors.New("classifier is not configured")}
	}

	started := time.Now()
	label, err := r.classifier.Classify(ctx, text)
	if err != nil {
		var classErr *domain.ClassificationError
		if !errors.As(err, &classErr) {
			err = &domain.ClassificationError{Provider: r.classifier.Provider(), Err: err}
		}
		return "", err
	}
	if strings.TrimSpace(label) == "" {
		return "", &domain.ClassificationError{Provider: r.classifier.Provider(), Err: errBlankLabel}
	}
	r.log.Info("sentiment classified", "label", label, "chars", len(text), "elapsed", time.Since(started))
	return label, nil
}

// classificationCause drops the provider prefix, the message already names it.
func classificationCause(err error) error {
	var classErr *domain.ClassificationError
	if errors.As(err, &classErr) && classErr.Err != nil {
		return classErr.Err
	}
	return err
}

func (r *analysis) warn(msg string) domain.Outcome {
	r.outcome.Warning = msg
	r.transition(domain.StateWarning)
	r.reporter.ReportWarning(msg)
	return r.outcome
}

func (r *analysis) fail(err error, msg string) domain.Outcome {
	r.outcome.Err = err
	r.transition(domain.StateFailed)
	r.log.Warn("analysis failed", "kind", r.outcome.Kind, "error", err)
	r.reporter.ReportError(msg)
	return r.outcome
}

func (r *analysis) transition(next domain.State) {
	r.log.Debug("state transition", "from", r.outcome.State, "to", next, "kind", r.outcome.Kind)
	r.outcome.State = next
}
