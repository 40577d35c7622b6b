package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SentimentScope/internal/config"
	"SentimentScope/internal/domain"
	"SentimentScope/internal/ports"
)

const paragraphSelector = "p"

// ParagraphFetcher downloads a page and flattens its paragraph text.
type ParagraphFetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

var _ ports.ContentFetcher = (*ParagraphFetcher)(nil)

// NewParagraphFetcher wires an HTTP client from fetcher settings; a nil client gets cfg.Timeout.
func NewParagraphFetcher(client *http.Client, cfg config.FetcherConfig, log *slog.Logger) *ParagraphFetcher {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &ParagraphFetcher{client: client, userAgent: userAgent, logger: log}
}

// Fetch returns the text of every <p> element in document order joined by a single space.
// Any failure is reported as *domain.FetchError.
func (f *ParagraphFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	pageURL = strings.TrimSpace(pageURL)

	doc, err := f.fetchDocument(ctx, pageURL)
	if err != nil {
		return "", &domain.FetchError{URL: pageURL, Err: err}
	}

	text := ExtractParagraphs(doc)
	f.debug("page fetched", "url", pageURL, "paragraphs", doc.Find(paragraphSelector).Length(), "chars", len(text))
	return text, nil
}

// ExtractParagraphs concatenates paragraph text without any normalization.
func ExtractParagraphs(doc *goquery.Document) string {
	parts := doc.Find(paragraphSelector).Map(func(_ int, p *goquery.Selection) string {
		return p.Text()
	})
	return strings.Join(parts, " ")
}

func (f *ParagraphFetcher) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (f *ParagraphFetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
