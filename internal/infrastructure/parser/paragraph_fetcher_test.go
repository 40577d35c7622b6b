package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SentimentScope/internal/config"
	"SentimentScope/internal/domain"
)

func newTestFetcher(timeout time.Duration) *ParagraphFetcher {
	return NewParagraphFetcher(nil, config.FetcherConfig{Timeout: timeout}, nil)
}

func TestExtractParagraphs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		html string
		want string
	}{
		{name: "two paragraphs", html: `<p>A</p><p>B</p>`, want: "A B"},
		{name: "no paragraphs", html: `<div>only a div</div>`, want: ""},
		{
			name: "nested markup keeps inner text",
			html: `<article><p>Hello <b>bold</b> world</p><div><p>second</p></div></article>`,
			want: "Hello bold world second",
		},
		{name: "whitespace is not normalized", html: "<p> A </p><p>\nB</p>", want: " A  \nB"},
		{name: "empty paragraph keeps separator", html: `<p>A</p><p></p><p>B</p>`, want: "A  B"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tc.html))
			if err != nil {
				t.Fatalf("new document: %v", err)
			}
			if got := ExtractParagraphs(doc); got != tc.want {
				t.Fatalf("ExtractParagraphs() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParagraphFetcherFetch(t *testing.T) {
	t.Parallel()

	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><h1>Title</h1><p>A</p><p>B</p></body></html>`))
	}))
	defer server.Close()

	text, err := newTestFetcher(time.Second).Fetch(context.Background(), "  "+server.URL+"  ")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if text != "A B" {
		t.Fatalf("unexpected text: %q", text)
	}
	if gotAgent != config.DefaultUserAgent {
		t.Fatalf("unexpected user agent: %q", gotAgent)
	}
}

func TestParagraphFetcherNoParagraphs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div>nothing here</div></body></html>`))
	}))
	defer server.Close()

	text, err := newTestFetcher(time.Second).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestParagraphFetcherErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestFetcher(time.Second).Fetch(context.Background(), server.URL)
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestParagraphFetcherTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestFetcher(50*time.Millisecond).Fetch(context.Background(), server.URL)
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestParagraphFetcherInvalidURL(t *testing.T) {
	t.Parallel()

	_, err := newTestFetcher(time.Second).Fetch(context.Background(), "http://exa mple.com/%zz")
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}
