package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want InputKind
	}{
		{raw: "https://example.com/article", want: InputURL},
		{raw: "  http://example.com  ", want: InputURL},
		{raw: "httpbin is a service", want: InputURL},
		{raw: "I feel great today!", want: InputText},
		{raw: "see https://example.com", want: InputText},
		{raw: "HTTP://EXAMPLE.COM", want: InputText},
		{raw: "", want: InputEmpty},
		{raw: " \t\n ", want: InputEmpty},
	}

	for _, tc := range cases {
		if got := ClassifyInput(tc.raw); got != tc.want {
			t.Fatalf("ClassifyInput(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestStateTerminal(t *testing.T) {
	t.Parallel()

	for _, s := range []State{StateDone, StateWarning, StateFailed} {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	for _, s := range []State{StateIdle, StateFetching, StateClassifying} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestErrorsUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")

	var fetchErr *FetchError
	err := fmt.Errorf("analyze: %w", &FetchError{URL: "http://x", Err: cause})
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError in chain")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}

	var classErr *ClassificationError
	err = &ClassificationError{Provider: "gemini", Err: cause}
	if !errors.As(err, &classErr) || classErr.Provider != "gemini" {
		t.Fatalf("unexpected classification error: %v", err)
	}
	if err.Error() != "gemini: connection refused" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
