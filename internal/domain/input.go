package domain

import "strings"

// InputKind tells how raw user input is treated by the analysis flow.
type InputKind string

const (
	InputEmpty InputKind = "empty"
	InputURL   InputKind = "url"
	InputText  InputKind = "text"
)

const urlPrefix = "http"

// ClassifyInput reports whether the trimmed input should be fetched as a URL
// or analyzed as literal text. Blank input is reported as InputEmpty so callers
// can reject it before any network call.
func ClassifyInput(raw string) InputKind {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return InputEmpty
	case strings.HasPrefix(trimmed, urlPrefix):
		return InputURL
	default:
		return InputText
	}
}
