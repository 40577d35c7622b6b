package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/russross/blackfriday/v2"

	"SentimentScope/internal/ports"
)

// Status kinds, also used as CSS classes.
const (
	statusSuccess = "success"
	statusWarning = "warning"
	statusError   = "error"
)

// statusView is what the page shows after an action.
type statusView struct {
	Kind    string
	Message string
	// HTML is set for rendered markdown; Message is shown escaped otherwise.
	HTML template.HTML
}

// statusRecorder implements ports.StatusReporter by keeping the last report.
type statusRecorder struct {
	status *statusView
}

var _ ports.StatusReporter = (*statusRecorder)(nil)

func (r *statusRecorder) ReportError(message string) {
	r.status = &statusView{Kind: statusError, Message: message}
}

func (r *statusRecorder) ReportWarning(message string) {
	r.status = &statusView{Kind: statusWarning, Message: message}
}

func (r *statusRecorder) ReportSuccess(label string) {
	r.status = &statusView{
		Kind:    statusSuccess,
		Message: label,
		HTML:    renderMarkdown(successMarkdown(label)),
	}
}

func successMarkdown(label string) string {
	return fmt.Sprintf("### Sentiment: *%s*", escapeMarkdown(label))
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`(`, `\(`, `)`, `\)`, `#`, `\#`, `<`, `\<`, `>`, `\>`, `!`, `\!`, `~`, `\~`,
)

// escapeMarkdown keeps model output from injecting markup.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(strings.Join(strings.Fields(s), " "))
}

func renderMarkdown(md string) template.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.SkipHTML | blackfriday.SkipImages | blackfriday.Safelink,
	})
	out := blackfriday.Run([]byte(md), blackfriday.WithRenderer(renderer))
	// blackfriday escapes text content and SkipHTML drops raw tags.
	return template.HTML(strings.TrimSpace(string(out)))
}
