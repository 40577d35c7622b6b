package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"SentimentScope/internal/domain"
	"SentimentScope/internal/ports"
)

const pageTitle = "Sentiment Analyzer"

// Analyzer runs one analysis for a request.
type Analyzer interface {
	Analyze(ctx context.Context, raw string, reporter ports.StatusReporter) domain.Outcome
	ProviderName() string
}

// Handler serves the UI page and the JSON API.
type Handler struct {
	analyzer Analyzer
	provider string
}

// NewHandler wires the analyzer; provider is the configured provider key.
func NewHandler(analyzer Analyzer, provider string) *Handler {
	return &Handler{analyzer: analyzer, provider: provider}
}

type pageData struct {
	Title    string
	Action   string
	Provider string
	Input    string
	Status   *statusView
}

func (h *Handler) page(input string, status *statusView) pageData {
	return pageData{
		Title:    pageTitle,
		Action:   "analyze",
		Provider: h.analyzer.ProviderName(),
		Input:    input,
		Status:   status,
	}
}

// Index renders the empty form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page("", nil))
}

// AnalyzeForm runs the flow for a submitted form and re-renders the page.
func (h *Handler) AnalyzeForm(c *gin.Context) {
	input := c.PostForm("input")

	rec := &statusRecorder{}
	h.analyzer.Analyze(c.Request.Context(), input, rec)

	c.HTML(http.StatusOK, "index.html", h.page(input, rec.status))
}

type analyzeRequest struct {
	Input string `json:"input"`
}

// AnalyzeResponse is the JSON shape of a finished analysis.
type AnalyzeResponse struct {
	State     domain.State     `json:"state"`
	Kind      domain.InputKind `json:"kind"`
	Sentiment string           `json:"sentiment,omitempty"`
	Warning   string           `json:"warning,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// AnalyzeJSON is the programmatic counterpart of AnalyzeForm.
func (h *Handler) AnalyzeJSON(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rec := &statusRecorder{}
	outcome := h.analyzer.Analyze(c.Request.Context(), req.Input, rec)

	res := AnalyzeResponse{
		State:     outcome.State,
		Kind:      outcome.Kind,
		Sentiment: outcome.Sentiment,
		Warning:   outcome.Warning,
	}
	if rec.status != nil && rec.status.Kind == statusError {
		res.Error = rec.status.Message
	}

	c.JSON(statusCode(outcome.State), res)
}

// Health reports liveness and the configured provider.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "provider": h.provider})
}

func statusCode(state domain.State) int {
	if !state.Terminal() {
		return http.StatusInternalServerError
	}
	switch state {
	case domain.StateDone:
		return http.StatusOK
	case domain.StateWarning:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
