package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"SentimentScope/internal/config"
	"SentimentScope/internal/infrastructure/llm"
	"SentimentScope/internal/infrastructure/parser"
	"SentimentScope/internal/logging"
	"SentimentScope/internal/ports"
	"SentimentScope/internal/provider"
	"SentimentScope/internal/usecase"
	"SentimentScope/internal/web"
)

// Application wires configs to the analysis use case and the HTTP server.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	generator ports.Generator
	server    *http.Server
}

// New builds the provider client once and wires every adapter around it.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}
	if !strings.EqualFold(cfg.Logging.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := provider.NewRegistry()
	llm.RegisterProviders(registry)

	generator, err := registry.Build(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	classifier := llm.NewClassifier(cfg.LLM.Provider, generator, baseLogger.With("component", "classifier"))
	fetcher := parser.NewParagraphFetcher(nil, cfg.Fetcher, baseLogger.With("component", "fetcher"))

	analyzer := usecase.NewAnalyzer(usecase.AnalyzerDeps{
		Fetcher:              fetcher,
		Classifier:           classifier,
		ProviderName:         llm.DisplayName(cfg.LLM.Provider),
		ClassifyEmptyContent: cfg.Analysis.ClassifyEmptyContent,
		Logger:               baseLogger.With("component", "analyzer"),
	})

	router := web.NewRouter(web.RouterDeps{
		Handler:        web.NewHandler(analyzer, cfg.LLM.Provider),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         baseLogger.With("component", "http"),
	})

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		generator: generator,
		server: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// Handler exposes the HTTP handler for embedding and tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	defer a.closeGenerator()

	a.logger.Info("serving sentiment analyzer",
		"addr", ln.Addr().String(),
		"provider", a.cfg.LLM.Provider,
		"model", a.cfg.LLM.Model,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (a *Application) closeGenerator() {
	closer, ok := a.generator.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		a.logger.Warn("close model client", "error", err)
	}
}
