package web

import (
	"embed"
	"html/template"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"SentimentScope/internal/logging"
)

const requestIDHeader = "X-Request-ID"

//go:embed templates/*.html
var templatesFS embed.FS

// RouterDeps carries everything NewRouter needs.
type RouterDeps struct {
	Handler        *Handler
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter builds the gin engine with UI, API and health routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(logger), accessLog())
	if c, ok := corsConfig(deps.AllowedOrigins); ok {
		r.Use(cors.New(c))
	}
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	h := deps.Handler
	r.GET("/", h.Index)
	r.POST("/analyze", h.AnalyzeForm)
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	api.POST("/analyze", h.AnalyzeJSON)

	return r
}

func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}

	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c, true
		}
	}
	c.AllowOrigins = origins
	return c, true
}

// requestID tags each request and attaches a scoped logger to its context.
func requestID(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		logger := base.With("request_id", id)
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), logger))
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		logger := logging.FromContext(c.Request.Context(), slog.Default())
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(started),
		)
	}
}
