package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/exactcover/internal/metrics"
)

// NewRouter builds the gin engine: API under /api, prometheus scrape on
// /metrics, and a trivial health probe.
func NewRouter(logger *slog.Logger, h *Handlers, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	h.RegisterRoutes(r.Group("/api"))
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// requestLogger logs method, path, status, and duration per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}
