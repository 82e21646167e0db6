// internal/server/server.go
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/observability"
)

// Server wires the HTTP surface: the proposal endpoints, the chat stream,
// and the health/metrics trio.
type Server struct {
	router   *gin.Engine
	handlers *Handlers
	logger   logger.Logger
}

func New(handlers *Handlers, obs *observability.Observability, log logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestMetrics(obs))

	s := &Server{
		router:   router,
		handlers: handlers,
		logger: log.With(map[string]interface{}{
			"component": "server",
		}),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.POST("/api/proposal", s.handlers.CreateProposal)
	s.router.POST("/api/proposal/stream", s.handlers.CreateProposalStream)
	s.router.POST("/api/chat", s.handlers.Chat)
	s.router.GET("/api/suggestions", s.handlers.Suggestions)

	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Router exposes the engine for http.Server wiring and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func requestMetrics(obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := "success"
		if c.Writer.Status() >= 400 {
			status = "error"
		}
		obs.RecordRequest(c.Request.Context(), route, status)
		obs.RecordRequestDuration(c.Request.Context(), time.Since(started), route)
	}
}
